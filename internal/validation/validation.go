// Package validation checks payment-creation payloads against the PSP
// schema before they are signed and sent. The pipeline is ordered and
// stops at the first failing rule, reporting the offending field.
package validation

import (
	"strings"

	"checkout-client/internal/models"
	"checkout-client/pkg/errors"
)

// Options configures optional validation policies.
type Options struct {
	// RequireHTTPSURLs enforces an https:// scheme on all redirect and
	// callback URLs. Off by default: the PSP documents the requirement
	// but some merchant integrations still test against http targets.
	RequireHTTPSURLs bool
}

var supportedLanguages = map[string]bool{
	"FI": true,
	"SV": true,
	"EN": true,
}

// Validate runs the full pipeline against payment and returns a
// normalized copy (country codes uppercased). The input value is never
// mutated. On failure the returned error is a *errors.DomainError naming
// the first offending field.
func Validate(payment *models.Payment, opts Options) (*models.Payment, error) {
	if payment == nil {
		return nil, errors.NewMissingParameter("payment")
	}

	if err := checkPresence(payment); err != nil {
		return nil, err
	}

	if payment.Currency != "EUR" {
		return nil, errors.NewUnsupportedCurrency(payment.Currency)
	}

	if len(payment.Language) != 2 || !supportedLanguages[payment.Language] {
		return nil, errors.NewInvalidLanguageCode(payment.Language)
	}

	if err := checkCustomer(payment.Customer); err != nil {
		return nil, err
	}

	if err := checkAddress(payment.DeliveryAddress); err != nil {
		return nil, err
	}
	if err := checkAddress(payment.InvoicingAddress); err != nil {
		return nil, err
	}

	for i := range payment.Items {
		if err := checkItem(&payment.Items[i]); err != nil {
			return nil, err
		}
	}

	if err := checkURLPair(payment.RedirectURLs, "redirectUrls", opts); err != nil {
		return nil, err
	}
	if err := checkURLPair(payment.CallbackURLs, "callbackUrls", opts); err != nil {
		return nil, err
	}

	return normalize(payment), nil
}

func checkPresence(payment *models.Payment) error {
	switch {
	case payment.Stamp == "":
		return errors.NewMissingParameter("stamp")
	case payment.Reference == "":
		return errors.NewMissingParameter("reference")
	case payment.Amount == 0:
		return errors.NewMissingParameter("amount")
	case payment.Currency == "":
		return errors.NewMissingParameter("currency")
	case payment.Language == "":
		return errors.NewMissingParameter("language")
	case len(payment.Items) == 0:
		return errors.NewMissingParameter("items")
	case payment.Customer == nil:
		return errors.NewMissingParameter("customer")
	case payment.DeliveryAddress == nil:
		return errors.NewMissingParameter("deliveryAddress")
	case payment.InvoicingAddress == nil:
		return errors.NewMissingParameter("invoicingAddress")
	case payment.RedirectURLs == nil:
		return errors.NewMissingParameter("redirectUrls")
	case payment.CallbackURLs == nil:
		return errors.NewMissingParameter("callbackUrls")
	}
	return nil
}

func checkCustomer(customer *models.Customer) error {
	if customer.FirstName == "" {
		return errors.NewMissingMandatoryKey("firstName")
	}
	if customer.LastName == "" {
		return errors.NewMissingMandatoryKey("lastName")
	}
	if customer.Email == "" {
		return errors.NewMissingMandatoryKey("email")
	}
	return nil
}

func checkAddress(address *models.Address) error {
	if address.StreetAddress == "" {
		return errors.NewMissingMandatoryKey("streetAddress")
	}
	if address.PostalCode == "" {
		return errors.NewMissingMandatoryKey("postalCode")
	}
	if address.City == "" {
		return errors.NewMissingMandatoryKey("city")
	}
	if address.Country == "" {
		return errors.NewMissingMandatoryKey("country")
	}
	if len(address.Country) > 2 {
		return errors.NewInvalidCountryCode(address.Country)
	}
	return nil
}

func checkItem(item *models.Item) error {
	if item.ProductCode == "" {
		return errors.NewMissingMandatoryKey("productCode")
	}
	if item.DeliveryDate == "" {
		return errors.NewMissingMandatoryKey("deliveryDate")
	}
	// The record types already force integers here; what is left to catch
	// are values no integer price field can legally hold.
	if item.UnitPrice < 0 {
		return errors.NewInvalidNumericType("unitPrice")
	}
	if item.Units < 1 {
		return errors.NewInvalidNumericType("units")
	}
	if item.VatPercentage < 0 {
		return errors.NewInvalidNumericType("vatPercentage")
	}
	return nil
}

func checkURLPair(pair *models.URLPair, field string, opts Options) error {
	if pair.Success == "" {
		return errors.NewMissingMandatoryKey("success")
	}
	if pair.Cancel == "" {
		return errors.NewMissingMandatoryKey("cancel")
	}
	if opts.RequireHTTPSURLs {
		if !strings.HasPrefix(pair.Success, "https://") {
			return errors.NewInvalidURLScheme(field + ".success")
		}
		if !strings.HasPrefix(pair.Cancel, "https://") {
			return errors.NewInvalidURLScheme(field + ".cancel")
		}
	}
	return nil
}

// normalize returns a copy with country codes uppercased. Language is
// validated case-sensitively above, so the accepted value is already in
// canonical form.
func normalize(payment *models.Payment) *models.Payment {
	normalized := payment.Clone()
	normalized.DeliveryAddress.Country = strings.ToUpper(normalized.DeliveryAddress.Country)
	normalized.InvoicingAddress.Country = strings.ToUpper(normalized.InvoicingAddress.Country)
	return normalized
}

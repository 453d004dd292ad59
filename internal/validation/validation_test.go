package validation

import (
	"testing"

	"checkout-client/internal/models"
	"checkout-client/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayment() *models.Payment {
	return models.SandboxPayment()
}

func TestValidate_SandboxPaymentPasses(t *testing.T) {
	normalized, err := Validate(validPayment(), Options{})

	require.NoError(t, err)
	assert.NotNil(t, normalized)
}

func TestValidate_NilPayment(t *testing.T) {
	_, err := Validate(nil, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindMissingParameter, errors.KindOf(err))
}

func TestValidate_MissingTopLevelKeys(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Payment)
		field  string
	}{
		{"stamp", func(p *models.Payment) { p.Stamp = "" }, "stamp"},
		{"reference", func(p *models.Payment) { p.Reference = "" }, "reference"},
		{"amount", func(p *models.Payment) { p.Amount = 0 }, "amount"},
		{"currency", func(p *models.Payment) { p.Currency = "" }, "currency"},
		{"language", func(p *models.Payment) { p.Language = "" }, "language"},
		{"items nil", func(p *models.Payment) { p.Items = nil }, "items"},
		{"items empty", func(p *models.Payment) { p.Items = []models.Item{} }, "items"},
		{"customer", func(p *models.Payment) { p.Customer = nil }, "customer"},
		{"deliveryAddress", func(p *models.Payment) { p.DeliveryAddress = nil }, "deliveryAddress"},
		{"invoicingAddress", func(p *models.Payment) { p.InvoicingAddress = nil }, "invoicingAddress"},
		{"redirectUrls", func(p *models.Payment) { p.RedirectURLs = nil }, "redirectUrls"},
		{"callbackUrls", func(p *models.Payment) { p.CallbackURLs = nil }, "callbackUrls"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment := validPayment()
			tt.mutate(payment)

			_, err := Validate(payment, Options{})

			require.Error(t, err)
			assert.Equal(t, errors.KindMissingParameter, errors.KindOf(err))
			assert.Equal(t, tt.field, err.(*errors.DomainError).Field)
		})
	}
}

func TestValidate_CurrencyGate(t *testing.T) {
	payment := validPayment()
	payment.Currency = "USD"

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindUnsupportedCurrency, errors.KindOf(err))
}

func TestValidate_LanguageGate(t *testing.T) {
	for _, lang := range []string{"FI", "SV", "EN"} {
		payment := validPayment()
		payment.Language = lang

		_, err := Validate(payment, Options{})
		assert.NoError(t, err, "language %s should pass", lang)
	}

	for _, lang := range []string{"DE", "SWE", "fi"} {
		payment := validPayment()
		payment.Language = lang

		_, err := Validate(payment, Options{})
		require.Error(t, err, "language %s should fail", lang)
		assert.Equal(t, errors.KindInvalidLanguageCode, errors.KindOf(err))
	}
}

func TestValidate_MissingCustomerEmailHaltsPipeline(t *testing.T) {
	payment := validPayment()
	payment.Customer.Email = ""
	// A later-stage defect that must not be reached.
	payment.DeliveryAddress.Country = "Sweden"

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindMissingMandatoryKey, errors.KindOf(err))
	assert.Equal(t, "email", err.(*errors.DomainError).Field)
}

func TestValidate_CustomerMandatoryFields(t *testing.T) {
	tests := []struct {
		mutate func(*models.Customer)
		field  string
	}{
		{func(c *models.Customer) { c.FirstName = "" }, "firstName"},
		{func(c *models.Customer) { c.LastName = "" }, "lastName"},
		{func(c *models.Customer) { c.Email = "" }, "email"},
	}

	for _, tt := range tests {
		payment := validPayment()
		tt.mutate(payment.Customer)

		_, err := Validate(payment, Options{})

		require.Error(t, err)
		assert.Equal(t, tt.field, err.(*errors.DomainError).Field)
	}
}

func TestValidate_CountryCodeTooLong(t *testing.T) {
	payment := validPayment()
	payment.InvoicingAddress.Country = "Sweden"

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidCountryCode, errors.KindOf(err))
}

func TestValidate_AddressMandatoryFields(t *testing.T) {
	payment := validPayment()
	payment.DeliveryAddress.City = ""

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindMissingMandatoryKey, errors.KindOf(err))
	assert.Equal(t, "city", err.(*errors.DomainError).Field)
}

func TestValidate_CountryNormalizedInOutputOnly(t *testing.T) {
	payment := validPayment()
	payment.DeliveryAddress.Country = "se"
	payment.InvoicingAddress.Country = "fi"

	normalized, err := Validate(payment, Options{})

	require.NoError(t, err)
	assert.Equal(t, "SE", normalized.DeliveryAddress.Country)
	assert.Equal(t, "FI", normalized.InvoicingAddress.Country)
	// Input is never edited in place.
	assert.Equal(t, "se", payment.DeliveryAddress.Country)
	assert.Equal(t, "fi", payment.InvoicingAddress.Country)
}

func TestValidate_ItemMandatoryFields(t *testing.T) {
	payment := validPayment()
	payment.Items[0].ProductCode = ""

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindMissingMandatoryKey, errors.KindOf(err))
	assert.Equal(t, "productCode", err.(*errors.DomainError).Field)
}

func TestValidate_ItemNumericRanges(t *testing.T) {
	tests := []struct {
		mutate func(*models.Item)
		field  string
	}{
		{func(i *models.Item) { i.UnitPrice = -1 }, "unitPrice"},
		{func(i *models.Item) { i.Units = 0 }, "units"},
		{func(i *models.Item) { i.VatPercentage = -24 }, "vatPercentage"},
	}

	for _, tt := range tests {
		payment := validPayment()
		tt.mutate(&payment.Items[0])

		_, err := Validate(payment, Options{})

		require.Error(t, err)
		assert.Equal(t, errors.KindInvalidNumericType, errors.KindOf(err))
		assert.Equal(t, tt.field, err.(*errors.DomainError).Field)
	}
}

func TestValidate_EachItemCheckedIndependently(t *testing.T) {
	payment := validPayment()
	second := payment.Items[0]
	second.DeliveryDate = ""
	payment.Items = append(payment.Items, second)

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, "deliveryDate", err.(*errors.DomainError).Field)
}

func TestValidate_URLPairMandatoryFields(t *testing.T) {
	payment := validPayment()
	payment.CallbackURLs.Cancel = ""

	_, err := Validate(payment, Options{})

	require.Error(t, err)
	assert.Equal(t, errors.KindMissingMandatoryKey, errors.KindOf(err))
	assert.Equal(t, "cancel", err.(*errors.DomainError).Field)
}

func TestValidate_HTTPSPolicyDisabledAllowsHTTP(t *testing.T) {
	payment := validPayment()
	payment.RedirectURLs.Success = "http://ecom.example.org/success"

	_, err := Validate(payment, Options{})

	assert.NoError(t, err)
}

func TestValidate_HTTPSPolicyEnabledRejectsHTTP(t *testing.T) {
	payment := validPayment()
	payment.RedirectURLs.Success = "http://ecom.example.org/success"

	_, err := Validate(payment, Options{RequireHTTPSURLs: true})

	require.Error(t, err)
	assert.Equal(t, errors.KindInvalidURLScheme, errors.KindOf(err))
	assert.Equal(t, "redirectUrls.success", err.(*errors.DomainError).Field)
}

func TestValidate_HTTPSPolicyEnabledAcceptsHTTPS(t *testing.T) {
	_, err := Validate(validPayment(), Options{RequireHTTPSURLs: true})

	assert.NoError(t, err)
}

package models

// Payment is the request body for creating a payment.
// Monetary fields are integers in minor currency units (cents);
// vatPercentage is an integer percentage. Field names match the PSP
// wire format exactly.
type Payment struct {
	Stamp            string    `json:"stamp"`
	Reference        string    `json:"reference"`
	Amount           int64     `json:"amount"`
	Currency         string    `json:"currency"`
	Language         string    `json:"language"`
	Items            []Item    `json:"items"`
	Customer         *Customer `json:"customer"`
	DeliveryAddress  *Address  `json:"deliveryAddress"`
	InvoicingAddress *Address  `json:"invoicingAddress"`
	RedirectURLs     *URLPair  `json:"redirectUrls"`
	CallbackURLs     *URLPair  `json:"callbackUrls"`
}

// Item is a single order line within a payment.
type Item struct {
	UnitPrice     int64       `json:"unitPrice"`
	Units         int64       `json:"units"`
	VatPercentage int64       `json:"vatPercentage"`
	ProductCode   string      `json:"productCode"`
	DeliveryDate  string      `json:"deliveryDate"`
	Description   string      `json:"description,omitempty"`
	Category      string      `json:"category,omitempty"`
	Stamp         string      `json:"stamp,omitempty"`
	Reference     string      `json:"reference,omitempty"`
	Merchant      string      `json:"merchant,omitempty"`
	Commission    *Commission `json:"commission,omitempty"`
}

// Commission splits part of an item price to a sub-merchant.
type Commission struct {
	Merchant string `json:"merchant"`
	Amount   int64  `json:"amount"`
}

type Customer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	VatID     string `json:"vatId,omitempty"`
}

type Address struct {
	StreetAddress string `json:"streetAddress"`
	PostalCode    string `json:"postalCode"`
	City          string `json:"city"`
	County        string `json:"county,omitempty"`
	Country       string `json:"country"`
}

// URLPair holds the success/cancel URL pair used for both redirect and
// callback targets.
type URLPair struct {
	Success string `json:"success"`
	Cancel  string `json:"cancel"`
}

// Clone returns a deep copy of the payment. Validation normalizes the
// copy and leaves the caller's value untouched.
func (p *Payment) Clone() *Payment {
	if p == nil {
		return nil
	}

	clone := *p

	if p.Items != nil {
		clone.Items = make([]Item, len(p.Items))
		copy(clone.Items, p.Items)
		for i := range clone.Items {
			if clone.Items[i].Commission != nil {
				commission := *clone.Items[i].Commission
				clone.Items[i].Commission = &commission
			}
		}
	}
	if p.Customer != nil {
		customer := *p.Customer
		clone.Customer = &customer
	}
	if p.DeliveryAddress != nil {
		addr := *p.DeliveryAddress
		clone.DeliveryAddress = &addr
	}
	if p.InvoicingAddress != nil {
		addr := *p.InvoicingAddress
		clone.InvoicingAddress = &addr
	}
	if p.RedirectURLs != nil {
		urls := *p.RedirectURLs
		clone.RedirectURLs = &urls
	}
	if p.CallbackURLs != nil {
		urls := *p.CallbackURLs
		clone.CallbackURLs = &urls
	}

	return &clone
}

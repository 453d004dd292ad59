package models

// PaymentResponse is returned from payment creation. Providers carry the
// payment method forms the payer can be redirected to.
type PaymentResponse struct {
	TransactionID string     `json:"transactionId"`
	Href          string     `json:"href"`
	Terms         string     `json:"terms,omitempty"`
	Reference     string     `json:"reference,omitempty"`
	Providers     []Provider `json:"providers,omitempty"`
}

// PaymentDetails is returned from a payment lookup.
type PaymentDetails struct {
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency"`
	Stamp         string `json:"stamp"`
	Reference     string `json:"reference"`
	CreatedAt     string `json:"createdAt"`
	Href          string `json:"href,omitempty"`
	Provider      string `json:"provider,omitempty"`
}

// RefundResponse is returned from a refund request.
type RefundResponse struct {
	TransactionID string `json:"transactionId,omitempty"`
	Provider      string `json:"provider,omitempty"`
	Status        string `json:"status"`
}

// Provider is a single payment method offered by the PSP.
type Provider struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
	URL   string `json:"url,omitempty"`
	Icon  string `json:"icon,omitempty"`
	Svg   string `json:"svg,omitempty"`
}

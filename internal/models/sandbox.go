package models

// SandboxPayment returns the canned payment used when creating a payment
// in test mode without caller-supplied data. A fresh value is returned on
// every call so callers can mutate it freely.
func SandboxPayment() *Payment {
	return &Payment{
		Stamp:     "29858472952",
		Reference: "9187445",
		Amount:    1590,
		Currency:  "EUR",
		Language:  "FI",
		Items: []Item{
			{
				UnitPrice:     1590,
				Units:         1,
				VatPercentage: 24,
				ProductCode:   "#927502759",
				DeliveryDate:  "2018-03-07",
				Description:   "Cat ladder",
				Category:      "shoe",
				Merchant:      "375917",
				Stamp:         "29858472952",
				Reference:     "9187445",
				Commission: &Commission{
					Merchant: "375917",
					Amount:   0,
				},
			},
		},
		Customer: &Customer{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john.doe@example.org",
			Phone:     "358501234567",
			VatID:     "FI02454583",
		},
		DeliveryAddress: &Address{
			StreetAddress: "Fake street 123",
			PostalCode:    "00100",
			City:          "Luleå",
			County:        "Norrbotten",
			Country:       "SE",
		},
		InvoicingAddress: &Address{
			StreetAddress: "Fake street 123",
			PostalCode:    "00100",
			City:          "Luleå",
			County:        "Norrbotten",
			Country:       "SE",
		},
		RedirectURLs: &URLPair{
			Success: "https://ecom.example.org/success",
			Cancel:  "https://ecom.example.org/cancel",
		},
		CallbackURLs: &URLPair{
			Success: "https://ecom.example.org/success",
			Cancel:  "https://ecom.example.org/cancel",
		},
	}
}

package domain

// Customer holds the contact details collected at checkout.
type Customer struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

// CartLine is the wire form of a single cart line inside an order payload.
// Price carries the product's display price so the notification email can
// reproduce it verbatim.
type CartLine struct {
	Name  string `json:"name"`
	Grams int    `json:"grams"`
	Price string `json:"price"`
}

// Totals aggregates weight and price across all cart lines.
type Totals struct {
	Grams int     `json:"grams"`
	Price float64 `json:"price"`
}

// Order is the payload posted to the notification endpoint. It exists only
// for the duration of a single submission and is never persisted.
type Order struct {
	Customer Customer   `json:"customer"`
	Cart     []CartLine `json:"cart"`
	Totals   Totals     `json:"totals"`
}

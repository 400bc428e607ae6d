package domain

// Product is one entry in the shop catalog. The unit price is per kilogram
// and kept in its display form ("1500 RSD"); the pricing package parses it
// on demand. Cart lines hold Product by value, so later catalog edits never
// retroactively change items already in a cart.
type Product struct {
	Name        string `json:"name" yaml:"name"`
	Cut         string `json:"cut" yaml:"cut"`
	Price       string `json:"price" yaml:"price"`
	Origin      string `json:"origin" yaml:"origin"`
	Badge       string `json:"badge,omitempty" yaml:"badge,omitempty"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
}

package domain

// DefaultWeight is the weight in grams assumed when the catalog source
// carries none.
const DefaultWeight = 100

// Product is one catalog entry sourced from the remote store API. Products
// are immutable once constructed; a re-fetch replaces the list wholesale.
type Product struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category,omitempty"`
	Weight   int     `json:"weight"`
}

package domain

// CartLine pairs a product with a positive quantity. A quantity of zero is
// represented by the line being absent, never by a zero-valued line.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is a read-only snapshot of the cart. Lines keep insertion order for
// new products and position for updated ones. TotalItems and TotalPrice are
// recomputed from Lines on every change, never stored independently.
type Cart struct {
	Lines      []CartLine `json:"lineItems"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

package cart

import (
	"zepto-clone/internal/domain"
)

// Repository is the authoritative holder of the shopping cart. Mutations are
// total functions: invalid arguments have defined behavior and no operation
// returns an error.
type Repository interface {
	// Add inserts a line with quantity 1 or increments an existing line.
	Add(p domain.Product)
	// Remove decrements the line for p, deleting it at quantity 1; no-op
	// when absent.
	Remove(p domain.Product)
	// SetQuantity pins the line for p at quantity; zero or negative deletes.
	SetQuantity(p domain.Product, quantity int)
	// QuantityOf reports the current quantity for a product id, 0 when absent.
	QuantityOf(productID int) int
	// Clear empties the cart.
	Clear()
	// Snapshot returns the current cart with its derived totals.
	Snapshot() domain.Cart
	// Subscribe delivers the current cart immediately, then every change.
	Subscribe() (<-chan domain.Cart, func())
}

package coordinator

import (
	"zepto-clone/internal/domain"
	"zepto-clone/internal/observe"
	cartrepo "zepto-clone/internal/repository/cart"
)

// CartState is the cart screen's view state.
type CartState struct {
	Lines      []domain.CartLine `json:"lineItems"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

// Cart mirrors the cart store into a view state and forwards user actions to
// it. The store stays the single authority; this holder only republishes its
// snapshots.
type Cart struct {
	repo  cartrepo.Repository
	state *observe.Cell[CartState]
	stop  func()
}

// NewCart subscribes to the store and starts mirroring it. Close releases
// the subscription.
func NewCart(repo cartrepo.Repository) *Cart {
	c := &Cart{repo: repo, state: observe.NewCell(toCartState(repo.Snapshot()))}
	ch, stop := repo.Subscribe()
	c.stop = stop
	go func() {
		for snapshot := range ch {
			c.state.Set(toCartState(snapshot))
		}
	}()
	return c
}

// State returns the current view state. The mirror is asynchronous, so a
// just-issued mutation may not be visible yet; Snapshot reads through to the
// store when that matters.
func (c *Cart) State() CartState {
	return c.state.Get()
}

// Snapshot reads the cart straight from the store, reflecting every applied
// mutation.
func (c *Cart) Snapshot() CartState {
	return toCartState(c.repo.Snapshot())
}

// Subscribe delivers the current state immediately, then every change.
func (c *Cart) Subscribe() (<-chan CartState, func()) {
	return c.state.Subscribe()
}

// Add forwards an "add to cart" tap to the store.
func (c *Cart) Add(p domain.Product) {
	c.repo.Add(p)
}

// Remove forwards a "remove from cart" tap to the store.
func (c *Cart) Remove(p domain.Product) {
	c.repo.Remove(p)
}

// SetQuantity forwards an explicit quantity choice to the store.
func (c *Cart) SetQuantity(p domain.Product, quantity int) {
	c.repo.SetQuantity(p, quantity)
}

// QuantityOf reads the quantity straight from the store so it reflects the
// latest applied mutation rather than the mirrored state.
func (c *Cart) QuantityOf(productID int) int {
	return c.repo.QuantityOf(productID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.repo.Clear()
}

// Close stops mirroring the store.
func (c *Cart) Close() {
	c.stop()
}

func toCartState(cart domain.Cart) CartState {
	return CartState{
		Lines:      cart.Lines,
		TotalItems: cart.TotalItems,
		TotalPrice: cart.TotalPrice,
	}
}

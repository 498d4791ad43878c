package cart

import (
	"zepto-clone/internal/domain"
	"zepto-clone/internal/observe"
)

// Memory holds the cart in process memory, published through an observable
// cell. Every mutation is a read-modify-write over the whole line collection,
// serialized by the cell's write lock, and rebuilds the derived totals from
// the lines alone so they can never drift. Mutations construct fresh line
// slices, so snapshots handed to subscribers are never modified afterwards.
type Memory struct {
	cell *observe.Cell[domain.Cart]
}

// NewMemory builds an empty cart store.
func NewMemory() *Memory {
	return &Memory{cell: observe.NewCell(emptyCart())}
}

// Add inserts a line with quantity 1 or increments an existing line. New
// products append at the end; existing lines keep their position.
func (m *Memory) Add(p domain.Product) {
	m.cell.Update(func(c domain.Cart) domain.Cart {
		lines := make([]domain.CartLine, 0, len(c.Lines)+1)
		found := false
		for _, line := range c.Lines {
			if line.Product.ID == p.ID {
				line.Quantity++
				found = true
			}
			lines = append(lines, line)
		}
		if !found {
			lines = append(lines, domain.CartLine{Product: p, Quantity: 1})
		}
		return rebuild(lines)
	})
}

// Remove decrements the line for p, deleting it when the quantity reaches
// zero. Removing an absent product is a no-op.
func (m *Memory) Remove(p domain.Product) {
	m.cell.Update(func(c domain.Cart) domain.Cart {
		lines := make([]domain.CartLine, 0, len(c.Lines))
		for _, line := range c.Lines {
			if line.Product.ID == p.ID {
				line.Quantity--
				if line.Quantity < 1 {
					continue
				}
			}
			lines = append(lines, line)
		}
		return rebuild(lines)
	})
}

// SetQuantity pins the line for p at quantity. Zero or negative quantities
// delete the line; this is defined behavior, not an error. A line set for an
// absent product is inserted at the end with the given quantity.
func (m *Memory) SetQuantity(p domain.Product, quantity int) {
	m.cell.Update(func(c domain.Cart) domain.Cart {
		lines := make([]domain.CartLine, 0, len(c.Lines)+1)
		found := false
		for _, line := range c.Lines {
			if line.Product.ID == p.ID {
				found = true
				if quantity <= 0 {
					continue
				}
				line.Quantity = quantity
			}
			lines = append(lines, line)
		}
		if !found && quantity > 0 {
			lines = append(lines, domain.CartLine{Product: p, Quantity: quantity})
		}
		return rebuild(lines)
	})
}

// QuantityOf reports the current quantity for a product id, 0 when absent.
// It reflects the latest applied mutation.
func (m *Memory) QuantityOf(productID int) int {
	for _, line := range m.cell.Get().Lines {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}
	return 0
}

// Clear empties the cart.
func (m *Memory) Clear() {
	m.cell.Set(emptyCart())
}

// Snapshot returns the current cart with its derived totals.
func (m *Memory) Snapshot() domain.Cart {
	return m.cell.Get()
}

// Subscribe delivers the current cart immediately, then every change.
func (m *Memory) Subscribe() (<-chan domain.Cart, func()) {
	return m.cell.Subscribe()
}

func emptyCart() domain.Cart {
	return domain.Cart{Lines: []domain.CartLine{}}
}

// rebuild recomputes the derived totals from the lines alone.
func rebuild(lines []domain.CartLine) domain.Cart {
	cart := domain.Cart{Lines: lines}
	for _, line := range lines {
		cart.TotalItems += line.Quantity
		cart.TotalPrice += float64(line.Quantity) * line.Product.Price
	}
	return cart
}

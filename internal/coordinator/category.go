package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"zepto-clone/internal/domain"
	"zepto-clone/internal/observe"
	catalogsvc "zepto-clone/internal/service/catalog"
)

// MsgCategoryNotFound is the user-visible message for a lookup miss. It is
// deliberately distinct from transport-failure messages.
const MsgCategoryNotFound = "Category not found"

// CategoryState is the category screen's view state.
type CategoryState struct {
	Key      string           `json:"key"`
	Name     string           `json:"name"`
	Products []domain.Product `json:"products"`
	Loading  bool             `json:"loading"`
	Error    string           `json:"error,omitempty"`
}

// Category drives the category screen: it resolves a category by id or name,
// then loads that category's products. Overlapping loads follow
// last-write-wins keyed by sequence, so a stale result for an older key never
// overwrites a newer one.
type Category struct {
	catalog *catalogsvc.Service
	state   *observe.Cell[CategoryState]

	mu  sync.Mutex
	seq int
}

// NewCategory builds the category coordinator in the Idle state.
func NewCategory(catalog *catalogsvc.Service) *Category {
	return &Category{catalog: catalog, state: observe.NewCell(CategoryState{})}
}

// State returns the current view state.
func (c *Category) State() CategoryState {
	return c.state.Get()
}

// Subscribe delivers the current state immediately, then every change.
func (c *Category) Subscribe() (<-chan CategoryState, func()) {
	return c.state.Subscribe()
}

// Load resolves key (numeric id or category name) and loads its products.
// A lookup miss is recoverable and surfaces MsgCategoryNotFound; transport
// failures carry the underlying error.
func (c *Category) Load(ctx context.Context, key string) {
	seq := c.begin(key)

	category, err := c.catalog.CategoryByIDOrName(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.finish(seq, func(s CategoryState) CategoryState {
				s.Name = catalogsvc.FormatCategoryName(key)
				s.Error = MsgCategoryNotFound
				s.Loading = false
				return s
			})
			return
		}
		c.fail(seq, err)
		return
	}

	var products []domain.Product
	if category.ID == domain.AllCategoryID {
		products, err = c.catalog.Products().Collect(ctx)
	} else {
		products, err = c.catalog.ProductsByCategory(strings.ToLower(category.Name)).Collect(ctx)
	}
	if err != nil {
		c.fail(seq, err)
		return
	}

	c.finish(seq, func(s CategoryState) CategoryState {
		s.Name = category.Name
		s.Products = products
		s.Loading = false
		return s
	})
}

func (c *Category) begin(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state.Update(func(s CategoryState) CategoryState {
		s.Key = key
		s.Loading = true
		s.Error = ""
		return s
	})
	return c.seq
}

func (c *Category) fail(seq int, err error) {
	c.finish(seq, func(s CategoryState) CategoryState {
		s.Error = fmt.Sprintf("Error loading category: %v", err)
		s.Loading = false
		return s
	})
}

// finish applies fn only when no newer load has begun since seq was taken.
func (c *Category) finish(seq int, fn func(CategoryState) CategoryState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		return
	}
	c.state.Update(fn)
}

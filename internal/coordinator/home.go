// Package coordinator holds the per-screen state holders that sit between
// the stores/repositories and the presentation layer. Each coordinator owns
// one observable state record and translates user actions into store and
// repository calls.
package coordinator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"zepto-clone/internal/domain"
	"zepto-clone/internal/observe"
	catalogsvc "zepto-clone/internal/service/catalog"
)

// HomeState is the home screen's view state.
type HomeState struct {
	Categories       []domain.Category `json:"categories"`
	Products         []domain.Product  `json:"products"`
	SelectedCategory *domain.Category  `json:"selectedCategory,omitempty"`
	Loading          bool              `json:"loading"`
	Error            string            `json:"error,omitempty"`
}

// Home loads the category strip and product feed for the home screen and
// tracks the selected category. Overlapping loads follow last-write-wins: a
// newer load supersedes an older in-flight one, whose eventual result is
// discarded. The superseded fetch itself is not cancelled.
type Home struct {
	catalog *catalogsvc.Service
	state   *observe.Cell[HomeState]

	mu  sync.Mutex
	seq int
}

// NewHome builds the home coordinator in the Idle state.
func NewHome(catalog *catalogsvc.Service) *Home {
	return &Home{catalog: catalog, state: observe.NewCell(HomeState{})}
}

// State returns the current view state.
func (h *Home) State() HomeState {
	return h.state.Get()
}

// Subscribe delivers the current state immediately, then every change.
func (h *Home) Subscribe() (<-chan HomeState, func()) {
	return h.state.Subscribe()
}

// Load fetches the categories and the full product list. The two fetches are
// independent: one failing does not discard the other's data.
func (h *Home) Load(ctx context.Context) {
	seq := h.begin()

	categories, catErr := h.catalog.Categories().Collect(ctx)
	products, prodErr := h.catalog.Products().Collect(ctx)

	h.finish(seq, func(s HomeState) HomeState {
		if catErr != nil {
			s.Error = fmt.Sprintf("Failed to load categories: %v", catErr)
		} else {
			s.Categories = categories
		}
		if prodErr != nil {
			s.Error = fmt.Sprintf("Failed to load products: %v", prodErr)
		} else {
			s.Products = products
		}
		s.Loading = false
		return s
	})
}

// SelectCategory records the selection and reloads the product list: the
// synthetic "All" entry loads the unfiltered list, anything else the
// lowercased source category.
func (h *Home) SelectCategory(ctx context.Context, category domain.Category) {
	h.state.Update(func(s HomeState) HomeState {
		c := category
		s.SelectedCategory = &c
		return s
	})

	seq := h.begin()

	var (
		products []domain.Product
		err      error
	)
	if category.ID == domain.AllCategoryID {
		products, err = h.catalog.Products().Collect(ctx)
	} else {
		products, err = h.catalog.ProductsByCategory(strings.ToLower(category.Name)).Collect(ctx)
	}

	h.finish(seq, func(s HomeState) HomeState {
		if err != nil {
			s.Error = fmt.Sprintf("Failed to load products: %v", err)
		} else {
			s.Products = products
		}
		s.Loading = false
		return s
	})
}

// SelectCategoryByKey resolves key (numeric id or category name) and selects
// the result. The error distinguishes a lookup miss (domain.ErrNotFound)
// from a transport failure; neither touches the current selection.
func (h *Home) SelectCategoryByKey(ctx context.Context, key string) error {
	category, err := h.catalog.CategoryByIDOrName(ctx, key)
	if err != nil {
		return err
	}
	h.SelectCategory(ctx, *category)
	return nil
}

// begin bumps the load sequence and moves the state to Loading, clearing any
// prior error.
func (h *Home) begin() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seq++
	h.state.Update(func(s HomeState) HomeState {
		s.Loading = true
		s.Error = ""
		return s
	})
	return h.seq
}

// finish applies fn only when no newer load has begun since seq was taken.
func (h *Home) finish(seq int, fn func(HomeState) HomeState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if seq != h.seq {
		return
	}
	h.state.Update(fn)
}

package domain

// AllCategoryID is reserved for the synthetic "All" aggregate that is
// prepended to every category list.
const AllCategoryID = 0

// Category is a display category derived from the raw category strings the
// catalog source returns. Recomputed on every fetch, never persisted.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

package catalog

import (
	"context"

	"zepto-clone/internal/domain"
)

// Client fetches catalog data from the remote store API.
type Client interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
	FetchProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	FetchCategories(ctx context.Context) ([]string, error)
}

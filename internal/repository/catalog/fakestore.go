package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"zepto-clone/internal/domain"
)

// DefaultBaseURL points at the public Fake Store API.
const DefaultBaseURL = "https://fakestoreapi.com"

const requestTimeout = 10 * time.Second

// FakeStore is the HTTP client for the Fake Store API.
//
// Degraded-data behavior: a non-2xx response yields an empty result and a nil
// error, so callers see the same state as a genuinely empty catalog. The
// status is logged so the two can be told apart in operation. Only
// transport-level failures (DNS, TLS, timeout) are returned as errors.
type FakeStore struct {
	baseURL string
	http    *http.Client
	logger  *log.Logger
}

// NewFakeStore builds a client for the given base URL with 10s connect and
// read timeouts. An empty baseURL selects DefaultBaseURL; a nil httpClient
// selects the default transport.
func NewFakeStore(baseURL string, logger *log.Logger, httpClient *http.Client) *FakeStore {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: requestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: requestTimeout}).DialContext,
			},
		}
	}
	return &FakeStore{baseURL: baseURL, http: httpClient, logger: logger}
}

type productPayload struct {
	ID       int     `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
}

// FetchProducts returns every product in the catalog.
func (f *FakeStore) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	return f.fetchProducts(ctx, f.baseURL+"/products")
}

// FetchProductsByCategory returns the products the server filed under the
// raw category string. Filtering happens server-side.
func (f *FakeStore) FetchProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return f.fetchProducts(ctx, f.baseURL+"/products/category/"+url.PathEscape(category))
}

// FetchCategories returns the distinct raw category strings.
func (f *FakeStore) FetchCategories(ctx context.Context) ([]string, error) {
	body, ok, err := f.get(ctx, f.baseURL+"/products/categories")
	if err != nil {
		return nil, err
	}
	if !ok {
		return []string{}, nil
	}
	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (f *FakeStore) fetchProducts(ctx context.Context, u string) ([]domain.Product, error) {
	body, ok, err := f.get(ctx, u)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []domain.Product{}, nil
	}
	var payload []productPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	products := make([]domain.Product, 0, len(payload))
	for _, p := range payload {
		products = append(products, domain.Product{
			ID:       p.ID,
			Name:     p.Title,
			Price:    p.Price,
			Image:    f.normalizeImageURL(p.Image),
			Category: p.Category,
			Weight:   domain.DefaultWeight,
		})
	}
	return products, nil
}

// normalizeImageURL repairs the image references the source sometimes
// returns: a server-relative path gets the base URL prepended, a scheme-less
// URL gets https, and an empty reference stays empty so the caller can fall
// back to a category image.
func (f *FakeStore) normalizeImageURL(image string) string {
	switch {
	case image == "":
		return ""
	case strings.HasPrefix(image, "http"):
		return image
	case strings.HasPrefix(image, "/"):
		return f.baseURL + image
	default:
		return "https://" + image
	}
}

// get performs one GET against u. ok reports whether the response was 2xx;
// body is valid only when ok. The response body is closed on every path.
func (f *FakeStore) get(ctx context.Context, u string) (body []byte, ok bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, err
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("catalog fetch %s: %w", u, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if f.logger != nil {
			f.logger.Printf("catalog fetch %s: status %s, treating as empty", u, resp.Status)
		}
		return nil, false, nil
	}
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("catalog read %s: %w", u, err)
	}
	return body, true, nil
}

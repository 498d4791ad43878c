package httpserver

import (
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"zepto-clone/internal/coordinator"
	cartrepo "zepto-clone/internal/repository/cart"
	catalogrepo "zepto-clone/internal/repository/catalog"
	catalogsvc "zepto-clone/internal/service/catalog"
)

const catalogProductsJSON = `[
	{"id":1,"title":"Monitor","price":120,"image":"https://img.example/1.png","category":"electronics"}
]`

// newTestRouter backs the API with a fake catalog endpoint and a fresh
// in-memory cart.
func newTestRouter(t *testing.T) (*gin.Engine, *coordinator.Cart) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/products/categories":
			w.Write([]byte(`["electronics","jewelery"]`))
		case strings.HasPrefix(r.URL.Path, "/products/category/"):
			w.Write([]byte(catalogProductsJSON))
		case r.URL.Path == "/products":
			w.Write([]byte(catalogProductsJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(catalogSrv.Close)

	logger := log.New(os.Stdout, "[test] ", log.LstdFlags)
	client := catalogrepo.NewFakeStore(catalogSrv.URL, logger, nil)
	catalogService := catalogsvc.New(client)

	store := cartrepo.NewMemory()
	cartCoordinator := coordinator.NewCart(store)
	t.Cleanup(cartCoordinator.Close)

	deps := Deps{
		Home:     coordinator.NewHome(catalogService),
		Category: coordinator.NewCategory(catalogService),
		Cart:     cartCoordinator,
	}
	return buildRouter(logger, deps), cartCoordinator
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCartAddRemoveOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)
	product := `{"product":{"id":1,"name":"Monitor","price":120,"image":"","weight":100}}`

	rec := doJSON(t, router, http.MethodPost, "/api/cart/add", product)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = doJSON(t, router, http.MethodPost, "/api/cart/add", product)
	rec = doJSON(t, router, http.MethodPost, "/api/cart/remove", product)

	var state coordinator.CartState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.TotalItems != 1 || state.TotalPrice != 120 {
		t.Fatalf("unexpected cart state %+v", state)
	}
}

func TestCartSetQuantityAndClearOverHTTP(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/cart/quantity",
		`{"product":{"id":1,"name":"Monitor","price":120},"quantity":3}`)
	var state coordinator.CartState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.TotalItems != 3 {
		t.Fatalf("expected 3 items, got %+v", state)
	}

	rec = doJSON(t, router, http.MethodDelete, "/api/cart", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.TotalItems != 0 || len(state.Lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", state)
	}
}

func TestCartAddRejectsMissingProduct(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/api/cart/add", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestHomeRefreshAndState(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/home/refresh", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state coordinator.HomeState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(state.Categories) != 3 || state.Categories[0].Name != "All" {
		t.Fatalf("unexpected categories %+v", state.Categories)
	}
	if len(state.Products) != 1 {
		t.Fatalf("unexpected products %+v", state.Products)
	}
}

func TestHomeSelectCategory(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/home/select",
		`{"id":1,"name":"Electronics","icon":"headphones"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var state coordinator.HomeState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.SelectedCategory == nil || state.SelectedCategory.ID != 1 {
		t.Fatalf("expected selection recorded, got %+v", state.SelectedCategory)
	}
}

func TestHomeSelectCategoryByPath(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/home/select/electronics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var state coordinator.HomeState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.SelectedCategory == nil || state.SelectedCategory.Name != "Electronics" {
		t.Fatalf("expected selection resolved from path key, got %+v", state.SelectedCategory)
	}
}

func TestHomeSelectCategoryByPathNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/home/select/furniture", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCategoryEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories/electronics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var state coordinator.CategoryState
	if err := json.Unmarshal(rec.Body.Bytes(), &state); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if state.Name != "Electronics" || len(state.Products) != 1 {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestCategoryEndpointNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/categories/furniture", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

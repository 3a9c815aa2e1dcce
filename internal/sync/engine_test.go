package sync

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/models"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/shopify"
)

// fakeShopify stubs the slice of the Admin API the engine talks to: the
// shop-info probe, a two-page products listing, and a one-page orders
// listing, with Link-header pagination.
type fakeShopify struct {
	srv             *httptest.Server
	productRequests int
	orderRequests   int
	failOrders      bool
}

func newFakeShopify(t *testing.T) *fakeShopify {
	t.Helper()

	f := &fakeShopify{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeShopify) handle(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-Shopify-Access-Token") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch r.URL.Path {
	case "/shop.json":
		json.NewEncoder(w).Encode(map[string]any{
			"shop": map[string]any{"name": "Test Store"},
		})

	case "/products.json":
		f.productRequests++
		if r.URL.Query().Get("page_info") == "" {
			w.Header().Set("Link",
				fmt.Sprintf(`<%s/products.json?limit=2&page_info=nextpage>; rel="next"`, f.srv.URL))
			json.NewEncoder(w).Encode(map[string]any{
				"products": []any{
					product(1, "Widget", "Tools", variant(11, "19.99", "W-1")),
					product(2, "Gadget", "Tools", variant(21, "5.00", "G-1")),
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"products": []any{
				product(3, "Gizmo", "", variant(31, "12.50", "Z-1")),
			},
		})

	case "/orders.json":
		f.orderRequests++
		if f.failOrders {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"errors":"temporarily unavailable"}`)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"orders": []any{
				order(101, "paid", "100.00", lineItem(1001, 1, 11, 2, "19.99")),
				order(102, "refunded", "50.00", lineItem(1002, 2, 21, 1, "5.00")),
			},
		})

	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func product(id int, title, productType string, variants ...any) map[string]any {
	return map[string]any{
		"id":           id,
		"title":        title,
		"product_type": productType,
		"status":       "active",
		"created_at":   "2026-08-01T10:00:00-04:00",
		"updated_at":   "2026-08-01T10:00:00-04:00",
		"variants":     variants,
	}
}

func variant(id int, price, sku string) map[string]any {
	return map[string]any{
		"id":    id,
		"title": "Default Title",
		"price": price,
		"sku":   sku,
	}
}

func order(id int, financialStatus, totalPrice string, lineItems ...any) map[string]any {
	return map[string]any{
		"id":               id,
		"financial_status": financialStatus,
		"total_price":      totalPrice,
		"currency":         "USD",
		"created_at":       "2026-08-20T10:00:00-04:00",
		"line_items":       lineItems,
	}
}

func lineItem(id, productID, variantID, quantity int, price string) map[string]any {
	return map[string]any{
		"id":         id,
		"product_id": productID,
		"variant_id": variantID,
		"title":      "Item",
		"quantity":   quantity,
		"price":      price,
	}
}

func testConfig() *config.Config {
	return &config.Config{
		Shopify: config.ShopifyConfig{
			ShopName:    "test-store",
			AccessToken: strings.Repeat("a", 32),
			APIVersion:  "2023-10",
		},
		Sync: config.SyncConfig{
			PageSize:       2,
			OrderWindow:    90 * 24 * time.Hour,
			RequestDelay:   time.Millisecond,
			RequestTimeout: 5 * time.Second,
		},
	}
}

func newTestEngine(t *testing.T, cfg *config.Config, fake *fakeShopify) *Engine {
	t.Helper()

	db := newTestDB(t)
	e := NewEngine(cfg, db, zap.NewNop())
	e.client = shopify.NewClientWithBaseURL(fake.srv.URL, cfg.Shopify.AccessToken, cfg.Sync.RequestTimeout)
	return e
}

func tableCount(t *testing.T, e *Engine, table string) int {
	t.Helper()

	var n int
	require.NoError(t, e.db.Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

func TestFetchSuccess(t *testing.T) {
	fake := newFakeShopify(t)
	e := newTestEngine(t, testConfig(), fake)

	result := e.Fetch(context.Background())

	require.True(t, result.Success, "fetch failed: %s", result.Error)
	assert.Equal(t, 3, result.ProductsCount)
	assert.Equal(t, 2, result.OrdersCount)

	// Two pages of products, one page of orders.
	assert.Equal(t, 2, fake.productRequests)
	assert.Equal(t, 1, fake.orderRequests)

	assert.Equal(t, 3, tableCount(t, e, "shopify_products"))
	assert.Equal(t, 3, tableCount(t, e, "shopify_variants"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_orders"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_order_line_items"))

	// String-typed API prices land as numeric columns.
	var price float64
	require.NoError(t, e.db.Get(&price, "SELECT price FROM shopify_variants WHERE id = 11"))
	assert.Equal(t, 19.99, price)

	latest, err := e.Ledger().Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, models.SyncStatusSuccess, latest.Status)
	assert.Equal(t, int64(3), latest.ProductsCount)
	assert.Equal(t, int64(2), latest.OrdersCount)
}

func TestFetchIsIdempotent(t *testing.T) {
	fake := newFakeShopify(t)
	e := newTestEngine(t, testConfig(), fake)

	first := e.Fetch(context.Background())
	require.True(t, first.Success, "fetch failed: %s", first.Error)

	second := e.Fetch(context.Background())
	require.True(t, second.Success, "fetch failed: %s", second.Error)

	assert.Equal(t, first.ProductsCount, second.ProductsCount)
	assert.Equal(t, first.OrdersCount, second.OrdersCount)
	assert.Equal(t, 3, tableCount(t, e, "shopify_products"))
	assert.Equal(t, 3, tableCount(t, e, "shopify_variants"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_orders"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_order_line_items"))
}

func TestFetchFailureKeepsPreviousSnapshot(t *testing.T) {
	fake := newFakeShopify(t)
	e := newTestEngine(t, testConfig(), fake)

	first := e.Fetch(context.Background())
	require.True(t, first.Success, "fetch failed: %s", first.Error)

	// The second sync clears the tables and refetches products inside the
	// transaction, then dies on orders. The rollback must restore the
	// first sync's snapshot in full.
	fake.failOrders = true
	second := e.Fetch(context.Background())

	assert.False(t, second.Success)
	assert.Contains(t, second.Error, "Error fetching Shopify data")

	assert.Equal(t, 3, tableCount(t, e, "shopify_products"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_orders"))
	assert.Equal(t, 2, tableCount(t, e, "shopify_order_line_items"))

	latest, err := e.Ledger().Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, models.SyncStatusError, latest.Status)
}

func TestFetchRejectsInvalidCredentials(t *testing.T) {
	fake := newFakeShopify(t)
	cfg := testConfig()
	cfg.Shopify.AccessToken = "too-short"
	e := newTestEngine(t, cfg, fake)

	result := e.Fetch(context.Background())

	assert.False(t, result.Success)
	assert.Equal(t, "Access token appears to be invalid (too short)", result.Error)
	// Validation fails before any network traffic.
	assert.Equal(t, 0, fake.productRequests)

	latest, err := e.Ledger().Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, models.SyncStatusError, latest.Status)
}

package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/models"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/shopify"
)

// FetchResult is the fetch() contract. The engine never lets an error
// escape to its caller; every failure is folded into this value and the
// ledger.
type FetchResult struct {
	Success       bool   `json:"success"`
	ProductsCount int    `json:"products_count,omitempty"`
	OrdersCount   int    `json:"orders_count,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Engine drives one full store sync: validate credentials, prepare the
// schema, clear the previous snapshot, fetch products then orders page by
// page, and record the outcome in the ledger.
//
// The clear-and-repopulate sequence runs inside a single transaction that
// is rolled back in full on any failure, so a failed sync never destroys
// the previously good snapshot.
type Engine struct {
	cfg      *config.Config
	db       *database.DB
	client   *shopify.Client
	upserter *Upserter
	ledger   *Ledger
	logger   *zap.Logger
}

func NewEngine(cfg *config.Config, db *database.DB, logger *zap.Logger) *Engine {
	return &Engine{
		cfg: cfg,
		db:  db,
		client: shopify.NewClient(
			cfg.Shopify.ShopName,
			cfg.Shopify.AccessToken,
			cfg.Shopify.APIVersion,
			cfg.Sync.RequestTimeout,
		),
		upserter: NewUpserter(logger),
		ledger:   NewLedger(db),
		logger:   logger,
	}
}

// Ledger exposes the engine's status ledger for read-only consumers.
func (e *Engine) Ledger() *Ledger {
	return e.ledger
}

// Fetch runs the full sync. It blocks until every page has been fetched
// or the first failure; only individual HTTP requests carry a timeout.
func (e *Engine) Fetch(ctx context.Context) FetchResult {
	if ok, reason := shopify.ValidateCredentials(e.cfg.Shopify.ShopName, e.cfg.Shopify.AccessToken); !ok {
		return e.fail(reason)
	}

	if err := e.db.Setup(); err != nil {
		return e.fail(fmt.Sprintf("Database setup failed: %v", err))
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return e.fail(fmt.Sprintf("Database error: %v", err))
	}

	if err := database.ClearSnapshot(tx); err != nil {
		return e.abort(tx, fmt.Sprintf("Database error: %v", err))
	}

	e.logger.Info("connecting to Shopify API", zap.String("base_url", e.client.BaseURL()))
	shopName, err := e.client.TestConnection(ctx)
	if err != nil {
		return e.abort(tx, err.Error())
	}
	e.logger.Info("connected to Shopify store", zap.String("shop", shopName))

	productsCount, err := e.fetchProducts(ctx, tx)
	if err != nil {
		return e.abort(tx, fmt.Sprintf("Error fetching Shopify data: %v", err))
	}

	ordersCount, err := e.fetchOrders(ctx, tx)
	if err != nil {
		return e.abort(tx, fmt.Sprintf("Error fetching Shopify data: %v", err))
	}

	if err := tx.Commit(); err != nil {
		return e.fail(fmt.Sprintf("Database error: %v", err))
	}

	if err := e.ledger.Record(models.SyncStatusSuccess, productsCount, ordersCount, ""); err != nil {
		e.logger.Warn("failed to record sync outcome", zap.Error(err))
	}

	return FetchResult{
		Success:       true,
		ProductsCount: productsCount,
		OrdersCount:   ordersCount,
	}
}

// fetchProducts walks the paginated products listing, writing each product
// and its nested variants. Returns the number of products stored.
func (e *Engine) fetchProducts(ctx context.Context, tx *sqlx.Tx) (int, error) {
	e.logger.Info("fetching products from Shopify")
	productsCount := 0
	variantsCount := 0

	url := fmt.Sprintf("%s/products.json?limit=%d", e.client.BaseURL(), e.cfg.Sync.PageSize)
	for url != "" {
		body, linkHeader, err := e.client.GetPage(ctx, url)
		if err != nil {
			return 0, err
		}

		products, _ := body["products"].([]any)
		for _, p := range products {
			rec, ok := p.(map[string]any)
			if !ok {
				continue
			}

			productID, err := e.upserter.UpsertProduct(tx, Record(rec))
			if err != nil {
				return 0, err
			}
			productsCount++

			variants, _ := rec["variants"].([]any)
			for _, v := range variants {
				variant, ok := v.(map[string]any)
				if !ok {
					continue
				}
				if err := e.upserter.UpsertVariant(tx, Record(variant), productID); err != nil {
					return 0, err
				}
				variantsCount++
			}
		}

		url = shopify.ParseLinkHeader(linkHeader)
		if url != "" {
			e.sleep(ctx)
		}
	}

	e.logger.Info("fetched products",
		zap.Int("products", productsCount),
		zap.Int("variants", variantsCount))
	return productsCount, nil
}

// fetchOrders walks the paginated orders listing scoped to the trailing
// order window, writing each order and its nested line items.
func (e *Engine) fetchOrders(ctx context.Context, tx *sqlx.Tx) (int, error) {
	startDate := time.Now().Add(-e.cfg.Sync.OrderWindow).Format("2006-01-02")
	e.logger.Info("fetching orders from Shopify", zap.String("created_at_min", startDate))

	ordersCount := 0
	lineItemsCount := 0

	url := fmt.Sprintf("%s/orders.json?status=any&limit=%d&created_at_min=%s",
		e.client.BaseURL(), e.cfg.Sync.PageSize, startDate)
	for url != "" {
		body, linkHeader, err := e.client.GetPage(ctx, url)
		if err != nil {
			return 0, err
		}

		orders, _ := body["orders"].([]any)
		for _, o := range orders {
			rec, ok := o.(map[string]any)
			if !ok {
				continue
			}

			orderID, orderCreatedAt, err := e.upserter.UpsertOrder(tx, Record(rec))
			if err != nil {
				return 0, err
			}

			lineItems, _ := rec["line_items"].([]any)
			for _, li := range lineItems {
				item, ok := li.(map[string]any)
				if !ok {
					continue
				}
				if err := e.upserter.UpsertLineItem(tx, Record(item), orderID, orderCreatedAt); err != nil {
					return 0, err
				}
				lineItemsCount++
			}

			ordersCount++
		}

		url = shopify.ParseLinkHeader(linkHeader)
		if url != "" {
			e.sleep(ctx)
		}
	}

	e.logger.Info("fetched orders",
		zap.Int("orders", ordersCount),
		zap.Int("line_items", lineItemsCount))
	return ordersCount, nil
}

// sleep applies the fixed inter-request delay that keeps us under the API
// rate limit.
func (e *Engine) sleep(ctx context.Context) {
	select {
	case <-time.After(e.cfg.Sync.RequestDelay):
	case <-ctx.Done():
	}
}

// abort rolls the snapshot transaction back before recording the failure,
// so the ledger write does not contend with the transaction's write lock.
func (e *Engine) abort(tx *sqlx.Tx, msg string) FetchResult {
	if err := tx.Rollback(); err != nil {
		e.logger.Warn("failed to roll back sync transaction", zap.Error(err))
	}
	return e.fail(msg)
}

func (e *Engine) fail(msg string) FetchResult {
	e.logger.Error("sync failed", zap.String("reason", msg))
	if err := e.ledger.Record(models.SyncStatusError, 0, 0, msg); err != nil {
		e.logger.Warn("failed to record sync outcome", zap.Error(err))
	}
	return FetchResult{Success: false, Error: msg}
}

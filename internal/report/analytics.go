// Package report serves the aggregate analytics read from the local
// snapshot tables. Revenue aggregations exclude refunded orders by
// convention; this is a query-side filter, nothing in storage enforces it.
package report

import (
	"fmt"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
)

type Reporter struct {
	db *database.DB
}

func NewReporter(db *database.DB) *Reporter {
	return &Reporter{db: db}
}

type TopProduct struct {
	Title    string  `json:"title" db:"title"`
	Quantity int64   `json:"quantity" db:"quantity"`
	Sales    float64 `json:"sales" db:"sales"`
}

type CategoryCount struct {
	Category string `json:"category" db:"category"`
	Count    int64  `json:"count" db:"count"`
}

// Analytics is the dashboard headline block: totals plus the top sellers
// and the category distribution.
type Analytics struct {
	HasData     bool            `json:"has_data"`
	TotalSales  float64         `json:"total_sales"`
	TotalOrders int64           `json:"total_orders"`
	TotalItems  int64           `json:"total_items"`
	TopProducts []TopProduct    `json:"top_products"`
	Categories  []CategoryCount `json:"categories"`
}

func (r *Reporter) Analytics() (*Analytics, error) {
	a := &Analytics{HasData: true}

	err := r.db.Get(&a.TotalSales, `
		SELECT COALESCE(SUM(total_price), 0)
		FROM shopify_orders
		WHERE financial_status != 'refunded'`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute total sales: %w", err)
	}

	err = r.db.Get(&a.TotalOrders, `
		SELECT COUNT(*)
		FROM shopify_orders
		WHERE financial_status != 'refunded'`)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	err = r.db.Get(&a.TotalItems, `
		SELECT COALESCE(SUM(oli.quantity), 0)
		FROM shopify_order_line_items oli
		JOIN shopify_orders o ON oli.order_id = o.id
		WHERE o.financial_status != 'refunded'`)
	if err != nil {
		return nil, fmt.Errorf("failed to count items sold: %w", err)
	}

	err = r.db.Select(&a.TopProducts, `
		SELECT
			COALESCE(p.title, oli.title) ||
			CASE WHEN v.title != 'Default Title' AND v.title IS NOT NULL THEN ' - ' || v.title ELSE '' END AS title,
			SUM(oli.quantity) AS quantity,
			SUM(oli.quantity * oli.price) AS sales
		FROM shopify_order_line_items oli
		JOIN shopify_orders o ON oli.order_id = o.id
		LEFT JOIN shopify_products p ON oli.product_id = p.id
		LEFT JOIN shopify_variants v ON oli.variant_id = v.id
		WHERE o.financial_status != 'refunded'
		GROUP BY oli.product_id, oli.variant_id
		ORDER BY sales DESC
		LIMIT 5`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top products: %w", err)
	}

	err = r.db.Select(&a.Categories, `
		SELECT
			COALESCE(NULLIF(product_type, ''), 'Uncategorized') AS category,
			COUNT(*) AS count
		FROM shopify_products
		GROUP BY product_type
		ORDER BY count DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to compute categories: %w", err)
	}

	return a, nil
}

type SellingProduct struct {
	Title            string  `json:"title" db:"title"`
	SKU              string  `json:"sku" db:"sku"`
	ProductType      string  `json:"product_type" db:"product_type"`
	Price            float64 `json:"price" db:"price"`
	TotalQuantity   int64   `json:"total_quantity_sold" db:"total_quantity_sold"`
	TotalRevenue    float64 `json:"total_revenue" db:"total_revenue"`
	OrderCount      int64   `json:"order_count" db:"order_count"`
	AvgSellingPrice float64 `json:"avg_selling_price" db:"avg_selling_price"`
}

// TopSellingProducts ranks sold products by revenue over the whole
// snapshot, with per-product order counts and average selling price.
func (r *Reporter) TopSellingProducts(limit int) ([]SellingProduct, error) {
	var rows []SellingProduct
	err := r.db.Select(&rows, `
		SELECT
			COALESCE(p.title, oli.title) AS title,
			COALESCE(v.sku, oli.sku) AS sku,
			COALESCE(NULLIF(p.product_type, ''), 'Uncategorized') AS product_type,
			COALESCE(v.price, oli.price) AS price,
			SUM(oli.quantity) AS total_quantity_sold,
			SUM(oli.quantity * oli.price) AS total_revenue,
			COUNT(DISTINCT oli.order_id) AS order_count,
			AVG(oli.price) AS avg_selling_price
		FROM shopify_order_line_items oli
		JOIN shopify_orders o ON oli.order_id = o.id
		LEFT JOIN shopify_products p ON oli.product_id = p.id
		LEFT JOIN shopify_variants v ON oli.variant_id = v.id
		WHERE o.financial_status != 'refunded'
		GROUP BY oli.product_id, oli.variant_id
		ORDER BY total_revenue DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top selling products: %w", err)
	}
	return rows, nil
}

type DailyPerformance struct {
	OrderDate     string  `json:"order_date" db:"order_date"`
	DailyOrders   int64   `json:"daily_orders" db:"daily_orders"`
	DailyRevenue  float64 `json:"daily_revenue" db:"daily_revenue"`
	AvgOrderValue float64 `json:"avg_order_value" db:"avg_order_value"`
}

// DailyOrderPerformance returns per-day order counts and revenue for the
// trailing number of days.
func (r *Reporter) DailyOrderPerformance(days int) ([]DailyPerformance, error) {
	var rows []DailyPerformance
	err := r.db.Select(&rows, fmt.Sprintf(`
		SELECT
			DATE(o.created_at) AS order_date,
			COUNT(*) AS daily_orders,
			SUM(o.total_price) AS daily_revenue,
			AVG(o.total_price) AS avg_order_value
		FROM shopify_orders o
		WHERE o.financial_status != 'refunded'
		AND DATE(o.created_at) >= DATE('now', '-%d days')
		GROUP BY DATE(o.created_at)
		ORDER BY order_date DESC
		LIMIT %d`, days, days))
	if err != nil {
		return nil, fmt.Errorf("failed to query daily performance: %w", err)
	}
	return rows, nil
}

type CategoryPerformance struct {
	Category     string  `json:"category" db:"category"`
	ProductCount int64   `json:"product_count" db:"product_count"`
	TotalUnits   int64   `json:"total_units_sold" db:"total_units_sold"`
	TotalRevenue float64 `json:"total_revenue" db:"total_revenue"`
}

func (r *Reporter) CategoryPerformance() ([]CategoryPerformance, error) {
	var rows []CategoryPerformance
	err := r.db.Select(&rows, `
		SELECT
			COALESCE(NULLIF(p.product_type, ''), 'Uncategorized') AS category,
			COUNT(DISTINCT p.id) AS product_count,
			COALESCE(SUM(oli.quantity), 0) AS total_units_sold,
			COALESCE(SUM(oli.quantity * oli.price), 0) AS total_revenue
		FROM shopify_products p
		LEFT JOIN shopify_order_line_items oli ON p.id = oli.product_id
		LEFT JOIN shopify_orders o ON oli.order_id = o.id
		WHERE o.financial_status != 'refunded' OR oli.id IS NULL
		GROUP BY p.product_type
		ORDER BY total_revenue DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category performance: %w", err)
	}
	return rows, nil
}

type ProductOverview struct {
	Title        string  `json:"title" db:"title"`
	SKU          string  `json:"sku" db:"sku"`
	ProductType  string  `json:"product_type" db:"product_type"`
	Price        float64 `json:"price" db:"price"`
	Status       string  `json:"status" db:"status"`
	VariantCount int64   `json:"variant_count" db:"variant_count"`
	CreatedAt    string  `json:"created_at" db:"created_at"`
	UpdatedAt    string  `json:"updated_at" db:"updated_at"`
}

// ProductCatalog lists the most recently created products with their
// variant counts, the inventory view of the catalog.
func (r *Reporter) ProductCatalog(limit int) ([]ProductOverview, error) {
	var rows []ProductOverview
	err := r.db.Select(&rows, `
		SELECT
			p.title AS title,
			COALESCE(MIN(v.sku), '') AS sku,
			COALESCE(NULLIF(p.product_type, ''), 'Uncategorized') AS product_type,
			COALESCE(MIN(v.price), 0) AS price,
			p.status AS status,
			COUNT(v.id) AS variant_count,
			p.created_at AS created_at,
			p.updated_at AS updated_at
		FROM shopify_products p
		LEFT JOIN shopify_variants v ON p.id = v.product_id
		GROUP BY p.id
		ORDER BY p.created_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query product catalog: %w", err)
	}
	return rows, nil
}

type ProductPerformance struct {
	Title        string  `json:"title" db:"title"`
	SKU          string  `json:"sku" db:"sku"`
	ProductType  string  `json:"product_type" db:"product_type"`
	TotalSold    int64   `json:"total_sold" db:"total_sold"`
	TotalRevenue float64 `json:"total_revenue" db:"total_revenue"`
	UniqueOrders int64   `json:"unique_orders" db:"unique_orders"`
	LastSaleDate string  `json:"last_sale_date" db:"last_sale_date"`
}

// ProductSalesPerformance joins the catalog against line items to show
// how each product has been selling, including products with no sales.
func (r *Reporter) ProductSalesPerformance(limit int) ([]ProductPerformance, error) {
	var rows []ProductPerformance
	err := r.db.Select(&rows, `
		SELECT
			p.title AS title,
			COALESCE(MIN(v.sku), '') AS sku,
			COALESCE(NULLIF(p.product_type, ''), 'Uncategorized') AS product_type,
			COALESCE(SUM(oli.quantity), 0) AS total_sold,
			COALESCE(SUM(oli.quantity * oli.price), 0) AS total_revenue,
			COUNT(DISTINCT oli.order_id) AS unique_orders,
			COALESCE(MAX(o.created_at), '') AS last_sale_date
		FROM shopify_products p
		LEFT JOIN shopify_variants v ON p.id = v.product_id
		LEFT JOIN shopify_order_line_items oli ON v.id = oli.variant_id
		LEFT JOIN shopify_orders o ON oli.order_id = o.id
		WHERE o.financial_status != 'refunded' OR oli.id IS NULL
		GROUP BY p.id
		ORDER BY total_revenue DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query product performance: %w", err)
	}
	return rows, nil
}

type InventorySummary struct {
	ProductType    string `json:"product_type" db:"product_type"`
	TotalProducts  int64  `json:"total_products" db:"total_products"`
	TotalVariants  int64  `json:"total_variants" db:"total_variants"`
	ActiveProducts int64  `json:"active_products" db:"active_products"`
}

func (r *Reporter) InventorySummary() ([]InventorySummary, error) {
	var rows []InventorySummary
	err := r.db.Select(&rows, `
		SELECT
			COALESCE(NULLIF(p.product_type, ''), 'Uncategorized') AS product_type,
			COUNT(DISTINCT p.id) AS total_products,
			COUNT(v.id) AS total_variants,
			COUNT(DISTINCT CASE WHEN p.status = 'active' THEN p.id END) AS active_products
		FROM shopify_products p
		LEFT JOIN shopify_variants v ON p.id = v.product_id
		GROUP BY p.product_type
		ORDER BY total_products DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory summary: %w", err)
	}
	return rows, nil
}

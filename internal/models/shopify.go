package models

import "encoding/json"

// Product mirrors one row of shopify_products. RawData keeps the original
// API record verbatim so future columns can be backfilled without refetching.
type Product struct {
	ID          int64           `json:"id" db:"id"`
	Title       string          `json:"title" db:"title"`
	BodyHTML    string          `json:"body_html" db:"body_html"`
	Vendor      string          `json:"vendor" db:"vendor"`
	ProductType string          `json:"product_type" db:"product_type"`
	Handle      string          `json:"handle" db:"handle"`
	Status      string          `json:"status" db:"status"`
	Tags        string          `json:"tags" db:"tags"`
	CreatedAt   string          `json:"created_at" db:"created_at"`
	UpdatedAt   string          `json:"updated_at" db:"updated_at"`
	PublishedAt string          `json:"published_at" db:"published_at"`
	RawData     json.RawMessage `json:"raw_data" db:"raw_data"`
}

type Variant struct {
	ID                  int64           `json:"id" db:"id"`
	ProductID           int64           `json:"product_id" db:"product_id"`
	Title               string          `json:"title" db:"title"`
	Price               float64         `json:"price" db:"price"`
	SKU                 string          `json:"sku" db:"sku"`
	Position            int64           `json:"position" db:"position"`
	InventoryPolicy     string          `json:"inventory_policy" db:"inventory_policy"`
	CompareAtPrice      *float64        `json:"compare_at_price" db:"compare_at_price"`
	InventoryManagement string          `json:"inventory_management" db:"inventory_management"`
	Option1             string          `json:"option1" db:"option1"`
	Option2             string          `json:"option2" db:"option2"`
	Option3             string          `json:"option3" db:"option3"`
	CreatedAt           string          `json:"created_at" db:"created_at"`
	UpdatedAt           string          `json:"updated_at" db:"updated_at"`
	Taxable             bool            `json:"taxable" db:"taxable"`
	Barcode             string          `json:"barcode" db:"barcode"`
	InventoryItemID     *int64          `json:"inventory_item_id" db:"inventory_item_id"`
	RawData             json.RawMessage `json:"raw_data" db:"raw_data"`
}

type Order struct {
	ID                int64           `json:"id" db:"id"`
	Email             string          `json:"email" db:"email"`
	CreatedAt         string          `json:"created_at" db:"created_at"`
	UpdatedAt         string          `json:"updated_at" db:"updated_at"`
	Number            int64           `json:"number" db:"number"`
	TotalPrice        float64         `json:"total_price" db:"total_price"`
	SubtotalPrice     float64         `json:"subtotal_price" db:"subtotal_price"`
	TotalTax          float64         `json:"total_tax" db:"total_tax"`
	Currency          string          `json:"currency" db:"currency"`
	FinancialStatus   string          `json:"financial_status" db:"financial_status"`
	FulfillmentStatus string          `json:"fulfillment_status" db:"fulfillment_status"`
	ProcessedAt       string          `json:"processed_at" db:"processed_at"`
	RawData           json.RawMessage `json:"raw_data" db:"raw_data"`
}

// OrderLineItem keeps snapshots of the product/variant titles and SKU as
// they were at order time. VariantID and ProductID are nullable because a
// line item may reference a product that has since been deleted.
type OrderLineItem struct {
	ID            int64           `json:"id" db:"id"`
	OrderID       int64           `json:"order_id" db:"order_id"`
	VariantID     *int64          `json:"variant_id" db:"variant_id"`
	ProductID     *int64          `json:"product_id" db:"product_id"`
	Title         string          `json:"title" db:"title"`
	VariantTitle  string          `json:"variant_title" db:"variant_title"`
	SKU           string          `json:"sku" db:"sku"`
	Quantity      int64           `json:"quantity" db:"quantity"`
	Price         float64         `json:"price" db:"price"`
	TotalDiscount float64         `json:"total_discount" db:"total_discount"`
	CreatedAt     string          `json:"created_at" db:"created_at"`
	RawData       json.RawMessage `json:"raw_data" db:"raw_data"`
}

// SyncStatus is the single-row ledger describing the last sync attempt.
type SyncStatus struct {
	ID            int64   `json:"id" db:"id"`
	LastFetchTime string  `json:"last_fetch_time" db:"last_fetch_time"`
	ProductsCount int64   `json:"products_count" db:"products_count"`
	OrdersCount   int64   `json:"orders_count" db:"orders_count"`
	Status        string  `json:"status" db:"status"`
	ErrorMessage  *string `json:"error_message" db:"error_message"`
}

const (
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
	SyncStatusUnknown = "unknown"
)

const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// FinancialStatusRefunded is the value downstream queries filter out when
// aggregating revenue. It is a query-side convention, not a constraint.
const FinancialStatusRefunded = "refunded"

package database

import "github.com/jmoiron/sqlx"

// Setup creates the four snapshot tables plus the metadata ledger if they
// do not exist yet. Column sets match the Shopify Admin REST payloads with
// a raw_data column preserving each record verbatim.
func (db *DB) Setup() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS shopify_products (
		    id INTEGER PRIMARY KEY,
		    title TEXT,
		    body_html TEXT,
		    vendor TEXT,
		    product_type TEXT,
		    handle TEXT,
		    status TEXT,
		    tags TEXT,
		    created_at TEXT,
		    updated_at TEXT,
		    published_at TEXT,
		    raw_data TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS shopify_variants (
		    id INTEGER PRIMARY KEY,
		    product_id INTEGER,
		    title TEXT,
		    price REAL,
		    sku TEXT,
		    position INTEGER,
		    inventory_policy TEXT,
		    compare_at_price REAL,
		    inventory_management TEXT,
		    option1 TEXT,
		    option2 TEXT,
		    option3 TEXT,
		    created_at TEXT,
		    updated_at TEXT,
		    taxable BOOLEAN,
		    barcode TEXT,
		    inventory_item_id INTEGER,
		    raw_data TEXT,
		    FOREIGN KEY (product_id) REFERENCES shopify_products(id)
		)`,

		`CREATE TABLE IF NOT EXISTS shopify_orders (
		    id INTEGER PRIMARY KEY,
		    email TEXT,
		    created_at TEXT,
		    updated_at TEXT,
		    number INTEGER,
		    total_price REAL,
		    subtotal_price REAL,
		    total_tax REAL,
		    currency TEXT,
		    financial_status TEXT,
		    fulfillment_status TEXT,
		    processed_at TEXT,
		    raw_data TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS shopify_order_line_items (
		    id INTEGER PRIMARY KEY,
		    order_id INTEGER,
		    variant_id INTEGER,
		    product_id INTEGER,
		    title TEXT,
		    variant_title TEXT,
		    sku TEXT,
		    quantity INTEGER,
		    price REAL,
		    total_discount REAL,
		    created_at TEXT,
		    raw_data TEXT,
		    FOREIGN KEY (order_id) REFERENCES shopify_orders(id)
		)`,

		`CREATE TABLE IF NOT EXISTS shopify_metadata (
		    id INTEGER PRIMARY KEY AUTOINCREMENT,
		    last_fetch_time TEXT,
		    products_count INTEGER,
		    orders_count INTEGER,
		    status TEXT,
		    error_message TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// ClearSnapshot deletes all rows from the four snapshot tables inside the
// given transaction, children before parents to respect the foreign keys.
// The ledger is left untouched.
func ClearSnapshot(tx *sqlx.Tx) error {
	queries := []string{
		"DELETE FROM shopify_order_line_items",
		"DELETE FROM shopify_orders",
		"DELETE FROM shopify_variants",
		"DELETE FROM shopify_products",
	}

	for _, query := range queries {
		if _, err := tx.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

// DropAll removes every table including the ledger. Used by tests and the
// reset path.
func (db *DB) DropAll() error {
	queries := []string{
		"DROP TABLE IF EXISTS shopify_order_line_items",
		"DROP TABLE IF EXISTS shopify_orders",
		"DROP TABLE IF EXISTS shopify_variants",
		"DROP TABLE IF EXISTS shopify_products",
		"DROP TABLE IF EXISTS shopify_metadata",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}

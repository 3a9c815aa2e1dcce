package sync

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/models"
)

// Ledger is the single authoritative row describing the most recent sync
// attempt. Every Record call replaces the previous row wholesale.
type Ledger struct {
	db *database.DB
}

func NewLedger(db *database.DB) *Ledger {
	return &Ledger{db: db}
}

// Record clears the ledger table and inserts the new status row. It runs
// on its own connection, outside any snapshot transaction, so a failed
// sync can still be recorded after its transaction rolled back.
func (l *Ledger) Record(status string, productsCount, ordersCount int, errorMessage string) error {
	tx, err := l.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin ledger transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM shopify_metadata"); err != nil {
		return fmt.Errorf("failed to clear ledger: %w", err)
	}

	var errMsg any
	if errorMessage != "" {
		errMsg = errorMessage
	}

	_, err = tx.Exec(`
		INSERT INTO shopify_metadata
		(last_fetch_time, products_count, orders_count, status, error_message)
		VALUES (?, ?, ?, ?, ?)`,
		time.Now().Format("2006-01-02 15:04:05"),
		productsCount, ordersCount, status, errMsg)
	if err != nil {
		return fmt.Errorf("failed to insert ledger row: %w", err)
	}

	return tx.Commit()
}

// Latest returns the most recent ledger row, or nil when nothing has been
// recorded yet.
func (l *Ledger) Latest() (*models.SyncStatus, error) {
	var status models.SyncStatus
	err := l.db.Get(&status,
		"SELECT * FROM shopify_metadata ORDER BY id DESC LIMIT 1")
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger: %w", err)
	}
	return &status, nil
}

// StatusSummary is the status() contract consumed by the reporting layer.
type StatusSummary struct {
	HasData       bool   `json:"has_data"`
	FetchTime     string `json:"fetch_time,omitempty"`
	ProductsCount int64  `json:"products_count,omitempty"`
	OrdersCount   int64  `json:"orders_count,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Summary combines the ledger with live row counts so that a ledger
// claiming success over empty tables still reads as "no data". The counts
// reported are the actual table counts, not the ledger's.
func (l *Ledger) Summary() StatusSummary {
	latest, err := l.Latest()
	if err != nil {
		return StatusSummary{HasData: false, Error: fmt.Sprintf("error checking Shopify data: %v", err)}
	}
	if latest == nil {
		return StatusSummary{HasData: false, Error: "No metadata found. Data has not been fetched yet."}
	}

	if latest.Status == models.SyncStatusError {
		summary := StatusSummary{HasData: false, FetchTime: latest.LastFetchTime}
		if latest.ErrorMessage != nil {
			summary.Error = *latest.ErrorMessage
		}
		return summary
	}

	var productsCount, ordersCount int64
	if err := l.db.Get(&productsCount, "SELECT COUNT(*) FROM shopify_products"); err != nil {
		return StatusSummary{HasData: false, Error: fmt.Sprintf("error checking Shopify data: %v", err)}
	}
	if err := l.db.Get(&ordersCount, "SELECT COUNT(*) FROM shopify_orders"); err != nil {
		return StatusSummary{HasData: false, Error: fmt.Sprintf("error checking Shopify data: %v", err)}
	}

	return StatusSummary{
		HasData:       productsCount > 0 || ordersCount > 0,
		FetchTime:     latest.LastFetchTime,
		ProductsCount: productsCount,
		OrdersCount:   ordersCount,
	}
}

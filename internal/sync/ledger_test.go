package sync

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/models"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewConnection(&config.DBConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Setup())
	return db
}

func TestLedgerRecordReplacesPreviousRow(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	require.NoError(t, ledger.Record(models.SyncStatusSuccess, 3, 2, ""))
	require.NoError(t, ledger.Record(models.SyncStatusError, 0, 0, "boom"))

	var rows int
	require.NoError(t, db.Get(&rows, "SELECT COUNT(*) FROM shopify_metadata"))
	assert.Equal(t, 1, rows)

	latest, err := ledger.Latest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, models.SyncStatusError, latest.Status)
	require.NotNil(t, latest.ErrorMessage)
	assert.Equal(t, "boom", *latest.ErrorMessage)
}

func TestLedgerLatestEmpty(t *testing.T) {
	db := newTestDB(t)

	latest, err := NewLedger(db).Latest()
	require.NoError(t, err)
	assert.Nil(t, latest)
}

func TestSummaryNoLedgerRow(t *testing.T) {
	db := newTestDB(t)

	summary := NewLedger(db).Summary()
	assert.False(t, summary.HasData)
	assert.Equal(t, "No metadata found. Data has not been fetched yet.", summary.Error)
}

func TestSummaryAfterFailedSync(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	require.NoError(t, ledger.Record(models.SyncStatusError, 0, 0, "Error fetching Shopify data: 503"))

	summary := ledger.Summary()
	assert.False(t, summary.HasData)
	assert.Equal(t, "Error fetching Shopify data: 503", summary.Error)
	assert.NotEmpty(t, summary.FetchTime)
}

func TestSummaryDetectsDriftFromEmptyTables(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	// A ledger claiming a successful sync over empty snapshot tables must
	// not read as having data; the live counts win.
	require.NoError(t, ledger.Record(models.SyncStatusSuccess, 10, 5, ""))

	summary := ledger.Summary()
	assert.False(t, summary.HasData)
	assert.Equal(t, int64(0), summary.ProductsCount)
	assert.Equal(t, int64(0), summary.OrdersCount)
}

func TestSummaryWithData(t *testing.T) {
	db := newTestDB(t)
	ledger := NewLedger(db)

	_, err := db.Exec("INSERT INTO shopify_products (id, title) VALUES (1, 'Widget')")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO shopify_orders (id, total_price, financial_status) VALUES (101, 100, 'paid')")
	require.NoError(t, err)
	require.NoError(t, ledger.Record(models.SyncStatusSuccess, 1, 1, ""))

	summary := ledger.Summary()
	assert.True(t, summary.HasData)
	assert.Equal(t, int64(1), summary.ProductsCount)
	assert.Equal(t, int64(1), summary.OrdersCount)
	assert.NotEmpty(t, summary.FetchTime)
}

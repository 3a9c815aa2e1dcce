package insights

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vikas-techsprout/Trooba-poc-1/internal/config"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/database"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/llm/generate"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/models"
	"github.com/vikas-techsprout/Trooba-poc-1/internal/sync"
)

func newTestBuilder(t *testing.T, seed bool) *Builder {
	t.Helper()

	db, err := database.NewConnection(&config.DBConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Setup())

	if seed {
		_, err = db.Exec(`INSERT INTO shopify_products (id, title, product_type, status, created_at, updated_at)
			VALUES (1, 'Widget', 'Tools', 'active', '2026-08-01', '2026-08-01')`)
		require.NoError(t, err)
		require.NoError(t, sync.NewLedger(db).Record(models.SyncStatusSuccess, 1, 0, ""))
	}

	generator := generate.NewMockGenerator("test-model")
	return NewBuilder(db, generator, filepath.Join(t.TempDir(), "insights"), zap.NewNop())
}

func TestGenerateUnknownKind(t *testing.T) {
	b := newTestBuilder(t, true)

	_, err := b.Generate(context.Background(), "weather")
	assert.Error(t, err)
}

func TestGenerateWithoutDataFallsBack(t *testing.T) {
	b := newTestBuilder(t, false)

	text, err := b.Generate(context.Background(), KindSales)
	require.NoError(t, err)

	assert.Contains(t, text, "Insights Unavailable")
	// The fallback is never written to the cache.
	_, ok := b.LoadCached(KindSales)
	assert.False(t, ok)
}

func TestGenerateSalesInsights(t *testing.T) {
	b := newTestBuilder(t, true)

	text, err := b.Generate(context.Background(), KindSales)
	require.NoError(t, err)
	assert.Contains(t, text, "SALES PERFORMANCE")

	cached, ok := b.LoadCached(KindSales)
	require.True(t, ok)
	assert.Equal(t, text, cached)

	// A timestamped copy sits next to the latest file.
	entries, err := os.ReadDir(b.dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestGenerateInventoryInsights(t *testing.T) {
	b := newTestBuilder(t, true)

	text, err := b.Generate(context.Background(), KindInventory)
	require.NoError(t, err)
	assert.Contains(t, text, "INVENTORY INTELLIGENCE")

	_, ok := b.LoadCached(KindInventory)
	assert.True(t, ok)
}

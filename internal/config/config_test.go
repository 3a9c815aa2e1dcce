package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "database/shopify_data.db", cfg.DB.Path)
	assert.Equal(t, "2023-10", cfg.Shopify.APIVersion)
	assert.Equal(t, 250, cfg.Sync.PageSize)
	assert.Equal(t, 90*24*time.Hour, cfg.Sync.OrderWindow)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.RequestDelay)
	assert.Equal(t, 30*time.Second, cfg.Sync.RequestTimeout)
	assert.Equal(t, "ai_insights", cfg.Sync.InsightsDir)
	assert.Equal(t, "mock", cfg.LLM.Generator.Provider)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SHOPIFY_SHOP_NAME", "env-store")
	t.Setenv("SHOPIFY_ACCESS_TOKEN", "shpat_0123456789abcdef0123")
	t.Setenv("TROOBA_SERVER_ADDR", ":9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-store", cfg.Shopify.ShopName)
	assert.Equal(t, "shpat_0123456789abcdef0123", cfg.Shopify.AccessToken)
	assert.Equal(t, ":9090", cfg.Server.Addr)
}

package shopify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCredentials(t *testing.T) {
	validToken := strings.Repeat("a", 32)

	tests := []struct {
		name       string
		shopName   string
		token      string
		wantOK     bool
		wantReason string
	}{
		{
			name:       "missing both",
			shopName:   "",
			token:      "",
			wantOK:     false,
			wantReason: "Missing Shopify credentials. Please check your .env file.",
		},
		{
			name:       "missing token",
			shopName:   "my-store",
			token:      "",
			wantOK:     false,
			wantReason: "Missing Shopify credentials. Please check your .env file.",
		},
		{
			name:       "token too short",
			shopName:   "my-store",
			token:      "shpat_short",
			wantOK:     false,
			wantReason: "Access token appears to be invalid (too short)",
		},
		{
			name:       "shop name with invalid characters",
			shopName:   "my store!",
			token:      validToken,
			wantOK:     false,
			wantReason: "Shop name contains invalid characters. Use only letters, numbers, and hyphens.",
		},
		{
			name:     "valid bare handle",
			shopName: "my-store",
			token:    validToken,
			wantOK:   true,
		},
		{
			name:     "valid full domain",
			shopName: "my-store.myshopify.com",
			token:    validToken,
			wantOK:   true,
		},
		{
			name:     "uppercase handle",
			shopName: "My-Store",
			token:    validToken,
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := ValidateCredentials(tt.shopName, tt.token)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestNormalizeShopName(t *testing.T) {
	assert.Equal(t, "my-store", normalizeShopName("my-store"))
	assert.Equal(t, "my-store", normalizeShopName("my-store.myshopify.com"))
	assert.Equal(t, "my-store", normalizeShopName("  My-Store.MYSHOPIFY.COM  "))
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t,
		"https://my-store.myshopify.com/admin/api/2023-10",
		BaseURL("my-store", "2023-10"))

	// The domain suffix is stripped before rebuilding the URL, never doubled.
	assert.Equal(t,
		"https://my-store.myshopify.com/admin/api/2023-10",
		BaseURL("my-store.myshopify.com", "2023-10"))
}

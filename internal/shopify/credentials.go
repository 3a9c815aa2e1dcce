// Package shopify wraps the slice of the Shopify Admin REST API the sync
// pipeline consumes: credential validation, endpoint construction, cursor
// pagination and the authenticated HTTP client.
package shopify

import (
	"regexp"
	"strings"
)

const domainSuffix = ".myshopify.com"

var shopNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

// ValidateCredentials checks the shop name and access token before any
// network call is made. It returns false plus a human-readable reason on
// failure. No side effects.
func ValidateCredentials(shopName, accessToken string) (bool, string) {
	if shopName == "" || accessToken == "" {
		return false, "Missing Shopify credentials. Please check your .env file."
	}

	if len(accessToken) < 20 {
		return false, "Access token appears to be invalid (too short)"
	}

	if !shopNamePattern.MatchString(normalizeShopName(shopName)) {
		return false, "Shop name contains invalid characters. Use only letters, numbers, and hyphens."
	}

	return true, ""
}

// normalizeShopName lowercases, trims, and strips the .myshopify.com
// suffix when present.
func normalizeShopName(shopName string) string {
	clean := strings.ToLower(strings.TrimSpace(shopName))
	return strings.TrimSuffix(clean, domainSuffix)
}

// BaseURL builds the Admin API base URL for the store at the pinned API
// version, e.g. https://my-store.myshopify.com/admin/api/2023-10.
// Malformed shop names are caught by ValidateCredentials beforehand.
func BaseURL(shopName, apiVersion string) string {
	return "https://" + normalizeShopName(shopName) + domainSuffix + "/admin/api/" + apiVersion
}

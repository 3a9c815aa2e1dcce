package shopify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestConnectionTimeoutMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "token", 50*time.Millisecond)

	_, err := c.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}

func TestTestConnectionHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors":"Invalid API key or access token"}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "token", time.Second)

	_, err := c.TestConnection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to Shopify API")
	assert.Contains(t, err.Error(), "401")
	assert.NotContains(t, err.Error(), "timed out")
}

func TestGetPageReturnsLinkHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "token", r.Header.Get("X-Shopify-Access-Token"))
		w.Header().Set("Link", `<https://example.myshopify.com/next>; rel="next"`)
		fmt.Fprint(w, `{"products":[]}`)
	}))
	defer srv.Close()

	c := NewClientWithBaseURL(srv.URL, "token", time.Second)

	body, link, err := c.GetPage(context.Background(), srv.URL+"/products.json")
	require.NoError(t, err)
	assert.Equal(t, `<https://example.myshopify.com/next>; rel="next"`, link)
	assert.NotNil(t, body["products"])
}

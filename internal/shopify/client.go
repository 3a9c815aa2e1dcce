package shopify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Client issues authenticated requests against one store's Admin API.
// Every request carries the per-request timeout; there is no retry logic,
// the orchestrator treats any transport failure as fatal for the sync.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewClient(shopName, accessToken, apiVersion string, timeout time.Duration) *Client {
	return NewClientWithBaseURL(BaseURL(shopName, apiVersion), accessToken, timeout)
}

// NewClientWithBaseURL builds a client against an explicit base URL,
// bypassing the shop-name resolution. Useful when the API is reached
// through a local proxy or a stub server.
func NewClientWithBaseURL(baseURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   accessToken,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// BaseURL returns the resolved Admin API base URL for this client.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// TestConnection probes the shop-info endpoint to verify the credentials
// and connectivity before the fetch loops start. A timeout is reported
// with a distinct message from other transport or HTTP-status failures.
func (c *Client) TestConnection(ctx context.Context) (string, error) {
	body, _, err := c.GetPage(ctx, c.baseURL+"/shop.json")
	if err != nil {
		if isTimeout(err) {
			return "", fmt.Errorf("connection to Shopify API timed out after %s", c.client.Timeout)
		}
		return "", fmt.Errorf("failed to connect to Shopify API: %w", err)
	}

	shop, _ := body["shop"].(map[string]any)
	name, _ := shop["name"].(string)
	return name, nil
}

// GetPage fetches one API page and returns the decoded JSON object plus
// the raw Link header governing pagination.
func (c *Client) GetPage(ctx context.Context, url string) (map[string]any, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, "", fmt.Errorf("Shopify API error %d: %s", resp.StatusCode, string(payload))
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, "", fmt.Errorf("failed to decode response: %w", err)
	}

	return body, resp.Header.Get("Link"), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

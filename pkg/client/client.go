package client

import (
	"time"

	"github.com/cinedeck/cli/pkg/config"
	"github.com/cinedeck/cli/pkg/logger"
	"github.com/go-resty/resty/v2"
)

var httpClient *resty.Client

func newClient(baseURL string, timeout time.Duration) *resty.Client {
	c := resty.New()
	c.SetBaseURL(baseURL)
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", "CineDeck-CLI/0.1.0")
	c.SetHeader("Accept", "application/json")
	c.SetHeader("Content-Type", "application/json")

	// Request/response logging; observability only, never control flow
	c.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logger.Debug("HTTP request", "method", req.Method, "url", req.URL, "headers", req.Header)
		return nil
	})

	c.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			logger.Error("HTTP error response", "status", resp.StatusCode(), "url", resp.Request.URL, "body", string(resp.Body()))
		} else {
			logger.Debug("HTTP response", "status", resp.StatusCode(), "url", resp.Request.URL)
		}
		return nil
	})

	return c
}

// Init initializes the HTTP client from configuration
func Init() {
	baseURL := config.GetString("api.base_url")
	timeout := time.Duration(config.GetInt("api.timeout")) * time.Second
	httpClient = newClient(baseURL, timeout)
}

// Configure points the client at an explicit base URL and timeout,
// bypassing configuration. Used by tests and one-off overrides.
func Configure(baseURL string, timeout time.Duration) {
	httpClient = newClient(baseURL, timeout)
}

// GetClient returns the HTTP client
func GetClient() *resty.Client {
	if httpClient == nil {
		Init()
	}
	return httpClient
}

package client

import (
	"testing"
	"time"
)

// TestGetClientInitialization validates client initialization
func TestGetClientInitialization(t *testing.T) {
	httpClient = nil

	client := GetClient()
	if client == nil {
		t.Fatal("GetClient should not return nil")
	}
}

// TestGetClientSingleton validates that GetClient returns same instance
func TestGetClientSingleton(t *testing.T) {
	httpClient = nil

	client1 := GetClient()
	client2 := GetClient()

	if client1 != client2 {
		t.Error("GetClient should return same instance")
	}
}

// TestConfigure validates explicit base URL and timeout
func TestConfigure(t *testing.T) {
	Configure("http://example.test:9999", 3*time.Second)

	client := GetClient()
	if client.BaseURL != "http://example.test:9999" {
		t.Errorf("BaseURL = %q", client.BaseURL)
	}
}

// TestJSONHeaders validates default headers
func TestJSONHeaders(t *testing.T) {
	Configure("http://example.test", 1*time.Second)

	headers := GetClient().Header
	if got := headers.Get("Accept"); got != "application/json" {
		t.Errorf("Accept header = %q", got)
	}
	if got := headers.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type header = %q", got)
	}
	if got := headers.Get("User-Agent"); got == "" {
		t.Error("User-Agent header should be set")
	}
}

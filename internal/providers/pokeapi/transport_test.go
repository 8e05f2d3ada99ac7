package pokeapi

import (
	"net/http"
	"testing"
	"time"
)

func TestResolveHTTPClientDefaultsTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 0)
	httpClient, ok := client.(*http.Client)
	if !ok {
		t.Fatalf("expected *http.Client, got %T", client)
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout %s, got %s", defaultHTTPTimeout, httpClient.Timeout)
	}
}

func TestResolveHTTPClientHonoursTimeout(t *testing.T) {
	client := resolveHTTPClient(nil, 3*time.Second)
	if httpClient := client.(*http.Client); httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", httpClient.Timeout)
	}
}

func TestResolveHTTPClientUsesProvidedClient(t *testing.T) {
	custom := &http.Client{Timeout: 5 * time.Second}
	client := resolveHTTPClient(custom, time.Second)
	if client != custom {
		t.Fatalf("expected custom client to be returned")
	}
}

func TestResolveUserAgent(t *testing.T) {
	if got := resolveUserAgent(""); got != defaultUserAgent {
		t.Fatalf("expected default user agent, got %s", got)
	}
	if got := resolveUserAgent("custom/1.0"); got != "custom/1.0" {
		t.Fatalf("expected custom user agent, got %s", got)
	}
}

package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"pokedex-service/internal/providers"
)

// Config controls how the client reaches the catalogue API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client fetches catalogue resources over HTTP and decodes their JSON bodies.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    providers.NormalizeBaseURL(cfg.BaseURL),
		userAgent:  resolveUserAgent(cfg.UserAgent),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// Name identifies the client in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// BaseURL returns the root relative locators are resolved against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchResource issues a GET for locator and decodes the body into dst.
// A nil dst discards the body after checking the status.
func (c *Client) FetchResource(ctx context.Context, locator string, dst any) error {
	target := providers.ResolveLocator(c.baseURL, locator)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return providers.NetworkError(locator, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return providers.NetworkError(locator, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return providers.NotFoundError(locator, resp.StatusCode,
			fmt.Errorf("pokeapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	if dst == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		if isTransportError(ctx, err) {
			return providers.NetworkError(locator, err)
		}
		return providers.DecodeError(locator, err)
	}
	return nil
}

// isTransportError reports whether a body read failed because the connection did, not the JSON.
func isTransportError(ctx context.Context, err error) bool {
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

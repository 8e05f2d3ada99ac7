package providers

import "context"

// Fetcher retrieves one remote catalogue resource and decodes it into dst.
// The locator is either an absolute URL or a path relative to the catalogue base URL.
// Implementations return a *FetchError describing why the resource could not be produced.
type Fetcher interface {
	FetchResource(ctx context.Context, locator string, dst any) error
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, locator string, dst any) error

// FetchResource calls f.
func (f FetcherFunc) FetchResource(ctx context.Context, locator string, dst any) error {
	return f(ctx, locator, dst)
}

package testutil

import (
	"context"
	"sync"

	"pokedex-service/internal/providers"
)

// ErrFetcher fails every fetch with Err.
type ErrFetcher struct {
	Err error
}

func (f ErrFetcher) FetchResource(ctx context.Context, locator string, dst any) error {
	_ = ctx
	_ = dst
	if f.Err == nil {
		return providers.NetworkError(locator, context.Canceled)
	}
	return f.Err
}

// RecordingFetcher delegates to Inner and records every locator requested.
type RecordingFetcher struct {
	Inner providers.Fetcher

	mu       sync.Mutex
	locators []string
}

func (f *RecordingFetcher) FetchResource(ctx context.Context, locator string, dst any) error {
	f.mu.Lock()
	f.locators = append(f.locators, locator)
	f.mu.Unlock()
	return f.Inner.FetchResource(ctx, locator, dst)
}

// Locators returns a copy of the requested locators in call order.
func (f *RecordingFetcher) Locators() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.locators...)
}

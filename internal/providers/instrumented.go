package providers

import (
	"context"
	"log/slog"
	"time"

	"pokedex-service/internal/logging"
	"pokedex-service/internal/metrics"
)

// instrumentedFetcher wraps a Fetcher with per-call logging and metrics. It never alters results.
type instrumentedFetcher struct {
	inner    Fetcher
	logger   *slog.Logger
	metrics  *metrics.Recorder
	provider string
	now      func() time.Time
}

// NewInstrumentedFetcher decorates inner so every fetch is timed, counted, and logged under provider.
func NewInstrumentedFetcher(inner Fetcher, logger *slog.Logger, recorder *metrics.Recorder, provider string) Fetcher {
	if provider == "" {
		provider = "provider"
	}
	return &instrumentedFetcher{
		inner:    inner,
		logger:   logger,
		metrics:  recorder,
		provider: provider,
		now:      time.Now,
	}
}

func (f *instrumentedFetcher) FetchResource(ctx context.Context, locator string, dst any) error {
	start := f.now()
	err := f.inner.FetchResource(ctx, locator, dst)
	duration := f.now().Sub(start)

	kind := string(KindOf(err))
	if err != nil && kind == "" {
		kind = string(KindNetwork)
	}
	f.metrics.RecordFetch(f.provider, duration, kind)

	if err != nil {
		logWithProvider(ctx, f.logger, slog.LevelDebug, f.provider, "resource fetch failed",
			slog.String(logging.FieldLocator, locator),
			slog.String(logging.FieldKind, kind),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Any("err", err),
		)
		return err
	}
	logWithProvider(ctx, f.logger, slog.LevelDebug, f.provider, "resource fetched",
		slog.String(logging.FieldLocator, locator),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return nil
}

package server

import (
	"log/slog"

	"pokedex-service/internal/config"
	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

// fetcherFactory assembles the configured fetcher with the shared instrumentation wrapper.
type fetcherFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newFetcherFactory(logger *slog.Logger, metrics *metrics.Recorder) fetcherFactory {
	return fetcherFactory{logger: logger, metrics: metrics}
}

func (f fetcherFactory) build(cfg config.Config) providers.Fetcher {
	base := selectFetcher(cfg, f.logger)
	return providers.NewInstrumentedFetcher(base, f.logger, f.metrics, normalizeProviderName("", base))
}

// NewFetcher builds the fetcher named by cfg.Provider, instrumented with logger and recorder.
// The CLI uses it to share provider wiring with the server.
func NewFetcher(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.Fetcher {
	return newFetcherFactory(logger, recorder).build(cfg)
}

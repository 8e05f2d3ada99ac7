package catalog

import (
	"log/slog"

	"pokedex-service/internal/metrics"
	"pokedex-service/internal/providers"
)

// DefaultPageSize is the page limit used when callers pass none.
const DefaultPageSize = 60

// Options tunes a Service. Zero values select defaults.
type Options struct {
	Logger  *slog.Logger
	Metrics *metrics.Recorder
	// PageSize replaces DefaultPageSize when positive.
	PageSize int
	// Concurrency bounds the per-item detail fetches of a page; 0 means unbounded.
	Concurrency int
}

// Service aggregates catalogue resources fetched through a Fetcher into view models.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	fetcher     providers.Fetcher
	logger      *slog.Logger
	metrics     *metrics.Recorder
	pageSize    int
	concurrency int
}

// NewService constructs a Service backed by fetcher.
func NewService(fetcher providers.Fetcher, opts Options) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	concurrency := opts.Concurrency
	if concurrency < 0 {
		concurrency = 0
	}
	return &Service{
		fetcher:     fetcher,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		pageSize:    pageSize,
		concurrency: concurrency,
	}
}

// PageSize returns the default page limit.
func (s *Service) PageSize() int {
	return s.pageSize
}

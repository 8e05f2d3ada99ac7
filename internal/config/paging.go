package config

// PagingConfig controls page aggregation.
type PagingConfig struct {
	PageSize int
	// Concurrency bounds per-item detail fetches; 0 means unbounded.
	Concurrency int
}

func loadPaging() PagingConfig {
	return PagingConfig{
		PageSize:    intEnvOrDefault(envPageSize, defaultPageSize),
		Concurrency: intEnvOrDefault(envPageConcurrency, defaultPageConcurrency),
	}
}

package config

// Config holds runtime configuration for the server and CLI.
type Config struct {
	Port     string
	Provider string
	PokeAPI  PokeAPIConfig
	Paging   PagingConfig
	Sessions SessionsConfig
	Metrics  MetricsConfig
	Log      LogConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: envOrDefault(envProvider, defaultProvider),
		PokeAPI:  loadPokeAPI(),
		Paging:   loadPaging(),
		Sessions: loadSessions(),
		Metrics:  loadMetrics(),
		Log:      loadLog(),
	}
}

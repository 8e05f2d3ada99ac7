package config

import "time"

const (
	envPort             = "PORT"
	envProvider         = "PROVIDER"
	envPokeAPIBaseURL   = "POKEAPI_BASE_URL"
	envPokeAPITimeout   = "POKEAPI_TIMEOUT"
	envPokeAPIUserAgent = "POKEAPI_USER_AGENT"
	envPageSize         = "PAGE_SIZE"
	envPageConcurrency  = "PAGE_CONCURRENCY"
	envMaxSessions      = "MAX_SESSIONS"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"

	defaultPort            = "4000"
	defaultProvider        = ProviderFixture
	defaultPokeAPIBaseURL  = "https://pokeapi.co/api/v2"
	defaultPokeAPITimeout  = 10 * time.Second
	defaultUserAgent       = "pokedex-service"
	defaultPageSize        = 60
	defaultPageConcurrency = 0
	defaultMaxSessions     = 1000
	defaultMetricsPort     = "9090"
	defaultServiceName     = "pokedex-service"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
)

// Provider names accepted by PROVIDER.
const (
	ProviderFixture = "fixture"
	ProviderPokeAPI = "pokeapi"
)

package server

import (
	"log/slog"
	"strings"

	"pokedex-service/internal/config"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
	"pokedex-service/internal/providers/fixture"
	"pokedex-service/internal/providers/pokeapi"
)

func selectFetcher(cfg config.Config, logger *slog.Logger) providers.Fetcher {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", config.ProviderFixture:
		return fixture.New()
	case config.ProviderPokeAPI:
		return pokeapi.NewClient(pokeapi.Config{
			BaseURL:   cfg.PokeAPI.BaseURL,
			Timeout:   cfg.PokeAPI.Timeout,
			UserAgent: cfg.PokeAPI.UserAgent,
		})
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}

package config

import "time"

// PokeAPIConfig controls how we talk to the remote catalogue.
type PokeAPIConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

func loadPokeAPI() PokeAPIConfig {
	return PokeAPIConfig{
		BaseURL:   envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Timeout:   durationEnvOrDefault(envPokeAPITimeout, defaultPokeAPITimeout),
		UserAgent: envOrDefault(envPokeAPIUserAgent, defaultUserAgent),
	}
}

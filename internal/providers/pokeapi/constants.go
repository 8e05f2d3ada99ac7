package pokeapi

import "time"

const (
	providerName       = "pokeapi"
	defaultHTTPTimeout = 10 * time.Second
	defaultUserAgent   = "pokedex-service"
	// maxErrorBody bounds how much of a failed response body is kept for the error message.
	maxErrorBody = 512
)

package http

import (
	nethttp "net/http"

	"pokedex-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/pokemon", handler.ListPokemon)
	mux.HandleFunc("/pokemon/", handler.Pokemon)
	mux.HandleFunc("/search", handler.Search)
	mux.HandleFunc("/sessions", handler.CreateSession)
	mux.HandleFunc("/sessions/", handler.Session)
	return mux
}

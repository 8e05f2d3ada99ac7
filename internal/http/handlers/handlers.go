package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"strings"

	"pokedex-service/internal/app/listing"
	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/store"
)

// Catalog is the aggregation surface the HTTP layer serves.
type Catalog interface {
	listing.Source
	LoadDetail(ctx context.Context, name string) (pokemon.Detail, error)
	EvolutionFor(ctx context.Context, name string) (pokemon.EvolutionSequence, error)
	PageSize() int
}

// Sessions stores browsing sessions.
type Sessions interface {
	Create(list *listing.List) store.Session
	Get(id string) (store.Session, bool)
	Delete(id string) (store.Session, bool)
}

// Handler wires HTTP routes to the catalogue service and session store.
type Handler struct {
	catalog  Catalog
	sessions Sessions
	logger   *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(catalog Catalog, sessions Sessions, logger *slog.Logger) *Handler {
	return &Handler{
		catalog:  catalog,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	path := r.URL.Path
	switch {
	case path == "/health":
		h.Health(w, r)
	case path == "/ready":
		h.Ready(w, r)
	case path == "/pokemon" || path == "/pokemon/":
		h.ListPokemon(w, r)
	case strings.HasPrefix(path, "/pokemon/"):
		h.Pokemon(w, r)
	case path == "/search":
		h.Search(w, r)
	case path == "/sessions" || path == "/sessions/":
		h.CreateSession(w, r)
	case strings.HasPrefix(path, "/sessions/"):
		h.Session(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic. The service holds no warm state, so it is
// ready once wired.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.catalog == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "not ready", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

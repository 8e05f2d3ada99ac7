package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"pokedex-service/internal/domain/pokemon"
	"pokedex-service/internal/http/requestutil"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
)

// SearchResponse is the payload of search endpoints.
type SearchResponse struct {
	Query   string            `json:"query"`
	Results []pokemon.Pokemon `json:"results"`
}

// ListPokemon serves one aggregated page: GET /pokemon?offset=&limit=.
func (h *Handler) ListPokemon(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	offset, err := requestutil.IntQuery(r, "offset", 0)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	limit, err := requestutil.IntQuery(r, "limit", h.catalog.PageSize())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	page, err := h.catalog.LoadPage(r.Context(), offset, limit)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, page, h.logger)
}

// Pokemon serves GET /pokemon/{name} and GET /pokemon/{name}/evolution.
func (h *Handler) Pokemon(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	segments, err := requestutil.PathSegments(r.URL.Path, "/pokemon")
	if err != nil || len(segments) == 0 || !validName(segments[0]) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid pokemon name", h.logger)
		return
	}
	name := segments[0]

	switch {
	case len(segments) == 1:
		h.detail(w, r, name)
	case len(segments) == 2 && segments[1] == "evolution":
		h.evolution(w, r, name)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) detail(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	detail, err := h.catalog.LoadDetail(r.Context(), name)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, detail, h.logger)
}

func (h *Handler) evolution(w nethttp.ResponseWriter, r *nethttp.Request, name string) {
	seq, err := h.catalog.EvolutionFor(r.Context(), name)
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, pokemon.NewEvolutionView(seq), h.logger)
}

// Search serves GET /search?q=. With no loaded list to match against it goes
// straight to the single remote lookup; a miss is an empty result, not an error.
func (h *Handler) Search(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing query", h.logger)
		return
	}

	results, err := h.catalog.Search(r.Context(), nil, query)
	h.writeSearch(w, r, query, results, err)
}

func (h *Handler) writeSearch(w nethttp.ResponseWriter, r *nethttp.Request, query string, results []pokemon.Pokemon, err error) {
	if err != nil && !providers.IsNotFound(err) {
		writeFailure(w, r, err, h.logger)
		return
	}
	if results == nil {
		results = []pokemon.Pokemon{}
	}
	logging.Info(loggerFromContext(r, h.logger), "search served",
		slog.String("query", query),
		slog.Int(logging.FieldCount, len(results)),
	)
	writeJSON(w, nethttp.StatusOK, SearchResponse{Query: query, Results: results}, h.logger)
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, " \t/?#")
}

package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"pokedex-service/internal/app/listing"
	"pokedex-service/internal/http/requestutil"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/store"
)

// SessionResponse is a session id plus the snapshot of its list.
type SessionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	listing.Snapshot
}

// CreateSession serves POST /sessions?limit=: it creates a list and loads its first page.
// A failed first page still creates the session; the snapshot carries the error.
func (h *Handler) CreateSession(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodPost {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	limit, err := requestutil.IntQuery(r, "limit", h.catalog.PageSize())
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	list := listing.New(h.catalog, listing.Options{Limit: limit, Logger: h.logger})
	session := h.sessions.Create(list)
	r = h.withSessionLogger(r, session)
	logger := loggerFromContext(r, h.logger)

	snap, err := list.Start(r.Context())
	if err != nil {
		logging.Warn(logger, "session first page failed", slog.Any("err", err))
	} else {
		logging.Info(logger, "session created", slog.Int(logging.FieldCount, len(snap.Items)))
	}
	writeJSON(w, nethttp.StatusCreated, sessionResponse(session, snap), h.logger)
}

// Session serves GET|DELETE /sessions/{id}, POST /sessions/{id}/more and GET /sessions/{id}/search.
func (h *Handler) Session(w nethttp.ResponseWriter, r *nethttp.Request) {
	segments, err := requestutil.PathSegments(r.URL.Path, "/sessions")
	if err != nil || len(segments) == 0 || len(segments) > 2 {
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}
	id := segments[0]
	action := ""
	if len(segments) == 2 {
		action = segments[1]
	}

	switch {
	case action == "" && r.Method == nethttp.MethodGet:
		h.withSession(w, r, id, h.sessionSnapshot)
	case action == "" && r.Method == nethttp.MethodDelete:
		h.deleteSession(w, r, id)
	case action == "more" && r.Method == nethttp.MethodPost:
		h.withSession(w, r, id, h.loadMore)
	case action == "search" && r.Method == nethttp.MethodGet:
		h.withSession(w, r, id, h.sessionSearch)
	case action == "" || action == "more" || action == "search":
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) withSession(w nethttp.ResponseWriter, r *nethttp.Request, id string, fn func(nethttp.ResponseWriter, *nethttp.Request, store.Session)) {
	session, ok := h.sessions.Get(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "session not found", h.logger)
		return
	}
	fn(w, h.withSessionLogger(r, session), session)
}

// withSessionLogger tags the request-scoped logger with the session id. The list
// itself only keeps the handler's base logger, so no request id outlives its request.
func (h *Handler) withSessionLogger(r *nethttp.Request, session store.Session) *nethttp.Request {
	logger := logging.With(loggerFromContext(r, h.logger), slog.String(logging.FieldSession, session.ID))
	if logger == nil {
		return r
	}
	return r.WithContext(logging.WithLogger(r.Context(), logger))
}

func (h *Handler) sessionSnapshot(w nethttp.ResponseWriter, r *nethttp.Request, session store.Session) {
	writeJSON(w, nethttp.StatusOK, sessionResponse(session, session.List.Snapshot()), h.logger)
}

func (h *Handler) loadMore(w nethttp.ResponseWriter, r *nethttp.Request, session store.Session) {
	snap, err := session.List.LoadMore(r.Context())
	if err != nil {
		writeFailure(w, r, err, h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, sessionResponse(session, snap), h.logger)
}

func (h *Handler) sessionSearch(w nethttp.ResponseWriter, r *nethttp.Request, session store.Session) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	results, err := session.List.Search(r.Context(), query)
	if errors.Is(err, listing.ErrStale) {
		writeFailure(w, r, err, h.logger)
		return
	}
	h.writeSearch(w, r, query, results, err)
}

func (h *Handler) deleteSession(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	session, ok := h.sessions.Delete(id)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "session not found", h.logger)
		return
	}
	session.List.Reset()
	logging.Info(loggerFromContext(h.withSessionLogger(r, session), h.logger), "session dismissed")
	w.WriteHeader(nethttp.StatusNoContent)
}

func sessionResponse(session store.Session, snap listing.Snapshot) SessionResponse {
	return SessionResponse{ID: session.ID, CreatedAt: session.CreatedAt, Snapshot: snap}
}

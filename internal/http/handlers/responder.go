package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pokedex-service/internal/app/catalog"
	"pokedex-service/internal/app/listing"
	"pokedex-service/internal/http/middleware"
	"pokedex-service/internal/logging"
	"pokedex-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeFailure maps a catalogue error onto an HTTP status and logs it.
func writeFailure(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusFor(err)
	logging.Warn(loggerFromContext(r, logger), "request failed",
		slog.Int(logging.FieldStatusCode, status),
		slog.String(logging.FieldKind, string(providers.KindOf(err))),
		slog.Any("err", err),
	)
	writeError(w, r, status, message, logger)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, listing.ErrStale):
		return http.StatusConflict, "request superseded"
	case errors.Is(err, catalog.ErrNoEvolutionChain):
		return http.StatusNotFound, "evolution chain unavailable"
	}

	fetchErr, ok := providers.AsFetchError(err)
	if !ok {
		return http.StatusInternalServerError, "internal error"
	}
	switch fetchErr.Kind {
	case providers.KindNotFound:
		// A mandatory fetch reports not_found even when the cause was a broken upstream.
		if inner, ok := providers.AsFetchError(fetchErr.Err); ok && inner.Kind != providers.KindNotFound {
			return http.StatusBadGateway, "upstream unavailable"
		}
		return http.StatusNotFound, "not found"
	default:
		return http.StatusBadGateway, "upstream unavailable"
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

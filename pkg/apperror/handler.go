package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// WriteJSON writes err as a JSON error response. Server-side failures are
// logged with their internal cause; client errors are not.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	appErr := From(err)

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("code", appErr.Code),
			logger.Error(err),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.Body())
}

// NotFoundHandler answers unknown routes with the JSON error envelope.
func NotFoundHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, r, log, ErrNotFound)
	}
}

// MethodNotAllowedHandler answers known routes hit with the wrong method.
func MethodNotAllowedHandler(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, r, log, ErrMethodNotAllowed)
	}
}

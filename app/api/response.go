// Package api holds the JSON response helpers shared by the backend handlers.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorBody is the payload sent with every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKResponse writes data as a 200 JSON response.
func OKResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, data any) {
	writeJSON(w, r, logger, http.StatusOK, data)
}

// ErrorResponse logs err and writes message as the error body. The cause is
// never sent to the caller.
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, message string, err error) {
	logger.ErrorContext(r.Context(), message, "path", r.URL.Path, "error", err)
	writeJSON(w, r, logger, status, ErrorBody{Error: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.ErrorContext(r.Context(), "failed to encode response", "path", r.URL.Path, "error", err)
	}
}

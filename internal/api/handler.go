// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gemba-score/backend/internal/scoring"
	"github.com/gemba-score/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store   store.Store
	scoring *scoring.Service
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(s store.Store, svc *scoring.Service, logger *slog.Logger) *Handler {
	return &Handler{
		store:   s,
		scoring: svc,
		logger:  logger,
	}
}

// ErrorResponse is the structured error body for every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a structured error body with the given status code.
func respondError(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, ErrorResponse{Error: message, Details: details})
}

// decodeJSON decodes the request body into v. Returns false (after writing a
// 400 response) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json", err.Error())
		return false
	}
	return true
}

// requireAppID enforces the mandatory X-APP-ID header. Returns false (after
// writing a 401 response) when the header is absent or blank.
func requireAppID(w http.ResponseWriter, r *http.Request) (string, bool) {
	appID := strings.TrimSpace(r.Header.Get("X-APP-ID"))
	if appID == "" {
		respondError(w, http.StatusUnauthorized, "Missing X-APP-ID header", "")
		return "", false
	}
	return appID, true
}

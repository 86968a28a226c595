// internal/api/router.go
package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Scoring
	mux.HandleFunc("POST /api/v1/score", h.scoreTranslation)
	mux.HandleFunc("GET /api/v1/scores", h.listScores)
	mux.HandleFunc("GET /api/v1/scores/export", h.exportScores)

	// Monitoring dashboard
	mux.HandleFunc("GET /{$}", h.dashboard)
}

package api

import (
	"encoding/json"
	"net/http"
	"time"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportData struct {
	Version    string                `json:"version"`
	ExportedAt string                `json:"exported_at"`
	Scores     []ScoreRecordResponse `json:"scores"`
}

// exportLimit bounds a single export download.
const exportLimit = 1000

// ── Handlers ────────────────────────────────────────────────────────────────

// exportScores downloads persisted scores as a JSON file.
// @Summary      Export scores
// @Description  Download persisted scores as a JSON file, with optional filters.
// @Tags         Scoring
// @Produce      json
// @Param        threshold  query     number  false  "Only records with score at or below this value (0-100)"
// @Param        app_id     query     string  false  "Only records from this application"
// @Success      200        {object}  ExportData
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /api/v1/scores/export [get]
func (h *Handler) exportScores(w http.ResponseWriter, r *http.Request) {
	// Export takes no limit parameter; a stray one is ignored rather than
	// validated against the list endpoint's bounds.
	filter, ok := parseScoreFilter(w, r)
	if !ok {
		return
	}
	filter.Limit = exportLimit

	records, err := h.store.ListScores(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to export scores", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to export scores", "")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Scores:     make([]ScoreRecordResponse, len(records)),
	}
	for i, rec := range records {
		exportData.Scores[i] = toRecordResponse(rec)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=gemba-scores-export.json")
	json.NewEncoder(w).Encode(exportData)
}

package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gemba-score/backend/internal/domain/score"
	"github.com/gemba-score/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type ScoreRequest struct {
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
	SourceText string `json:"source_text"`
	TargetText string `json:"target_text"`
	Method     string `json:"method"`
}

// ScoreResponse echoes the computed score. Adequacy, fluency and rationale are
// null for every method except STRUCTURED-DA (GEMBA-MQM sets rationale only).
type ScoreResponse struct {
	Score      float64  `json:"score"`
	MethodUsed string   `json:"method_used"`
	RequestID  string   `json:"request_id"`
	Adequacy   *float64 `json:"adequacy"`
	Fluency    *float64 `json:"fluency"`
	Rationale  *string  `json:"rationale"`
}

// ScoreRecordResponse is one persisted record in a listing, with every stored
// field included.
type ScoreRecordResponse struct {
	ID             string    `json:"id"`
	AppID          string    `json:"app_id"`
	SourceLang     string    `json:"source_lang"`
	TargetLang     string    `json:"target_lang"`
	SourceText     string    `json:"source_text"`
	TargetText     string    `json:"target_text"`
	ScoringMethod  string    `json:"scoring_method"`
	LLMModel       string    `json:"llm_model"`
	Score          float64   `json:"score"`
	AdequacyScore  *float64  `json:"adequacy_score"`
	FluencyScore   *float64  `json:"fluency_score"`
	Rationale      *string   `json:"rationale"`
	RawLLMResponse *string   `json:"raw_llm_response,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toRecordResponse(rec score.Record) ScoreRecordResponse {
	return ScoreRecordResponse{
		ID:             rec.ID,
		AppID:          rec.AppID,
		SourceLang:     rec.SourceLang,
		TargetLang:     rec.TargetLang,
		SourceText:     rec.SourceText,
		TargetText:     rec.TargetText,
		ScoringMethod:  string(rec.Method),
		LLMModel:       rec.Model,
		Score:          rec.Score,
		AdequacyScore:  rec.Adequacy,
		FluencyScore:   rec.Fluency,
		Rationale:      rec.Rationale,
		RawLLMResponse: rec.RawResponse,
		CreatedAt:      rec.CreatedAt,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// scoreTranslation scores one translation with the requested method.
// @Summary      Score a translation
// @Description  Evaluate machine translation quality with an LLM judge and persist the result.
// @Tags         Scoring
// @Accept       json
// @Produce      json
// @Param        X-APP-ID  header    string        true  "Calling application identifier"
// @Param        body      body      ScoreRequest  true  "Translation to score"
// @Success      200       {object}  ScoreResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      401       {object}  ErrorResponse  "missing X-APP-ID header"
// @Failure      500       {object}  ErrorResponse
// @Router       /api/v1/score [post]
func (h *Handler) scoreTranslation(w http.ResponseWriter, r *http.Request) {
	appID, ok := requireAppID(w, r)
	if !ok {
		return
	}

	var req ScoreRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	method, err := score.ParseMethod(req.Method)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid scoring method", err.Error())
		return
	}

	domainReq := score.Request{
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
		SourceText: req.SourceText,
		TargetText: req.TargetText,
		Method:     method,
	}
	if err := domainReq.Normalize(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	comp, err := h.scoring.Score(r.Context(), domainReq)
	if err != nil {
		h.logger.Error("scoring failed",
			"app_id", appID,
			"method", req.Method,
			"error", err,
		)
		respondError(w, http.StatusInternalServerError, "scoring failed", err.Error())
		return
	}

	saved, err := h.store.AppendScore(r.Context(), score.Record{
		AppID:       appID,
		SourceLang:  domainReq.SourceLang,
		TargetLang:  domainReq.TargetLang,
		SourceText:  domainReq.SourceText,
		TargetText:  domainReq.TargetText,
		Method:      comp.Method,
		Model:       comp.Model,
		Score:       comp.Score,
		Adequacy:    comp.Adequacy,
		Fluency:     comp.Fluency,
		Rationale:   comp.Rationale,
		RawResponse: &comp.RawResponse,
	})
	if err != nil {
		h.logger.Error("failed to persist score", "app_id", appID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to persist score", "")
		return
	}

	respondJSON(w, http.StatusOK, ScoreResponse{
		Score:      comp.Score,
		MethodUsed: string(comp.Method),
		RequestID:  saved.ID,
		Adequacy:   comp.Adequacy,
		Fluency:    comp.Fluency,
		Rationale:  comp.Rationale,
	})
}

// listScores lists persisted scores, newest first.
// @Summary      List scores
// @Description  List persisted scores, newest first, with optional filters.
// @Tags         Scoring
// @Produce      json
// @Param        limit      query     int     false  "Maximum records to return (1-200, default 25)"
// @Param        threshold  query     number  false  "Only records with score at or below this value (0-100)"
// @Param        app_id     query     string  false  "Only records from this application"
// @Success      200        {array}   ScoreRecordResponse
// @Failure      400        {object}  ErrorResponse
// @Failure      500        {object}  ErrorResponse
// @Router       /api/v1/scores [get]
func (h *Handler) listScores(w http.ResponseWriter, r *http.Request) {
	filter, ok := parseListFilter(w, r)
	if !ok {
		return
	}

	records, err := h.store.ListScores(r.Context(), filter)
	if err != nil {
		h.logger.Error("failed to load scores", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load scores", "")
		return
	}

	response := make([]ScoreRecordResponse, len(records))
	for i, rec := range records {
		response[i] = toRecordResponse(rec)
	}
	respondJSON(w, http.StatusOK, response)
}

// ── Query parsing ───────────────────────────────────────────────────────────

const (
	defaultListLimit = 25
	maxListLimit     = 200
)

// parseScoreFilter validates the threshold/app_id query parameters shared by
// the list and export endpoints. Returns false (after writing a 400 response)
// on invalid input.
func parseScoreFilter(w http.ResponseWriter, r *http.Request) (store.ListFilter, bool) {
	var filter store.ListFilter

	if raw := r.URL.Query().Get("threshold"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || v > 100 {
			respondError(w, http.StatusBadRequest, "invalid threshold",
				"threshold must be a number between 0 and 100")
			return store.ListFilter{}, false
		}
		filter.Threshold = &v
	}

	filter.AppID = r.URL.Query().Get("app_id")
	return filter, true
}

// parseListFilter additionally validates the list endpoint's limit parameter.
func parseListFilter(w http.ResponseWriter, r *http.Request) (store.ListFilter, bool) {
	filter, ok := parseScoreFilter(w, r)
	if !ok {
		return store.ListFilter{}, false
	}

	filter.Limit = defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxListLimit {
			respondError(w, http.StatusBadRequest, "invalid limit",
				"limit must be an integer between 1 and 200")
			return store.ListFilter{}, false
		}
		filter.Limit = n
	}
	return filter, true
}

package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gemba-score/backend/internal/api"
	"github.com/gemba-score/backend/internal/llm"
	"github.com/gemba-score/backend/internal/scoring"
	"github.com/gemba-score/backend/internal/store"
)

// stubGateway answers by inspecting the prompt text, so every scoring method
// exercises its real message-building path against canned model output.
type stubGateway struct{}

func (stubGateway) Complete(_ context.Context, messages []llm.Message, _ float64) (string, error) {
	last := messages[len(messages)-1].Content
	switch {
	case strings.Contains(last, "Annotated error spans"):
		return "Score (0-100): 87.0", nil
	case strings.Contains(last, "one of two categories"):
		return "no-error", nil
	case strings.Contains(last, "Score the following translation"):
		return "98.5", nil
	}
	return "42", nil
}

func (stubGateway) Parse(_ context.Context, _ []llm.Message, schemaName string, out any, _ float64) error {
	payloads := map[string]string{
		"mqm_evaluation":           `{"score": 95.0, "analysis": "Stub MQM response"}`,
		"structured_da_evaluation": `{"score": 93.0, "adequacy": 4.5, "fluency": 4.0, "rationale": "Stub structured response"}`,
	}
	payload, ok := payloads[schemaName]
	if !ok {
		return fmt.Errorf("unexpected schema %q", schemaName)
	}
	return json.Unmarshal([]byte(payload), out)
}

func newTestServer(t *testing.T) (*httptest.Server, *store.SQLiteStore) {
	t.Helper()

	st, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := scoring.NewService(stubGateway{}, "gpt-4o-mini", logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(st, svc, logger))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, st
}

func postScore(t *testing.T, srv *httptest.Server, appID, method string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"source_lang": "English",
		"target_lang": "German",
		"source_text": "The weather is nice today.",
		"target_text": "Das Wetter ist heute schoen.",
		"method":      method,
	})
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/score", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if appID != "" {
		req.Header.Set("X-APP-ID", appID)
	}

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return v
}

func TestScoreEndpointPersistsEveryMethod(t *testing.T) {
	srv, st := newTestServer(t)

	methods := map[string]float64{
		"GEMBA-DA":      98.5,
		"GEMBA-MQM":     95.0,
		"GEMBA-ESA":     87.0,
		"STRUCTURED-DA": 93.0,
	}

	persisted := 0
	for method, want := range methods {
		resp := postScore(t, srv, "test-app", method)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", method, resp.StatusCode)
		}
		result := decodeBody[api.ScoreResponse](t, resp)

		if result.Score != want {
			t.Errorf("%s: score = %v, want %v", method, result.Score, want)
		}
		if result.MethodUsed != method {
			t.Errorf("%s: method_used = %q", method, result.MethodUsed)
		}
		if result.RequestID == "" {
			t.Errorf("%s: request_id is empty", method)
		}

		persisted++
		count, err := st.CountScores(context.Background(), "test-app")
		if err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != persisted {
			t.Errorf("%s: persisted count = %d, want %d", method, count, persisted)
		}
	}
}

func TestStructuredDAReturnsDetailedFields(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postScore(t, srv, "test-app", "STRUCTURED-DA")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	result := decodeBody[api.ScoreResponse](t, resp)

	if result.Adequacy == nil || *result.Adequacy != 4.5 {
		t.Errorf("adequacy = %v, want 4.5", result.Adequacy)
	}
	if result.Fluency == nil || *result.Fluency != 4.0 {
		t.Errorf("fluency = %v, want 4.0", result.Fluency)
	}
	if result.Rationale == nil || *result.Rationale != "Stub structured response" {
		t.Errorf("rationale = %v", result.Rationale)
	}
}

func TestDirectAssessmentLeavesDetailFieldsNull(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postScore(t, srv, "test-app", "GEMBA-DA")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	result := decodeBody[api.ScoreResponse](t, resp)

	if result.Adequacy != nil || result.Fluency != nil || result.Rationale != nil {
		t.Errorf("expected null detail fields, got adequacy=%v fluency=%v rationale=%v",
			result.Adequacy, result.Fluency, result.Rationale)
	}
}

func TestScoreRequiresAppIDHeader(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postScore(t, srv, "", "GEMBA-DA")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
	result := decodeBody[api.ErrorResponse](t, resp)
	if !strings.Contains(result.Error, "Missing X-APP-ID") {
		t.Errorf("error = %q, want mention of missing X-APP-ID", result.Error)
	}
}

func TestScoreRejectsUnknownMethod(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := postScore(t, srv, "test-app", "INVALID-METHOD")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestScoreRejectsBlankFields(t *testing.T) {
	srv, _ := newTestServer(t)

	body := `{"source_lang": "English", "target_lang": "  ", "source_text": "hi", "target_text": "hallo", "method": "GEMBA-DA"}`
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/score", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-APP-ID", "test-app")

	resp, err := srv.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestRepeatedRequestsGetDistinctIDs(t *testing.T) {
	srv, _ := newTestServer(t)

	first := decodeBody[api.ScoreResponse](t, postScore(t, srv, "test-app", "GEMBA-DA"))
	second := decodeBody[api.ScoreResponse](t, postScore(t, srv, "test-app", "GEMBA-DA"))

	if first.RequestID == second.RequestID {
		t.Errorf("identical requests share id %q", first.RequestID)
	}
}

func TestListScoresFiltersByThreshold(t *testing.T) {
	srv, _ := newTestServer(t)

	// GEMBA-ESA persists 87.0, GEMBA-DA persists 98.5.
	postScore(t, srv, "test-app", "GEMBA-ESA").Body.Close()
	postScore(t, srv, "test-app", "GEMBA-DA").Body.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/scores?threshold=90")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	records := decodeBody[[]api.ScoreRecordResponse](t, resp)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Score != 87.0 {
		t.Errorf("score = %v, want 87.0", records[0].Score)
	}
}

func TestListScoresFiltersByAppID(t *testing.T) {
	srv, _ := newTestServer(t)

	postScore(t, srv, "app-one", "GEMBA-DA").Body.Close()
	postScore(t, srv, "app-two", "GEMBA-DA").Body.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/scores?app_id=app-one")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	records := decodeBody[[]api.ScoreRecordResponse](t, resp)

	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].AppID != "app-one" {
		t.Errorf("app_id = %q, want app-one", records[0].AppID)
	}
}

func TestListScoresReturnsEmptyArray(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/api/v1/scores")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestListScoresRejectsInvalidParameters(t *testing.T) {
	srv, _ := newTestServer(t)

	for _, query := range []string{
		"limit=0", "limit=201", "limit=abc",
		"threshold=-1", "threshold=101", "threshold=abc",
	} {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/scores?" + query)
		if err != nil {
			t.Fatalf("%s: request failed: %v", query, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", query, resp.StatusCode)
		}
	}
}

func TestExportProducesDownloadEnvelope(t *testing.T) {
	srv, _ := newTestServer(t)

	postScore(t, srv, "test-app", "GEMBA-DA").Body.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/scores/export")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := resp.Header.Get("Content-Disposition"); !strings.Contains(got, "attachment") {
		t.Errorf("Content-Disposition = %q, want attachment", got)
	}
	data := decodeBody[api.ExportData](t, resp)

	if data.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", data.Version)
	}
	if data.ExportedAt == "" {
		t.Error("exported_at is empty")
	}
	if len(data.Scores) != 1 {
		t.Errorf("got %d scores, want 1", len(data.Scores))
	}
}

func TestExportIgnoresLimitParameter(t *testing.T) {
	srv, _ := newTestServer(t)

	postScore(t, srv, "test-app", "GEMBA-DA").Body.Close()
	postScore(t, srv, "test-app", "GEMBA-MQM").Body.Close()

	// limit belongs to the list endpoint; export returns everything either way
	for _, query := range []string{"?limit=1", "?limit=500"} {
		resp, err := srv.Client().Get(srv.URL + "/api/v1/scores/export" + query)
		if err != nil {
			t.Fatalf("%s: request failed: %v", query, err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: status = %d, want 200", query, resp.StatusCode)
		}
		data := decodeBody[api.ExportData](t, resp)
		if len(data.Scores) != 2 {
			t.Errorf("%s: got %d scores, want 2", query, len(data.Scores))
		}
	}
}

func TestDashboardServesAnalystConsole(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "Analyst Console") {
		t.Error("dashboard page does not mention Analyst Console")
	}
}

// Package scoring orchestrates one LLM-judged translation score per request.
// Each call dispatches to a method-specific strategy, runs one or two gateway
// round trips, and normalizes the outcome into a score.Computation.
package scoring

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/gemba-score/backend/internal/domain/score"
	"github.com/gemba-score/backend/internal/llm"
	"github.com/gemba-score/backend/internal/prompt"
)

// All gateway calls run at temperature zero so repeated requests score alike.
const defaultTemperature = 0.0

// ErrUnsupportedMethod marks a method value that slipped past input
// validation. Reaching it is a programming error, not a user error.
var ErrUnsupportedMethod = errors.New("unsupported scoring method")

// Error is the single domain-level scoring error crossing into the API layer.
type Error struct {
	Reason  string
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("scoring failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("scoring failed: %s", e.Reason)
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Service generates translation scores using a backing LLM gateway.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	gateway llm.Gateway
	model   string // model identifier recorded with each computation
	logger  *slog.Logger
}

// NewService creates a Service.
func NewService(gateway llm.Gateway, model string, logger *slog.Logger) *Service {
	return &Service{
		gateway: gateway,
		model:   model,
		logger:  logger,
	}
}

// Score runs the strategy for the request's method. The request must already
// be normalized by the caller.
func (s *Service) Score(ctx context.Context, req score.Request) (*score.Computation, error) {
	switch req.Method {
	case score.MethodGembaDA:
		return s.scoreGembaDA(ctx, req)
	case score.MethodGembaMQM:
		return s.scoreGembaMQM(ctx, req)
	case score.MethodGembaESA:
		return s.scoreGembaESA(ctx, req)
	case score.MethodStructuredDA:
		return s.scoreStructuredDA(ctx, req)
	}
	return nil, &Error{
		Reason:  fmt.Sprintf("method %q", req.Method),
		Wrapped: ErrUnsupportedMethod,
	}
}

// ============================================================================
// Strategies
// ============================================================================

// scoreGembaDA: one completion, score is the last number in the free text.
func (s *Service) scoreGembaDA(ctx context.Context, req score.Request) (*score.Computation, error) {
	response, err := s.gateway.Complete(ctx, []llm.Message{
		llm.User(prompt.DirectAssessment(req)),
	}, defaultTemperature)
	if err != nil {
		return nil, s.gatewayFailure(req, err)
	}

	value, err := extractLastNumber(response)
	if err != nil {
		return nil, err
	}

	return &score.Computation{
		Method:      req.Method,
		Score:       value,
		Model:       s.model,
		RawResponse: response,
	}, nil
}

// mqmResult is the structured shape requested from the model for GEMBA-MQM.
type mqmResult struct {
	Score    float64 `json:"score"`
	Analysis string  `json:"analysis"`
}

// scoreGembaMQM: system prompt, fixed one-shot exchange, then a structured
// parse of {score, analysis}.
func (s *Service) scoreGembaMQM(ctx context.Context, req score.Request) (*score.Computation, error) {
	messages := []llm.Message{
		llm.System(prompt.MQMSystem()),
		llm.User(prompt.MQMFewShotUser()),
		llm.Assistant(prompt.MQMFewShotAssistant()),
		llm.User(prompt.MQMFinal(req)),
	}

	var result mqmResult
	if err := s.gateway.Parse(ctx, messages, "mqm_evaluation", &result, defaultTemperature); err != nil {
		return nil, s.gatewayFailure(req, err)
	}

	raw, _ := json.Marshal(result)
	return &score.Computation{
		Method:      req.Method,
		Score:       result.Score,
		Model:       s.model,
		RawResponse: string(raw),
		Rationale:   &result.Analysis,
	}, nil
}

// scoreGembaESA: two strictly sequential completions. The second prompt
// embeds the first call's raw output verbatim, so it cannot start before the
// first call finishes.
func (s *Service) scoreGembaESA(ctx context.Context, req score.Request) (*score.Computation, error) {
	errorAnalysis, err := s.gateway.Complete(ctx, []llm.Message{
		llm.User(prompt.ESAErrorAnnotation(req)),
	}, defaultTemperature)
	if err != nil {
		return nil, s.gatewayFailure(req, err)
	}

	scoreResponse, err := s.gateway.Complete(ctx, []llm.Message{
		llm.User(prompt.ESAScoring(req, errorAnalysis)),
	}, defaultTemperature)
	if err != nil {
		return nil, s.gatewayFailure(req, err)
	}

	value, err := extractLastNumber(scoreResponse)
	if err != nil {
		return nil, err
	}

	return &score.Computation{
		Method:      req.Method,
		Score:       value,
		Model:       s.model,
		RawResponse: fmt.Sprintf("Errors:\n%s\n---\nScore:\n%s", errorAnalysis, scoreResponse),
	}, nil
}

// structuredDAResult is the structured shape requested for STRUCTURED-DA.
type structuredDAResult struct {
	Score     float64 `json:"score"`
	Adequacy  float64 `json:"adequacy"`
	Fluency   float64 `json:"fluency"`
	Rationale string  `json:"rationale"`
}

// scoreStructuredDA: one structured parse returning all four fields.
func (s *Service) scoreStructuredDA(ctx context.Context, req score.Request) (*score.Computation, error) {
	messages := []llm.Message{
		llm.System(prompt.StructuredDASystem()),
		llm.User(prompt.StructuredDAUser(req)),
	}

	var result structuredDAResult
	if err := s.gateway.Parse(ctx, messages, "structured_da_evaluation", &result, defaultTemperature); err != nil {
		return nil, s.gatewayFailure(req, err)
	}

	raw, _ := json.Marshal(result)
	return &score.Computation{
		Method:      req.Method,
		Score:       result.Score,
		Model:       s.model,
		RawResponse: string(raw),
		Adequacy:    &result.Adequacy,
		Fluency:     &result.Fluency,
		Rationale:   &result.Rationale,
	}, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (s *Service) gatewayFailure(req score.Request, err error) error {
	s.logger.Error("llm gateway call failed",
		"method", string(req.Method),
		"error", err,
	)
	return &Error{Reason: "gateway call failed", Wrapped: err}
}

var numberPattern = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// extractLastNumber returns the last numeric substring in the text. Models
// often emit intermediate numbers while reasoning; the final score comes last.
// Out-of-range values pass through unmodified.
func extractLastNumber(text string) (float64, error) {
	matches := numberPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return 0, &Error{Reason: "could not parse numeric score from LLM response"}
	}
	value, err := strconv.ParseFloat(matches[len(matches)-1], 64)
	if err != nil {
		return 0, &Error{Reason: "could not parse numeric score from LLM response", Wrapped: err}
	}
	return value, nil
}

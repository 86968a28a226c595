package score

import (
	"fmt"
	"strings"
	"time"
)

// Method identifies one of the supported GEMBA scoring techniques.
// The set is closed; unknown values are rejected at the input boundary.
type Method string

const (
	MethodGembaDA      Method = "GEMBA-DA"
	MethodGembaMQM     Method = "GEMBA-MQM"
	MethodGembaESA     Method = "GEMBA-ESA"
	MethodStructuredDA Method = "STRUCTURED-DA"
)

// ParseMethod validates a caller-supplied method string.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodGembaDA, MethodGembaMQM, MethodGembaESA, MethodStructuredDA:
		return m, nil
	}
	return "", fmt.Errorf("unknown scoring method %q", s)
}

// Request is a single translation-scoring request.
type Request struct {
	SourceLang string
	TargetLang string
	SourceText string
	TargetText string
	Method     Method
}

// Normalize trims all text fields and checks that none of them is empty.
func (r *Request) Normalize() error {
	r.SourceLang = strings.TrimSpace(r.SourceLang)
	r.TargetLang = strings.TrimSpace(r.TargetLang)
	r.SourceText = strings.TrimSpace(r.SourceText)
	r.TargetText = strings.TrimSpace(r.TargetText)

	fields := []struct {
		name  string
		value string
	}{
		{"source_lang", r.SourceLang},
		{"target_lang", r.TargetLang},
		{"source_text", r.SourceText},
		{"target_text", r.TargetText},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%s must not be empty", f.name)
		}
	}
	return nil
}

// Computation is the normalized outcome of one scoring run.
// Adequacy, Fluency and Rationale are only set by methods that produce them:
// STRUCTURED-DA fills all three, GEMBA-MQM fills only Rationale.
type Computation struct {
	Method      Method
	Score       float64
	Model       string
	RawResponse string
	Adequacy    *float64
	Fluency     *float64
	Rationale   *string
}

// Record is a persisted scoring outcome. Records are written exactly once
// per successful scoring call and never updated or deleted afterward.
// ID and CreatedAt are assigned by the store at write time.
type Record struct {
	ID          string
	AppID       string
	SourceLang  string
	TargetLang  string
	SourceText  string
	TargetText  string
	Method      Method
	Model       string
	Score       float64
	Adequacy    *float64
	Fluency     *float64
	Rationale   *string
	RawResponse *string
	CreatedAt   time.Time
}

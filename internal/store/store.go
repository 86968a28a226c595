package store

import (
	"context"

	"github.com/gemba-score/backend/internal/domain/score"
)

// ListFilter bounds and filters a score listing. Records are always returned
// newest-first; there is no pagination cursor.
type ListFilter struct {
	Limit     int
	Threshold *float64 // when set, keep records with score <= Threshold
	AppID     string   // when non-empty, exact match on app_id
}

// Store is the persistence capability the API layer depends on. The score log
// is append-only: records are never updated or deleted.
type Store interface {
	// AppendScore assigns a new id and server timestamp, writes an immutable
	// row, and returns the fully populated record.
	AppendScore(ctx context.Context, rec score.Record) (*score.Record, error)

	// ListScores returns records newest-first, truncated to the filter limit.
	ListScores(ctx context.Context, filter ListFilter) ([]score.Record, error)

	Close() error
}

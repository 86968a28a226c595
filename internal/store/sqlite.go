// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"github.com/gemba-score/backend/internal/domain/score"
	"github.com/gemba-score/backend/internal/id"
)

const schema = `
CREATE TABLE IF NOT EXISTS translation_scores (
    id TEXT PRIMARY KEY,
    app_id TEXT NOT NULL,
    source_lang TEXT NOT NULL,
    target_lang TEXT NOT NULL,
    source_text TEXT NOT NULL,
    target_text TEXT NOT NULL,
    scoring_method TEXT NOT NULL,
    llm_model TEXT NOT NULL,
    score REAL NOT NULL,
    adequacy_score REAL,
    fluency_score REAL,
    rationale TEXT,
    raw_llm_response TEXT,
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_translation_scores_created_at ON translation_scores(created_at);
CREATE INDEX IF NOT EXISTS idx_translation_scores_app_id ON translation_scores(app_id);
`

type SQLiteStore struct {
	db *sql.DB
}

// Compile-time check: *SQLiteStore satisfies the Store interface.
var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) AppendScore(ctx context.Context, rec score.Record) (*score.Record, error) {
	rec.ID = id.GenerateID()
	rec.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO translation_scores
			(id, app_id, source_lang, target_lang, source_text, target_text,
			 scoring_method, llm_model, score, adequacy_score, fluency_score,
			 rationale, raw_llm_response, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.AppID, rec.SourceLang, rec.TargetLang, rec.SourceText, rec.TargetText,
		string(rec.Method), rec.Model, rec.Score, nullFloat(rec.Adequacy), nullFloat(rec.Fluency),
		nullString(rec.Rationale), nullString(rec.RawResponse), rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *SQLiteStore) ListScores(ctx context.Context, filter ListFilter) ([]score.Record, error) {
	query := `
		SELECT id, app_id, source_lang, target_lang, source_text, target_text,
		       scoring_method, llm_model, score, adequacy_score, fluency_score,
		       rationale, raw_llm_response, created_at
		FROM translation_scores`

	var args []any
	if filter.Threshold != nil {
		query += " WHERE score <= ?"
		args = append(args, *filter.Threshold)
	}
	if filter.AppID != "" {
		if len(args) == 0 {
			query += " WHERE"
		} else {
			query += " AND"
		}
		query += " app_id = ?"
		args = append(args, filter.AppID)
	}

	// rowid breaks created_at ties in insertion order
	query += " ORDER BY created_at DESC, rowid DESC LIMIT ?"
	args = append(args, filter.Limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []score.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// CountScores returns the number of records persisted for an app id. It is
// not part of the Store interface; tests use it to verify append-only writes.
func (s *SQLiteStore) CountScores(ctx context.Context, appID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM translation_scores WHERE app_id = ?", appID,
	).Scan(&count)
	return count, err
}

// ============================================================================
// Row mapping
// ============================================================================

func scanRecord(rows *sql.Rows) (score.Record, error) {
	var rec score.Record
	var method string
	var adequacy, fluency sql.NullFloat64
	var rationale, rawResponse sql.NullString

	err := rows.Scan(
		&rec.ID, &rec.AppID, &rec.SourceLang, &rec.TargetLang, &rec.SourceText, &rec.TargetText,
		&method, &rec.Model, &rec.Score, &adequacy, &fluency,
		&rationale, &rawResponse, &rec.CreatedAt,
	)
	if err != nil {
		return score.Record{}, err
	}

	rec.Method = score.Method(method)
	if adequacy.Valid {
		rec.Adequacy = &adequacy.Float64
	}
	if fluency.Valid {
		rec.Fluency = &fluency.Float64
	}
	if rationale.Valid {
		rec.Rationale = &rationale.String
	}
	if rawResponse.Valid {
		rec.RawResponse = &rawResponse.String
	}
	return rec, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

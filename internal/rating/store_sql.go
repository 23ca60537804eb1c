package rating

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type Store interface {
	Insert(ctx context.Context, s Submission) (string, error)
	AggregateFor(ctx context.Context, schoolID string) (Aggregate, error)
}

type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

// Insert stores a validated submission and returns its id. Callers must run
// Validate first; this layer does not re-check.
func (s *SQLStore) Insert(ctx context.Context, sub Submission) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `INSERT INTO parking_ratings
		(id,school_id,ease,safety,space,congestion,restrictions,comment,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		id, sub.SchoolID, sub.Ease, sub.Safety, sub.Space, sub.Congestion, sub.Restrictions,
		sub.Comment, time.Now().Unix())
	if err != nil {
		return "", err
	}
	return id, nil
}

// AggregateFor averages only the set (non-zero) values per category, so a
// submission that skipped a category does not drag its average down.
func (s *SQLStore) AggregateFor(ctx context.Context, schoolID string) (Aggregate, error) {
	row := s.db.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(AVG(CASE WHEN ease > 0 THEN ease END), 0),
		COALESCE(AVG(CASE WHEN safety > 0 THEN safety END), 0),
		COALESCE(AVG(CASE WHEN space > 0 THEN space END), 0),
		COALESCE(AVG(CASE WHEN congestion > 0 THEN congestion END), 0),
		COALESCE(AVG(CASE WHEN restrictions > 0 THEN restrictions END), 0)
		FROM parking_ratings WHERE school_id=$1`, schoolID)
	agg := Aggregate{SchoolID: schoolID}
	err := row.Scan(&agg.Count, &agg.Ease, &agg.Safety, &agg.Space, &agg.Congestion, &agg.Restrictions)
	return agg, err
}

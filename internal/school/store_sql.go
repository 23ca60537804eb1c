package school

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

var ErrNotFound = errors.New("school not found")

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

// PutSchool upserts the full snapshot. The searchable columns are extracted
// from the record; the rest rides along as JSON like the source feed.
func (s *SQLStore) PutSchool(ctx context.Context, sc School) error {
	dj, err := json.Marshal(sc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO schools (id,name,urn,detail_json,lat,lng,ofsted_rating,distance_miles,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO UPDATE SET name=EXCLUDED.name, urn=EXCLUDED.urn, detail_json=EXCLUDED.detail_json,
		  lat=EXCLUDED.lat, lng=EXCLUDED.lng, ofsted_rating=EXCLUDED.ofsted_rating, distance_miles=EXCLUDED.distance_miles`,
		sc.ID, sc.Name, sc.URN, string(dj), sc.Lat, sc.Lng, nullRating(sc.Ofsted), sc.DistanceMiles, time.Now().Unix())
	return err
}

func (s *SQLStore) GetSchool(ctx context.Context, id string) (School, error) {
	row := s.db.QueryRowContext(ctx, `SELECT detail_json FROM schools WHERE id=$1`, id)
	var dj string
	if err := row.Scan(&dj); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return School{}, ErrNotFound
		}
		return School{}, err
	}
	var sc School
	if err := json.Unmarshal([]byte(dj), &sc); err != nil {
		return School{}, err
	}
	return sc, nil
}

func (s *SQLStore) ListSchools(ctx context.Context, opts ListOpts) ([]Summary, error) {
	if opts.Limit <= 0 || opts.Limit > 200 {
		opts.Limit = 50
	}
	if opts.Offset < 0 {
		opts.Offset = 0
	}
	q := "%" + opts.Q + "%"
	rows, err := s.db.QueryContext(ctx, `SELECT id,name,urn,ofsted_rating FROM schools
		WHERE name LIKE $1 OR urn LIKE $1
		ORDER BY name LIMIT $2 OFFSET $3`, q, opts.Limit, opts.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sm Summary
		var rating sql.NullString
		if err := rows.Scan(&sm.ID, &sm.Name, &sm.URN, &rating); err != nil {
			return nil, err
		}
		sm.Ofsted = OfstedRating(rating.String)
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (s *SQLStore) GetByIDs(ctx context.Context, ids []string) ([]School, error) {
	out := make([]School, 0, len(ids))
	for _, id := range ids {
		sc, err := s.GetSchool(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue // stale link: skip, don't break the comparison
		}
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}

func (s *SQLStore) ListGeocoded(ctx context.Context) ([]School, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT detail_json FROM schools
		WHERE lat IS NOT NULL AND lng IS NOT NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []School
	for rows.Next() {
		var dj string
		if err := rows.Scan(&dj); err != nil {
			return nil, err
		}
		var sc School
		if err := json.Unmarshal([]byte(dj), &sc); err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func nullRating(r OfstedRating) interface{} {
	if r == OfstedUnrated {
		return nil
	}
	return string(r)
}

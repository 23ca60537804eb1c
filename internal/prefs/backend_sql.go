package prefs

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type SQLBackend struct {
	db *sql.DB
}

func NewSQLBackend(db *sql.DB) *SQLBackend { return &SQLBackend{db: db} }

func (b *SQLBackend) Load(ctx context.Context, key string) (bool, bool, error) {
	var v int
	err := b.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key=$1`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, err
	}
	return v != 0, true, nil
}

func (b *SQLBackend) Save(ctx context.Context, key string, value bool) error {
	v := 0
	if value {
		v = 1
	}
	_, err := b.db.ExecContext(ctx, `INSERT INTO preferences (key,value,updated_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`,
		key, v, time.Now().Unix())
	return err
}

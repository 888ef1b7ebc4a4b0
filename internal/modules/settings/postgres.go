package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed settings repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		`SELECT value FROM configuration WHERE key=$1`, key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// Set updates the row for key when it exists, otherwise inserts it. When the
// insert loses a unique-constraint race, the existing row is deleted by key
// and re-inserted: a single deterministic retry, not a backoff loop.
func (r *postgresRepo) Set(ctx context.Context, key, value string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE configuration SET value=$2, updated_at=NOW() WHERE key=$1`,
		key, value)
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update setting: %w", err)
	}
	if affected > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO configuration (key, value) VALUES ($1,$2)`, key, value)
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return fmt.Errorf("insert setting: %w", err)
	}

	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM configuration WHERE key=$1`, key); err != nil {
		return fmt.Errorf("delete conflicting setting: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO configuration (key, value) VALUES ($1,$2)`, key, value); err != nil {
		return fmt.Errorf("reinsert setting: %w", err)
	}
	return nil
}

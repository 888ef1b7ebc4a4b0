package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed client repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*Client, error) {
	c := &Client{}
	err := r.db.QueryRowContext(ctx, `
		SELECT id, email, name, phone, address, comuna, created_at
		FROM clients WHERE email=$1`, email,
	).Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.Address, &c.Comuna, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *postgresRepo) Create(ctx context.Context, c *Client) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO clients (email, name, phone, address, comuna)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		c.Email, c.Name, c.Phone, c.Address, c.Comuna,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrEmailTaken, c.Email)
		}
		return fmt.Errorf("insert client: %w", err)
	}
	return nil
}

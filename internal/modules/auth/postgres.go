package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed auth repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CreateUser(ctx context.Context, u *User) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO users (id, email, password_hash, name)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.Name,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrEmailTaken, u.Email)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return r.getUser(ctx, `WHERE email=$1`, email)
}

func (r *postgresRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return r.getUser(ctx, `WHERE id=$1`, id)
}

func (r *postgresRepo) getUser(ctx context.Context, where string, arg interface{}) (*User, error) {
	u := &User{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, email, password_hash, name, created_at, updated_at FROM users `+where, arg,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *postgresRepo) GetRole(ctx context.Context, email string) (string, error) {
	var role string
	err := r.db.QueryRowContext(ctx,
		`SELECT role FROM system_users WHERE email=$1`, email,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (r *postgresRepo) CreateSession(ctx context.Context, s *Session) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO sessions (token, user_id) VALUES ($1,$2)`,
		s.Token, s.UserID)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

func (r *postgresRepo) DeleteSession(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE token=$1`, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (r *postgresRepo) SessionExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM sessions WHERE token=$1)`, token,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check session: %w", err)
	}
	return exists, nil
}

package subscription

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed subscription repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ListPacks(ctx context.Context, active *bool) ([]*Pack, error) {
	query := `SELECT id, name, active, created_at, updated_at FROM subscription_packs WHERE 1=1`
	args := []interface{}{}
	if active != nil {
		query += ` AND active=$1`
		args = append(args, *active)
	}
	query += ` ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select packs: %w", err)
	}
	defer rows.Close()

	var packs []*Pack
	for rows.Next() {
		p := &Pack{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan pack: %w", err)
		}
		packs = append(packs, p)
	}
	return packs, rows.Err()
}

func (r *postgresRepo) GetPackByID(ctx context.Context, id int64) (*Pack, error) {
	p := &Pack{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, active, created_at, updated_at FROM subscription_packs WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackNotFound
		}
		return nil, fmt.Errorf("get pack: %w", err)
	}
	return p, nil
}

func (r *postgresRepo) CreatePack(ctx context.Context, p *Pack) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscription_packs (name, active)
		VALUES ($1,$2)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert pack: %w", err)
	}
	return nil
}

func (r *postgresRepo) UpdatePack(ctx context.Context, id int64, patch PackPatch) (*Pack, error) {
	query := `UPDATE subscription_packs SET updated_at=NOW()`
	args := []interface{}{}
	n := 1
	if patch.Name != nil {
		query += fmt.Sprintf(`, name=$%d`, n)
		args = append(args, *patch.Name)
		n++
	}
	if patch.Active != nil {
		query += fmt.Sprintf(`, active=$%d`, n)
		args = append(args, *patch.Active)
		n++
	}
	query += fmt.Sprintf(` WHERE id=$%d`, n)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update pack: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update pack: %w", err)
	}
	if affected == 0 {
		return nil, ErrPackNotFound
	}
	return r.GetPackByID(ctx, id)
}

func (r *postgresRepo) DeletePack(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM subscription_packs WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete pack: %w", err)
	}
	return nil
}

func (r *postgresRepo) CreateSubscription(ctx context.Context, s *Subscription) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO subscriptions (client_id, pack_id, status, start_date)
		VALUES ($1,$2,$3,$4)
		RETURNING id, created_at`,
		s.ClientID, s.PackID, s.Status, s.StartDate,
	).Scan(&s.ID, &s.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert subscription: %w", err)
	}
	return nil
}

func (r *postgresRepo) ListSubscribers(ctx context.Context) ([]*Subscriber, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.id,
		       COALESCE(c.name, 'Unknown'),
		       COALESCE(c.email, 'N/A'),
		       COALESCE(p.name, 'N/A'),
		       s.start_date, s.status
		FROM subscriptions s
		LEFT JOIN clients c ON c.id = s.client_id
		LEFT JOIN subscription_packs p ON p.id = s.pack_id
		ORDER BY s.start_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("select subscribers: %w", err)
	}
	defer rows.Close()

	var subs []*Subscriber
	for rows.Next() {
		s := &Subscriber{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Plan, &s.StartDate, &s.Status); err != nil {
			return nil, fmt.Errorf("scan subscriber: %w", err)
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

package producer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed producer repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const producerColumns = `id, name, location, specialty, history, active, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context, active *bool) ([]*Producer, error) {
	query := `SELECT ` + producerColumns + ` FROM producers WHERE 1=1`
	args := []interface{}{}
	if active != nil {
		query += ` AND active=$1`
		args = append(args, *active)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select producers: %w", err)
	}
	defer rows.Close()

	var producers []*Producer
	for rows.Next() {
		p := &Producer{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Specialty, &p.History,
			&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan producer: %w", err)
		}
		producers = append(producers, p)
	}
	return producers, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Producer, error) {
	p := &Producer{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+producerColumns+` FROM producers WHERE id=$1`, id,
	).Scan(&p.ID, &p.Name, &p.Location, &p.Specialty, &p.History,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get producer: %w", err)
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p *Producer) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO producers (name, location, specialty, history, active)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Location, p.Specialty, p.History, p.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert producer: %w", err)
	}
	return nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, patch Patch) (*Producer, error) {
	query := `UPDATE producers SET updated_at=NOW()`
	args := []interface{}{}
	n := 1
	set := func(column string, v interface{}) {
		query += fmt.Sprintf(`, %s=$%d`, column, n)
		args = append(args, v)
		n++
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Location != nil {
		set("location", *patch.Location)
	}
	if patch.Specialty != nil {
		set("specialty", *patch.Specialty)
	}
	if patch.History != nil {
		set("history", *patch.History)
	}
	if patch.Active != nil {
		set("active", *patch.Active)
	}
	query += fmt.Sprintf(` WHERE id=$%d`, n)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update producer: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update producer: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM producers WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete producer: %w", err)
	}
	return nil
}

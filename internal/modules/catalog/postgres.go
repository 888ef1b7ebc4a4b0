package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed catalog repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Producer name is joined at read time so listings never need a second query.
const productSelect = `
	SELECT p.id, p.name, p.category, p.sale_price, p.cost, p.stock,
	       p.active, p.visible_in_store, p.image_url, p.description,
	       COALESCE(p.producer_id, 0), COALESCE(pr.name, '` + UnknownProducer + `'),
	       p.created_at, p.updated_at
	FROM products p
	LEFT JOIN producers pr ON pr.id = p.producer_id`

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	err := scan(&p.ID, &p.Name, &p.Category, &p.SalePrice, &p.Cost, &p.Stock,
		&p.Active, &p.Visible, &p.ImageURL, &p.Description,
		&p.ProducerID, &p.ProducerName, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	query := productSelect + ` WHERE 1=1`
	args := []interface{}{}
	n := 1
	if f.Category != "" {
		query += fmt.Sprintf(` AND p.category=$%d`, n)
		args = append(args, f.Category)
		n++
	}
	if f.Active != nil {
		query += fmt.Sprintf(` AND p.active=$%d`, n)
		args = append(args, *f.Active)
		n++
	}
	if f.Visible != nil {
		query += fmt.Sprintf(` AND p.visible_in_store=$%d`, n)
		args = append(args, *f.Visible)
		n++
	}
	if f.ProducerID != 0 {
		query += fmt.Sprintf(` AND p.producer_id=$%d`, n)
		args = append(args, f.ProducerID)
		n++
	}
	query += ` ORDER BY p.id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Product, error) {
	p, err := scanProduct(r.db.QueryRowContext(ctx, productSelect+` WHERE p.id=$1`, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	var producerID interface{}
	if p.ProducerID != 0 {
		producerID = p.ProducerID
	}
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO products
		  (name, category, sale_price, cost, stock, active, visible_in_store,
		   image_url, description, producer_id)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at, updated_at`,
		p.Name, p.Category, p.SalePrice, p.Cost, p.Stock, p.Active, p.Visible,
		p.ImageURL, p.Description, producerID,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *postgresRepo) Update(ctx context.Context, id int64, patch Patch) (*Product, error) {
	query := `UPDATE products SET updated_at=NOW()`
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
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	if patch.SalePrice != nil {
		set("sale_price", *patch.SalePrice)
	}
	if patch.Cost != nil {
		set("cost", *patch.Cost)
	}
	if patch.Stock != nil {
		set("stock", *patch.Stock)
	}
	if patch.Active != nil {
		set("active", *patch.Active)
	}
	if patch.Visible != nil {
		set("visible_in_store", *patch.Visible)
	}
	if patch.ImageURL != nil {
		set("image_url", *patch.ImageURL)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.ProducerID != nil {
		set("producer_id", *patch.ProducerID)
	}
	query += fmt.Sprintf(` WHERE id=$%d`, n)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *postgresRepo) DecrementStock(ctx context.Context, id int64, qty int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET stock = GREATEST(stock - $2, 0), updated_at = NOW()
		WHERE id = $1`, id, qty)
	if err != nil {
		return fmt.Errorf("decrement stock: %w", err)
	}
	return nil
}

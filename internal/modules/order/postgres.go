package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL-backed order repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

// Create inserts the order and all its items inside a single transaction.
func (r *postgresRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (client_id, number, subtotal, shipping, total, address, comuna, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING id, created_at`,
		o.ClientID, o.Number, o.Subtotal, o.Shipping, o.Total,
		o.Address, o.Comuna, o.Status,
	).Scan(&o.ID, &o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	for _, item := range o.Items {
		item.OrderID = o.ID
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1,$2,$3,$4,$5,$6)
			RETURNING id`,
			o.ID, item.ProductID, item.ProductName, item.Quantity,
			item.UnitPrice, item.Subtotal,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("insert order item: %w", err)
		}
	}

	return tx.Commit()
}

const orderSelect = `
	SELECT o.id, o.client_id, COALESCE(c.name, 'Anonimo'), o.number,
	       o.subtotal, o.shipping, o.total, o.address, o.comuna, o.status, o.created_at
	FROM orders o
	LEFT JOIN clients c ON c.id = o.client_id`

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	o := &Order{}
	err := r.db.QueryRowContext(ctx, orderSelect+` WHERE o.id=$1`, id).Scan(
		&o.ID, &o.ClientID, &o.ClientName, &o.Number,
		&o.Subtotal, &o.Shipping, &o.Total, &o.Address, &o.Comuna,
		&o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o.Items, err = r.listItems(ctx, o.ID)
	return o, err
}

func (r *postgresRepo) ListFull(ctx context.Context) ([]*Order, error) {
	rows, err := r.db.QueryContext(ctx, orderSelect+` ORDER BY o.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	defer rows.Close()

	var orders []*Order
	for rows.Next() {
		o := &Order{}
		if err := rows.Scan(&o.ID, &o.ClientID, &o.ClientName, &o.Number,
			&o.Subtotal, &o.Shipping, &o.Total, &o.Address, &o.Comuna,
			&o.Status, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, o := range orders {
		items, err := r.listItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		o.Items = items
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE orders SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) listItems(ctx context.Context, orderID int64) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, product_id, product_name, quantity, unit_price, subtotal
		FROM order_items WHERE order_id=$1 ORDER BY id ASC`, orderID)
	if err != nil {
		return nil, fmt.Errorf("select order items: %w", err)
	}
	defer rows.Close()

	var items []*Item
	for rows.Next() {
		item := &Item{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID,
			&item.ProductName, &item.Quantity, &item.UnitPrice, &item.Subtotal); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

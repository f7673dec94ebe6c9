package repository

import (
	"context"
	"fmt"

	"fashionhub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const orderColumns = `id, customer_name, customer_email, customer_address, items, total_amount, status, created_at`

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts an order. Line items are stored as a JSONB document.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	query := `
		INSERT INTO orders (id, customer_name, customer_email, customer_address, items, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + orderColumns

	o, err := scanOrder(r.pool.QueryRow(ctx, query,
		order.ID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerAddress,
		order.Items,
		order.TotalAmount,
		order.Status,
		order.CreatedAt,
	))
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", o.ID).
		Int("item_count", len(o.Items)).
		Msg("order created successfully")

	return o, nil
}

// List retrieves every order, newest first.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerAddress,
		&o.Items,
		&o.TotalAmount,
		&o.Status,
		&o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

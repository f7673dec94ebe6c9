package repository

import (
	"context"

	"fashionhub/internal/model"
)

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// List retrieves products, restricted to category when it is non-empty.
	List(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil, nil when no row matches.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create inserts a product and returns the stored row.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update replaces the mutable fields of a product and returns the stored row.
	// Returns nil, nil when no row matches.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes a product. Reports false when nothing was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create inserts an order and returns the stored row.
	Create(ctx context.Context, order *model.Order) (*model.Order, error)

	// List retrieves every order.
	List(ctx context.Context) ([]model.Order, error)
}

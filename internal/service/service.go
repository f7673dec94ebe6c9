package service

import (
	"context"

	"fashionhub/internal/model"
	"fashionhub/internal/storage"
)

// ProductService defines operations for product management.
type ProductService interface {
	// List retrieves products, filtered by category unless it is empty or "all".
	List(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// Create validates and stores a new product whose image URL is supplied by the caller.
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	// CreateWithImage uploads img to file storage and stores a product pointing at it.
	CreateWithImage(ctx context.Context, req *model.ProductRequest, img storage.ImageUpload) (*model.Product, error)

	// Update replaces every mutable field of an existing product.
	Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error)

	// Delete removes a product.
	Delete(ctx context.Context, id string) error
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create validates and stores a new pending order.
	Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// List retrieves every order.
	List(ctx context.Context) ([]model.Order, error)
}

// AuthService defines admin login.
type AuthService interface {
	// Login checks admin credentials and issues a session token.
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fashionhub/internal/model"
	"fashionhub/internal/repository"
	"fashionhub/internal/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	images      storage.ImageStore
	logger      zerolog.Logger
}

// NewProductService creates a new product service. images may be nil, in
// which case CreateWithImage fails with model.ErrImageUploadDisabled.
func NewProductService(productRepo repository.ProductRepository, images storage.ImageStore, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		images:      images,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves products, optionally filtered by category.
func (s *productService) List(ctx context.Context, category string) ([]model.Product, error) {
	category = strings.TrimSpace(category)
	if strings.EqualFold(category, model.CategoryAll) {
		category = ""
	}

	products, err := s.productRepo.List(ctx, category)
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Str("category", category).
		Msg("retrieved products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		s.logger.Warn().Msg("product ID is empty")
		return nil, model.ErrProductNotFound
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product by ID")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Str("product_id", id).Msg("product not found")
		return nil, model.ErrProductNotFound
	}

	return product, nil
}

// Create validates and stores a new product.
func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := req.Validate(true); err != nil {
		return nil, err
	}

	return s.insert(ctx, req.ToProduct())
}

// CreateWithImage uploads the image first, then stores the product with the resulting URL.
func (s *productService) CreateWithImage(ctx context.Context, req *model.ProductRequest, img storage.ImageUpload) (*model.Product, error) {
	if s.images == nil {
		return nil, model.ErrImageUploadDisabled
	}

	if err := req.Validate(false); err != nil {
		return nil, err
	}

	url, err := s.images.Upload(ctx, img)
	if err != nil {
		s.logger.Error().Err(err).Str("filename", img.Filename).Msg("failed to upload product image")
		return nil, fmt.Errorf("failed to upload product image: %w", err)
	}

	product := req.ToProduct()
	product.ImageURL = url

	return s.insert(ctx, product)
}

func (s *productService) insert(ctx context.Context, product model.Product) (*model.Product, error) {
	product.ID = uuid.NewString()
	product.CreatedAt = time.Now().UTC()

	created, err := s.productRepo.Create(ctx, &product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", product.ID).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", created.ID).
		Str("category", created.Category).
		Msg("product created")

	return created, nil
}

// Update replaces the fields of an existing product.
func (s *productService) Update(ctx context.Context, id string, req *model.ProductRequest) (*model.Product, error) {
	if id == "" {
		return nil, model.ErrProductNotFound
	}

	if err := req.Validate(true); err != nil {
		return nil, err
	}

	product := req.ToProduct()
	product.ID = id
	updatedAt := time.Now().UTC()
	product.UpdatedAt = &updatedAt

	updated, err := s.productRepo.Update(ctx, &product)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if updated == nil {
		s.logger.Debug().Str("product_id", id).Msg("product to update not found")
		return nil, model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product updated")

	return updated, nil
}

// Delete removes a product.
func (s *productService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return model.ErrProductNotFound
	}

	deleted, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Str("product_id", id).Msg("product to delete not found")
		return model.ErrProductNotFound
	}

	s.logger.Info().Str("product_id", id).Msg("product deleted")

	return nil
}

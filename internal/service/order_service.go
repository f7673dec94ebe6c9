package service

import (
	"context"
	"fmt"
	"time"

	"fashionhub/internal/model"
	"fashionhub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create validates the request and stores a new pending order.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := req.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("invalid order request")
		return nil, err
	}

	order := req.ToOrder()
	order.ID = uuid.NewString()
	order.Status = model.OrderStatusPending
	order.CreatedAt = time.Now().UTC()

	created, err := s.orderRepo.Create(ctx, &order)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", created.ID).
		Int("item_count", len(created.Items)).
		Float64("total_amount", created.TotalAmount).
		Msg("order created successfully")

	return created, nil
}

// List retrieves every order.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	s.logger.Debug().Int("count", len(orders)).Msg("retrieved orders")

	return orders, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
)

type orderService struct {
	BaseService
	orderRepo portsrepo.OrderRepositoryFacade
	now       func() time.Time
}

// NewOrderService creates the order service.
func NewOrderService(repo portsrepo.OrderRepositoryFacade) portssvc.OrderSvcFacade {
	return &orderService{orderRepo: repo, now: time.Now}
}

var _ portssvc.OrderSvcFacade = (*orderService)(nil)

func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*domain.Order, error) {
	if req.Amount == nil {
		return nil, fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}

	now := s.now().UTC()

	date := now
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be an RFC3339 timestamp", apperrors.ErrValidation)
		}
		date = parsed
	}

	order := domain.Order{
		OrderID:   uuid.New(),
		Name:      req.Name,
		OrderType: domain.OrderType(req.OrderType),
		Amount:    *req.Amount,
		Currency:  req.Currency,
		Date:      date,
		Remark:    req.Remark,
		OwnedFields: domain.OwnedFields{
			UserID:    userID,
			CreatedAt: now,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		s.LogError(ctx, err, "Failed to save order", slog.String("order_id", order.OrderID.String()))
		return nil, fmt.Errorf("failed to create order in service: %w", err)
	}

	s.LogInfo(ctx, "Order created", slog.String("order_id", order.OrderID.String()))
	return &order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list orders")
		return nil, fmt.Errorf("failed to list orders in service: %w", err)
	}
	return orders, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error {
	if err := s.orderRepo.DeleteOrder(ctx, userID, orderID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete order", slog.String("order_id", orderID.String()))
		}
		return fmt.Errorf("failed to delete order in service: %w", err)
	}
	s.LogInfo(ctx, "Order deleted", slog.String("order_id", orderID.String()))
	return nil
}

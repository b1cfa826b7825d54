package services

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
)

// OrderSvcFacade defines the plain create/list/delete operations on orders.
type OrderSvcFacade interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, req dto.CreateOrderRequest) (*domain.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
	DeleteOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error
}

// OrderQuerySvc filters, paginates and aggregates a user's orders.
type OrderQuerySvc interface {
	// QueryOrders runs the query against a single snapshot of the user's orders.
	// A store failure is returned wrapped in apperrors.ErrStoreUnavailable.
	QueryOrders(ctx context.Context, userID uuid.UUID, query domain.OrderQuery) (*domain.OrderQueryResult, error)
}

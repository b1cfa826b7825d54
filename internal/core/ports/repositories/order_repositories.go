package repositories

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/google/uuid"
)

// OrderReader defines read operations for order data.
type OrderReader interface {
	// FindOrdersByUser returns every order owned by the user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error)
}

// OrderWriter defines write operations for order data.
type OrderWriter interface {
	// SaveOrder persists a new order.
	SaveOrder(ctx context.Context, order domain.Order) error

	// DeleteOrder removes the order if it belongs to the user.
	// It returns apperrors.ErrNotFound when no such order exists for that user.
	DeleteOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error
}

// OrderRepositoryFacade combines all order-related repository interfaces.
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}

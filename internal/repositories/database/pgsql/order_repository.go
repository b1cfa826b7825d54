package pgsql

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_records_app/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(pool *pgxpool.Pool) portsrepo.OrderRepositoryFacade {
	return &PgxOrderRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func toModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:     d.OrderID,
		Name:        d.Name,
		OrderType:   string(d.OrderType),
		Amount:      d.Amount,
		Currency:    d.Currency,
		Date:        d.Date,
		Remark:      d.Remark,
		OwnedFields: models.OwnedFields{UserID: d.UserID, CreatedAt: d.CreatedAt},
	}
}

func toDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:     m.OrderID,
		Name:        m.Name,
		OrderType:   domain.OrderType(m.OrderType),
		Amount:      m.Amount,
		Currency:    m.Currency,
		Date:        m.Date,
		Remark:      m.Remark,
		OwnedFields: domain.OwnedFields{UserID: m.UserID, CreatedAt: m.CreatedAt},
	}
}

func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := toModelOrder(order)
	_, err := r.exec(ctx, "save order", `
		INSERT INTO orders (order_id, user_id, name, order_type, amount, currency, order_date, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		m.OrderID, m.UserID, m.Name, m.OrderType, m.Amount, m.Currency, m.Date, m.Remark, m.CreatedAt,
	)
	return err
}

// FindOrdersByUser returns the user's orders newest first. Ties on order_date
// fall back to creation time and then id so the order is stable across calls.
func (r *PgxOrderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]domain.Order, error) {
	rows, err := queryAll[models.Order](ctx, &r.BaseRepository, "find orders by user", `
		SELECT order_id, user_id, name, order_type, amount, currency, order_date, remark, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY order_date DESC, created_at DESC, order_id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	orders := make([]domain.Order, len(rows))
	for i, m := range rows {
		orders[i] = toDomainOrder(m)
	}
	return orders, nil
}

func (r *PgxOrderRepository) DeleteOrder(ctx context.Context, userID uuid.UUID, orderID uuid.UUID) error {
	tag, err := r.exec(ctx, "delete order", `DELETE FROM orders WHERE order_id = $1 AND user_id = $2;`, orderID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

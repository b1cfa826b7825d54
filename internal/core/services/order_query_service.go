package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultOrderPageSize is used when a query does not ask for a page size.
const DefaultOrderPageSize = 8

// orderQueryService answers order queries from one fetch of the user's orders.
// All filtering, aggregation and pagination happens in memory.
type orderQueryService struct {
	BaseService
	orderRepo portsrepo.OrderReader
}

// NewOrderQueryService creates the order query service.
func NewOrderQueryService(repo portsrepo.OrderReader) portssvc.OrderQuerySvc {
	return &orderQueryService{orderRepo: repo}
}

var _ portssvc.OrderQuerySvc = (*orderQueryService)(nil)

// QueryOrders filters the user's orders, totals and aggregates every match,
// then returns the requested page of them.
func (s *orderQueryService) QueryOrders(ctx context.Context, userID uuid.UUID, query domain.OrderQuery) (*domain.OrderQueryResult, error) {
	orders, err := s.orderRepo.FindOrdersByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load orders for query", slog.String("user_id", userID.String()))
		if !errors.Is(err, apperrors.ErrStoreUnavailable) {
			err = fmt.Errorf("%w: %v", apperrors.ErrStoreUnavailable, err)
		}
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	matched := s.filterOrders(ctx, orders, query)

	// newest first; ties keep the store's order
	slices.SortStableFunc(matched, func(a, b domain.Order) int {
		return b.Date.Compare(a.Date)
	})

	result := &domain.OrderQueryResult{
		Total:  len(matched),
		Orders: paginate(matched, query.Page, query.PageSize),
		Stats:  sumByType(matched),
	}

	s.LogDebug(ctx, "Order query evaluated",
		slog.Int("fetched", len(orders)),
		slog.Int("matched", result.Total),
		slog.Int("page_len", len(result.Orders)))
	return result, nil
}

func (s *orderQueryService) filterOrders(ctx context.Context, orders []domain.Order, query domain.OrderQuery) []domain.Order {
	start, end, hasRange := parseDateRange(query.DateStart, query.DateEnd)
	if !hasRange && (query.DateStart != nil || query.DateEnd != nil) {
		s.LogDebug(ctx, "Date range filter skipped, both bounds must be RFC3339 timestamps")
	}

	matched := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if query.Name != nil && !strings.Contains(o.Name, *query.Name) {
			continue
		}
		if query.OrderType != nil && string(o.OrderType) != *query.OrderType {
			continue
		}
		if hasRange && (o.Date.Before(start) || o.Date.After(end)) {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}

// parseDateRange reports a range only when both bounds are present and parse.
func parseDateRange(rawStart, rawEnd *string) (time.Time, time.Time, bool) {
	if rawStart == nil || rawEnd == nil {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(time.RFC3339, *rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, *rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func sumByType(orders []domain.Order) map[domain.OrderType]decimal.Decimal {
	stats := make(map[domain.OrderType]decimal.Decimal)
	for _, o := range orders {
		stats[o.OrderType] = stats[o.OrderType].Add(o.Amount)
	}
	return stats
}

func paginate(orders []domain.Order, page, pageSize int) []domain.Order {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultOrderPageSize
	}
	// compare page numbers first so (page-1)*pageSize cannot overflow
	if len(orders) == 0 || page-1 > (len(orders)-1)/pageSize {
		return []domain.Order{}
	}
	start := (page - 1) * pageSize
	end := start + min(pageSize, len(orders)-start)
	return orders[start:end]
}

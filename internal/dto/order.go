package dto

import (
	"time"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data needed to record a new order.
type CreateOrderRequest struct {
	Name      string           `json:"name" binding:"required,max=255"`
	OrderType string           `json:"order_type" binding:"required,order_type"`
	Amount    *decimal.Decimal `json:"amount" binding:"required"`
	Currency  string           `json:"currency" binding:"required,order_currency"`
	Date      string           `json:"date"` // RFC3339; empty means now
	Remark    *string          `json:"remark"`
}

// OrderResponse is the external representation of an order.
type OrderResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	OrderType string  `json:"order_type"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Date      string  `json:"date"`
	Remark    *string `json:"remark"`
}

// QueryOrdersParams binds the query string of the order query endpoint.
type QueryOrdersParams struct {
	Page      *int    `form:"page"`
	PageSize  *int    `form:"page_size"`
	Name      *string `form:"name"`
	OrderType *string `form:"order_type"`
	DateStart *string `form:"date_start"`
	DateEnd   *string `form:"date_end"`
}

// QueryOrdersResponse is the body returned by the order query endpoint.
type QueryOrdersResponse struct {
	Total  int                `json:"total"`
	Orders []OrderResponse    `json:"orders"`
	Stat   map[string]float64 `json:"stat"`
}

// ToOrderQuery converts bound query parameters to domain criteria.
// Absent page fields are left zero so the query service applies its defaults.
func (p QueryOrdersParams) ToOrderQuery() domain.OrderQuery {
	q := domain.OrderQuery{
		Name:      p.Name,
		OrderType: p.OrderType,
		DateStart: p.DateStart,
		DateEnd:   p.DateEnd,
	}
	if p.Page != nil {
		q.Page = *p.Page
	}
	if p.PageSize != nil {
		q.PageSize = *p.PageSize
	}
	return q
}

// ToOrderResponse converts a domain.Order to its external representation.
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.OrderID.String(),
		Name:      o.Name,
		OrderType: string(o.OrderType),
		Amount:    o.Amount.InexactFloat64(),
		Currency:  o.Currency,
		Date:      o.Date.UTC().Format(time.RFC3339),
		Remark:    o.Remark,
	}
}

// ToListOrderResponse converts a slice of orders.
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}

// ToQueryOrdersResponse shapes a query result into the response body.
func ToQueryOrdersResponse(result *domain.OrderQueryResult) QueryOrdersResponse {
	stat := make(map[string]float64, len(result.Stats))
	for orderType, sum := range result.Stats {
		stat[string(orderType)] = sum.InexactFloat64()
	}
	return QueryOrdersResponse{
		Total:  result.Total,
		Orders: ToListOrderResponse(result.Orders),
		Stat:   stat,
	}
}

package dto

import (
	"time"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	CategoryID string          `json:"category_id" binding:"required,uuid"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period" binding:"required,max=32"`
	StartDate  string          `json:"start_date" binding:"required"` // RFC3339
	EndDate    string          `json:"end_date" binding:"required"`   // RFC3339
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	ID         string  `json:"id"`
	CategoryID string  `json:"category_id"`
	Amount     float64 `json:"amount"`
	Period     string  `json:"period"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
}

// ToBudgetResponse converts a domain.Budget to its DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		ID:         b.BudgetID.String(),
		CategoryID: b.CategoryID.String(),
		Amount:     b.Amount.InexactFloat64(),
		Period:     b.Period,
		StartDate:  b.StartDate.UTC().Format(time.RFC3339),
		EndDate:    b.EndDate.UTC().Format(time.RFC3339),
	}
}

// ToListBudgetResponse converts a slice of budgets.
func ToListBudgetResponse(budgets []domain.Budget) []BudgetResponse {
	res := make([]BudgetResponse, len(budgets))
	for i := range budgets {
		res[i] = ToBudgetResponse(&budgets[i])
	}
	return res
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget caps spending in a category over a period.
type Budget struct {
	BudgetID   uuid.UUID       `json:"budgetID"`
	CategoryID uuid.UUID       `json:"categoryID"`
	Amount     decimal.Decimal `json:"amount"`
	Period     string          `json:"period"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	OwnedFields
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a row of the accounts table.
type Account struct {
	AccountID   uuid.UUID       `db:"account_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Balance     decimal.Decimal `db:"balance"`
	Currency    string          `db:"currency"`
	Remark      *string         `db:"remark"`
	OwnedFields
}

// Category represents a row of the categories table.
type Category struct {
	CategoryID   uuid.UUID  `db:"category_id"`
	Name         string     `db:"name"`
	ParentID     *uuid.UUID `db:"parent_id"` // Nullable
	CategoryType string     `db:"category_type"`
	OwnedFields
}

// Asset represents a row of the assets table.
type Asset struct {
	AssetID   uuid.UUID       `db:"asset_id"`
	Name      string          `db:"name"`
	AssetType string          `db:"asset_type"`
	Value     decimal.Decimal `db:"value"`
	Currency  string          `db:"currency"`
	AccountID uuid.UUID       `db:"account_id"`
	Remark    *string         `db:"remark"`
	OwnedFields
}

// Budget represents a row of the budgets table.
type Budget struct {
	BudgetID   uuid.UUID       `db:"budget_id"`
	CategoryID uuid.UUID       `db:"category_id"`
	Amount     decimal.Decimal `db:"amount"`
	Period     string          `db:"period"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	OwnedFields
}

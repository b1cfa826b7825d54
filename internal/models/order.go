package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order represents a row of the orders table.
type Order struct {
	OrderID   uuid.UUID       `db:"order_id"`
	Name      string          `db:"name"`
	OrderType string          `db:"order_type"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
	Date      time.Time       `db:"order_date"`
	Remark    *string         `db:"remark"` // Nullable
	OwnedFields
}

package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account is a place money is held: a bank card, cash, a payment app.
type Account struct {
	AccountID   uuid.UUID       `json:"accountID"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	Remark      *string         `json:"remark,omitempty"`
	OwnedFields
}

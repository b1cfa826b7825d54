package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is a holding (stock, fund, property) tracked against an account.
type Asset struct {
	AssetID   uuid.UUID       `json:"assetID"`
	Name      string          `json:"name"`
	AssetType string          `json:"assetType"`
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency"`
	AccountID uuid.UUID       `json:"accountID"`
	Remark    *string         `json:"remark,omitempty"`
	OwnedFields
}

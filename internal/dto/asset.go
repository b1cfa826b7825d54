package dto

import (
	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to create an asset.
type CreateAssetRequest struct {
	Name      string          `json:"name" binding:"required,max=255"`
	AssetType string          `json:"asset_type" binding:"required,max=64"`
	Value     decimal.Decimal `json:"value"`
	Currency  string          `json:"currency" binding:"required,max=16"`
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Remark    *string         `json:"remark"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AssetType string  `json:"asset_type"`
	Value     float64 `json:"value"`
	Currency  string  `json:"currency"`
	AccountID string  `json:"account_id"`
	Remark    *string `json:"remark"`
}

// ToAssetResponse converts a domain.Asset to its DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		ID:        a.AssetID.String(),
		Name:      a.Name,
		AssetType: a.AssetType,
		Value:     a.Value.InexactFloat64(),
		Currency:  a.Currency,
		AccountID: a.AccountID.String(),
		Remark:    a.Remark,
	}
}

// ToListAssetResponse converts a slice of assets.
func ToListAssetResponse(assets []domain.Asset) []AssetResponse {
	res := make([]AssetResponse, len(assets))
	for i := range assets {
		res[i] = ToAssetResponse(&assets[i])
	}
	return res
}

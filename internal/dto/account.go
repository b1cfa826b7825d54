package dto

import (
	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`
	AccountType string          `json:"account_type" binding:"required,max=64"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency" binding:"required,max=16"`
	Remark      *string         `json:"remark"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	AccountType string  `json:"account_type"`
	Balance     float64 `json:"balance"`
	Currency    string  `json:"currency"`
	Remark      *string `json:"remark"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          acc.AccountID.String(),
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Balance:     acc.Balance.InexactFloat64(),
		Currency:    acc.Currency,
		Remark:      acc.Remark,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

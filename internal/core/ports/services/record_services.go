package services

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
)

// AccountSvcFacade manages a user's accounts.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID uuid.UUID, req dto.CreateAccountRequest) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
}

// CategorySvcFacade manages a user's categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID uuid.UUID, req dto.CreateCategoryRequest) (*domain.Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
}

// AssetSvcFacade manages a user's assets.
type AssetSvcFacade interface {
	CreateAsset(ctx context.Context, userID uuid.UUID, req dto.CreateAssetRequest) (*domain.Asset, error)
	ListAssets(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error)
}

// BudgetSvcFacade manages a user's budgets.
type BudgetSvcFacade interface {
	CreateBudget(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID uuid.UUID) ([]domain.Budget, error)
}

package repositories

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	"github.com/google/uuid"
)

// AccountRepositoryFacade defines persistence for accounts.
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	ListAccountsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error)
}

// CategoryRepositoryFacade defines persistence for categories.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
}

// AssetRepositoryFacade defines persistence for assets.
type AssetRepositoryFacade interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
	ListAssetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error)
}

// BudgetRepositoryFacade defines persistence for budgets.
type BudgetRepositoryFacade interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	ListBudgetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Budget, error)
}

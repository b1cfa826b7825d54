package pgsql

import (
	"context"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	"github.com/SscSPs/money_records_app/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRecordRepository stores the simple user-owned records: accounts,
// categories, assets and budgets.
type PgxRecordRepository struct {
	BaseRepository
}

func newPgxRecordRepository(pool *pgxpool.Pool) *PgxRecordRepository {
	return &PgxRecordRepository{BaseRepository{Pool: pool}}
}

var (
	_ portsrepo.AccountRepositoryFacade  = (*PgxRecordRepository)(nil)
	_ portsrepo.CategoryRepositoryFacade = (*PgxRecordRepository)(nil)
	_ portsrepo.AssetRepositoryFacade    = (*PgxRecordRepository)(nil)
	_ portsrepo.BudgetRepositoryFacade   = (*PgxRecordRepository)(nil)
)

// --- Accounts ---

func (r *PgxRecordRepository) SaveAccount(ctx context.Context, a domain.Account) error {
	_, err := r.exec(ctx, "save account", `
		INSERT INTO accounts (account_id, user_id, name, account_type, balance, currency, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		a.AccountID, a.UserID, a.Name, a.AccountType, a.Balance, a.Currency, a.Remark, a.CreatedAt,
	)
	return err
}

func (r *PgxRecordRepository) ListAccountsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	rows, err := queryAll[models.Account](ctx, &r.BaseRepository, "list accounts", `
		SELECT account_id, user_id, name, account_type, balance, currency, remark, created_at
		FROM accounts WHERE user_id = $1 ORDER BY created_at, account_id;`, userID)
	if err != nil {
		return nil, err
	}
	accounts := make([]domain.Account, len(rows))
	for i, m := range rows {
		accounts[i] = domain.Account{
			AccountID:   m.AccountID,
			Name:        m.Name,
			AccountType: m.AccountType,
			Balance:     m.Balance,
			Currency:    m.Currency,
			Remark:      m.Remark,
			OwnedFields: domain.OwnedFields{UserID: m.UserID, CreatedAt: m.CreatedAt},
		}
	}
	return accounts, nil
}

// --- Categories ---

func (r *PgxRecordRepository) SaveCategory(ctx context.Context, c domain.Category) error {
	_, err := r.exec(ctx, "save category", `
		INSERT INTO categories (category_id, user_id, name, parent_id, category_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		c.CategoryID, c.UserID, c.Name, c.ParentID, c.CategoryType, c.CreatedAt,
	)
	return err
}

func (r *PgxRecordRepository) ListCategoriesByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	rows, err := queryAll[models.Category](ctx, &r.BaseRepository, "list categories", `
		SELECT category_id, user_id, name, parent_id, category_type, created_at
		FROM categories WHERE user_id = $1 ORDER BY created_at, category_id;`, userID)
	if err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(rows))
	for i, m := range rows {
		categories[i] = domain.Category{
			CategoryID:   m.CategoryID,
			Name:         m.Name,
			ParentID:     m.ParentID,
			CategoryType: m.CategoryType,
			OwnedFields:  domain.OwnedFields{UserID: m.UserID, CreatedAt: m.CreatedAt},
		}
	}
	return categories, nil
}

// --- Assets ---

func (r *PgxRecordRepository) SaveAsset(ctx context.Context, a domain.Asset) error {
	_, err := r.exec(ctx, "save asset", `
		INSERT INTO assets (asset_id, user_id, name, asset_type, value, currency, account_id, remark, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		a.AssetID, a.UserID, a.Name, a.AssetType, a.Value, a.Currency, a.AccountID, a.Remark, a.CreatedAt,
	)
	return err
}

func (r *PgxRecordRepository) ListAssetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	rows, err := queryAll[models.Asset](ctx, &r.BaseRepository, "list assets", `
		SELECT asset_id, user_id, name, asset_type, value, currency, account_id, remark, created_at
		FROM assets WHERE user_id = $1 ORDER BY created_at, asset_id;`, userID)
	if err != nil {
		return nil, err
	}
	assets := make([]domain.Asset, len(rows))
	for i, m := range rows {
		assets[i] = domain.Asset{
			AssetID:     m.AssetID,
			Name:        m.Name,
			AssetType:   m.AssetType,
			Value:       m.Value,
			Currency:    m.Currency,
			AccountID:   m.AccountID,
			Remark:      m.Remark,
			OwnedFields: domain.OwnedFields{UserID: m.UserID, CreatedAt: m.CreatedAt},
		}
	}
	return assets, nil
}

// --- Budgets ---

func (r *PgxRecordRepository) SaveBudget(ctx context.Context, b domain.Budget) error {
	_, err := r.exec(ctx, "save budget", `
		INSERT INTO budgets (budget_id, user_id, category_id, amount, period, start_date, end_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		b.BudgetID, b.UserID, b.CategoryID, b.Amount, b.Period, b.StartDate, b.EndDate, b.CreatedAt,
	)
	return err
}

func (r *PgxRecordRepository) ListBudgetsByUser(ctx context.Context, userID uuid.UUID) ([]domain.Budget, error) {
	rows, err := queryAll[models.Budget](ctx, &r.BaseRepository, "list budgets", `
		SELECT budget_id, user_id, category_id, amount, period, start_date, end_date, created_at
		FROM budgets WHERE user_id = $1 ORDER BY start_date DESC, budget_id;`, userID)
	if err != nil {
		return nil, err
	}
	budgets := make([]domain.Budget, len(rows))
	for i, m := range rows {
		budgets[i] = domain.Budget{
			BudgetID:    m.BudgetID,
			CategoryID:  m.CategoryID,
			Amount:      m.Amount,
			Period:      m.Period,
			StartDate:   m.StartDate,
			EndDate:     m.EndDate,
			OwnedFields: domain.OwnedFields{UserID: m.UserID, CreatedAt: m.CreatedAt},
		}
	}
	return budgets, nil
}

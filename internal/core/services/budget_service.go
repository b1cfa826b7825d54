package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_records_app/internal/apperrors"
	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
)

type budgetService struct {
	BaseService
	budgetRepo portsrepo.BudgetRepositoryFacade
}

// NewBudgetService creates the budget service.
func NewBudgetService(repo portsrepo.BudgetRepositoryFacade) portssvc.BudgetSvcFacade {
	return &budgetService{budgetRepo: repo}
}

func (s *budgetService) CreateBudget(ctx context.Context, userID uuid.UUID, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category_id must be a UUID", apperrors.ErrValidation)
	}
	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be an RFC3339 timestamp", apperrors.ErrValidation)
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be an RFC3339 timestamp", apperrors.ErrValidation)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", apperrors.ErrValidation)
	}

	budget := domain.Budget{
		BudgetID:    uuid.New(),
		CategoryID:  categoryID,
		Amount:      req.Amount,
		Period:      req.Period,
		StartDate:   start,
		EndDate:     end,
		OwnedFields: domain.OwnedFields{UserID: userID, CreatedAt: time.Now().UTC()},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("budget_id", budget.BudgetID.String()))
		return nil, fmt.Errorf("failed to create budget in service: %w", err)
	}
	return &budget, nil
}

func (s *budgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]domain.Budget, error) {
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets in service: %w", err)
	}
	return budgets, nil
}

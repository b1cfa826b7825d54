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

type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates the category service.
func NewCategoryService(repo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, req dto.CreateCategoryRequest) (*domain.Category, error) {
	category := domain.Category{
		CategoryID:   uuid.New(),
		Name:         req.Name,
		CategoryType: req.CategoryType,
		OwnedFields:  domain.OwnedFields{UserID: userID, CreatedAt: time.Now().UTC()},
	}
	if req.ParentID != nil {
		parentID, err := uuid.Parse(*req.ParentID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent_id must be a UUID", apperrors.ErrValidation)
		}
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category", slog.String("category_id", category.CategoryID.String()))
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return &category, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategoriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	return categories, nil
}

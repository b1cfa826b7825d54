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

type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepositoryFacade
}

// NewAssetService creates the asset service.
func NewAssetService(repo portsrepo.AssetRepositoryFacade) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: repo}
}

func (s *assetService) CreateAsset(ctx context.Context, userID uuid.UUID, req dto.CreateAssetRequest) (*domain.Asset, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("%w: account_id must be a UUID", apperrors.ErrValidation)
	}

	asset := domain.Asset{
		AssetID:     uuid.New(),
		Name:        req.Name,
		AssetType:   req.AssetType,
		Value:       req.Value,
		Currency:    req.Currency,
		AccountID:   accountID,
		Remark:      req.Remark,
		OwnedFields: domain.OwnedFields{UserID: userID, CreatedAt: time.Now().UTC()},
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset", slog.String("asset_id", asset.AssetID.String()))
		return nil, fmt.Errorf("failed to create asset in service: %w", err)
	}
	return &asset, nil
}

func (s *assetService) ListAssets(ctx context.Context, userID uuid.UUID) ([]domain.Asset, error) {
	assets, err := s.assetRepo.ListAssetsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets in service: %w", err)
	}
	return assets, nil
}

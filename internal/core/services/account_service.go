package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/money_records_app/internal/core/domain"
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/dto"
	"github.com/google/uuid"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates the account service.
func NewAccountService(repo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

func (s *accountService) CreateAccount(ctx context.Context, userID uuid.UUID, req dto.CreateAccountRequest) (*domain.Account, error) {
	account := domain.Account{
		AccountID:   uuid.New(),
		Name:        req.Name,
		AccountType: req.AccountType,
		Balance:     req.Balance,
		Currency:    req.Currency,
		Remark:      req.Remark,
		OwnedFields: domain.OwnedFields{UserID: userID, CreatedAt: time.Now().UTC()},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account in repository", slog.String("account_id", account.AccountID.String()))
		return nil, fmt.Errorf("failed to create account in service: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully in service", slog.String("account_id", account.AccountID.String()))
	return &account, nil
}

func (s *accountService) ListAccounts(ctx context.Context, userID uuid.UUID) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts in repository")
		return nil, fmt.Errorf("failed to list accounts in service: %w", err)
	}
	return accounts, nil
}

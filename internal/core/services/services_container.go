package services

import (
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/money_records_app/internal/core/ports/services"
	"github.com/SscSPs/money_records_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Token:      NewTokenService(cfg),
		User:       NewUserService(repos.UserRepo),
		Order:      NewOrderService(repos.OrderRepo),
		OrderQuery: NewOrderQueryService(repos.OrderRepo),
		Account:    NewAccountService(repos.AccountRepo),
		Category:   NewCategoryService(repos.CategoryRepo),
		Asset:      NewAssetService(repos.AssetRepo),
		Budget:     NewBudgetService(repos.BudgetRepo),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade  = (*accountService)(nil)
	_ portssvc.CategorySvcFacade = (*categoryService)(nil)
	_ portssvc.AssetSvcFacade    = (*assetService)(nil)
	_ portssvc.BudgetSvcFacade   = (*budgetService)(nil)
)

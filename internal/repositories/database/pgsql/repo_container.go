package pgsql

import (
	portsrepo "github.com/SscSPs/money_records_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds every repository on top of one connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	recordRepo := newPgxRecordRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:     newPgxUserRepository(dbPool),
		OrderRepo:    newPgxOrderRepository(dbPool),
		AccountRepo:  recordRepo,
		CategoryRepo: recordRepo,
		AssetRepo:    recordRepo,
		BudgetRepo:   recordRepo,
	}
}

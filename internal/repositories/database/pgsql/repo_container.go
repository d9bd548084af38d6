package pgsql

import (
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	boxRepo := newPgxBoxRepository(dbPool)
	partyRepo := newPgxPartyRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, boxRepo, partyRepo)
	reportingRepo := newPgxReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		BoxRepo:         boxRepo,
		PartyRepo:       partyRepo,
		TransactionRepo: transactionRepo,
		ReportingRepo:   reportingRepo,
		UserRepo:        userRepo,
	}
}

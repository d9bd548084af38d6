package services

import (
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Box = NewBoxService(repos.BoxRepo)
	container.Party = NewPartyService(repos.PartyRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BoxRepo, repos.PartyRepo, cfg.EnforceNonNegativeBalances)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BoxSvcFacade         = (*boxService)(nil)
	_ portssvc.PartySvcFacade       = (*partyService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
)

package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
)

// reportingService derives read-side aggregates. Totals are computed from the
// stored balances on demand, never cached or persisted.
type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

// Ensure reportingService implements the portssvc.ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// DashboardSummary computes the current totals. Net worth is what is in the
// boxes plus what active clients owe, minus what is owed to active providers.
func (s *reportingService) DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	totals, err := s.reportingRepo.GetLedgerTotals(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardSummary{
		TotalCash:       totals.TotalCash,
		TotalReceivable: totals.TotalReceivable,
		TotalPayable:    totals.TotalPayable,
		NetWorth:        totals.TotalCash.Add(totals.TotalReceivable).Sub(totals.TotalPayable),
	}, nil
}

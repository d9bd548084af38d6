package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
)

// ReportingSvcFacade derives read-side aggregates without mutating state.
type ReportingSvcFacade interface {
	// DashboardSummary computes the current totals on demand.
	DashboardSummary(ctx context.Context) (*domain.DashboardSummary, error)
}

package repositories

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
)

// ReportingRepository defines read-only aggregate queries for reports.
// Aggregates are computed on demand from current ledger state; nothing here
// mutates anything.
type ReportingRepository interface {
	// GetLedgerTotals returns the summed box, active-client and
	// active-provider balances.
	GetLedgerTotals(ctx context.Context) (*domain.LedgerTotals, error)
}

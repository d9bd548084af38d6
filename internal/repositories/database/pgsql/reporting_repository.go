package pgsql

import (
	"context"
	"fmt"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for aggregate reporting queries.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxReportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// GetLedgerTotals sums the box balances and the active client and provider
// balances in one round trip. Inactive parties keep their balances but are
// excluded from the totals.
func (r *PgxReportingRepository) GetLedgerTotals(ctx context.Context) (*domain.LedgerTotals, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(balance) FROM boxes), 0) AS total_cash,
			COALESCE((SELECT SUM(balance) FROM parties WHERE party_type = $1 AND status = $3), 0) AS total_receivable,
			COALESCE((SELECT SUM(balance) FROM parties WHERE party_type = $2 AND status = $3), 0) AS total_payable;
	`

	var totals domain.LedgerTotals
	err := r.Pool.QueryRow(ctx, query,
		string(domain.PartyClient),
		string(domain.PartyProvider),
		string(domain.PartyActive),
	).Scan(&totals.TotalCash, &totals.TotalReceivable, &totals.TotalPayable)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger totals: %w", err)
	}

	return &totals, nil
}

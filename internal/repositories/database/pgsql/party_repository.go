package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	"github.com/cashbox-app/cashbox_backend/internal/models"
	"github.com/cashbox-app/cashbox_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for client and provider data.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

const partyColumns = `party_id, name, party_type, balance, status, created_at, created_by, last_updated_at, last_updated_by`

func scanParty(row pgx.Row) (models.Party, error) {
	var m models.Party
	err := row.Scan(
		&m.PartyID,
		&m.Name,
		&m.PartyType,
		&m.Balance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveParty inserts a new client or provider.
func (r *PgxPartyRepository) SaveParty(ctx context.Context, party domain.Party) error {
	modelParty := mapping.ToModelParty(party)

	query := `
		INSERT INTO parties (party_id, name, party_type, balance, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelParty.PartyID,
		modelParty.Name,
		modelParty.PartyType,
		modelParty.Balance,
		modelParty.Status,
		modelParty.CreatedAt,
		modelParty.CreatedBy,
		modelParty.LastUpdatedAt,
		modelParty.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: party with ID %s already exists", apperrors.ErrDuplicate, modelParty.PartyID)
		}
		return fmt.Errorf("failed to save party %s: %w", modelParty.PartyID, err)
	}
	return nil
}

// FindPartyByID retrieves a client or provider by its ID.
func (r *PgxPartyRepository) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = $1;`

	modelParty, err := scanParty(r.Pool.QueryRow(ctx, query, partyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find party by ID %s: %w", partyID, err)
	}

	domainParty := mapping.ToDomainParty(modelParty)
	return &domainParty, nil
}

// ListParties retrieves clients or providers of the given type, optionally
// restricted to active ones, sorted by name.
func (r *PgxPartyRepository) ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_type = $1`
	args := []any{string(partyType)}
	if activeOnly {
		query += ` AND status = $2`
		args = append(args, string(domain.PartyActive))
	}
	query += ` ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties: %w", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan party row: %w", err)
		}
		parties = append(parties, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating party rows: %w", err)
	}

	return mapping.ToDomainPartySlice(parties), nil
}

// DeactivateParty marks a client or provider as inactive. The balance and the
// transaction history are preserved.
func (r *PgxPartyRepository) DeactivateParty(ctx context.Context, partyID string, partyType domain.PartyType, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE party_id = $1 AND party_type = $2;
	`
	ct, err := r.Pool.Exec(ctx, query, partyID, string(partyType), string(domain.PartyInactive), now, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate party %s: %w", partyID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: party %s of type %s not found", apperrors.ErrNotFound, partyID, partyType)
	}
	return nil
}

// FindPartiesByIDsForUpdate retrieves multiple parties by IDs and locks the rows for update.
// Must be called within a transaction.
func (r *PgxPartyRepository) FindPartiesByIDsForUpdate(ctx context.Context, tx pgx.Tx, partyIDs []string) (map[string]domain.Party, error) {
	if len(partyIDs) == 0 {
		return map[string]domain.Party{}, nil
	}

	query := `SELECT ` + partyColumns + ` FROM parties WHERE party_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, partyIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query parties by IDs for update: %w", err)
	}
	defer rows.Close()

	partiesMap := make(map[string]domain.Party)
	for rows.Next() {
		m, err := scanParty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked party row: %w", err)
		}
		partiesMap[m.PartyID] = mapping.ToDomainParty(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked party rows: %w", err)
	}

	// Check if all requested parties were found and locked
	if len(partiesMap) != len(partyIDs) {
		missing := []string{}
		for _, id := range partyIDs {
			if _, found := partiesMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some parties requested for update lock were not found", "missing_parties", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested parties, missing: %v", apperrors.ErrNotFound, missing)
	}

	return partiesMap, nil
}

// UpdatePartyBalancesInTx applies signed deltas to multiple parties within a transaction.
func (r *PgxPartyRepository) UpdatePartyBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(deltas) == 0 {
		return nil // Nothing to update
	}

	query := `
		UPDATE parties
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`

	batch := &pgx.Batch{}
	partyIDs := make([]string, 0, len(deltas))
	for partyID, delta := range deltas {
		if !delta.IsZero() {
			batch.Queue(query, partyID, delta, now, userID)
			partyIDs = append(partyIDs, partyID)
		}
	}
	if batch.Len() == 0 {
		return nil // No non-zero changes
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		ct, err := br.Exec()
		if err != nil {
			if batchErr == nil {
				batchErr = fmt.Errorf("failed to update balance for party %s: %w", partyIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: party %s not found during balance update", apperrors.ErrNotFound, partyIDs[i])
			}
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close party balance update batch: %w", err)
	}

	return batchErr
}

// SetPartyBalanceInTx sets a party balance to an absolute amount within a transaction.
// Used only by the initial-balance path.
func (r *PgxPartyRepository) SetPartyBalanceInTx(ctx context.Context, tx pgx.Tx, partyID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE parties
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE party_id = $1;
	`
	ct, err := tx.Exec(ctx, query, partyID, amount, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set balance for party %s: %w", partyID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: party %s not found during balance set", apperrors.ErrNotFound, partyID)
	}
	return nil
}

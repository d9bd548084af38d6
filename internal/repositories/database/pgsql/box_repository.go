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

type PgxBoxRepository struct {
	BaseRepository
}

// newPgxBoxRepository creates a new repository for box data.
func newPgxBoxRepository(pool *pgxpool.Pool) portsrepo.BoxRepositoryFacade {
	return &PgxBoxRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBoxRepository implements portsrepo.BoxRepositoryFacade
var _ portsrepo.BoxRepositoryFacade = (*PgxBoxRepository)(nil)

const boxColumns = `box_id, name, box_type, balance, created_at, created_by, last_updated_at, last_updated_by`

func scanBox(row pgx.Row) (models.Box, error) {
	var m models.Box
	err := row.Scan(
		&m.BoxID,
		&m.Name,
		&m.BoxType,
		&m.Balance,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveBox inserts a new box. Boxes are only created by the seeding path.
func (r *PgxBoxRepository) SaveBox(ctx context.Context, box domain.Box) error {
	modelBox := mapping.ToModelBox(box)

	query := `
		INSERT INTO boxes (box_id, name, box_type, balance, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelBox.BoxID,
		modelBox.Name,
		modelBox.BoxType,
		modelBox.Balance,
		modelBox.CreatedAt,
		modelBox.CreatedBy,
		modelBox.LastUpdatedAt,
		modelBox.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: box with ID %s already exists", apperrors.ErrDuplicate, modelBox.BoxID)
		}
		return fmt.Errorf("failed to save box %s: %w", modelBox.BoxID, err)
	}
	return nil
}

// FindBoxByID retrieves a box by its ID.
func (r *PgxBoxRepository) FindBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	query := `SELECT ` + boxColumns + ` FROM boxes WHERE box_id = $1;`

	modelBox, err := scanBox(r.Pool.QueryRow(ctx, query, boxID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find box by ID %s: %w", boxID, err)
	}

	domainBox := mapping.ToDomainBox(modelBox)
	return &domainBox, nil
}

// ListBoxes retrieves all boxes sorted by name.
func (r *PgxBoxRepository) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	query := `SELECT ` + boxColumns + ` FROM boxes ORDER BY name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes: %w", err)
	}
	defer rows.Close()

	boxes := []models.Box{}
	for rows.Next() {
		m, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan box row: %w", err)
		}
		boxes = append(boxes, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating box rows: %w", err)
	}

	return mapping.ToDomainBoxSlice(boxes), nil
}

// CountBoxes returns the total number of boxes.
func (r *PgxBoxRepository) CountBoxes(ctx context.Context) (int64, error) {
	var count int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM boxes;`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count boxes: %w", err)
	}
	return count, nil
}

// FindBoxesByIDsForUpdate retrieves multiple boxes by IDs and locks the rows for update.
// Must be called within a transaction.
func (r *PgxBoxRepository) FindBoxesByIDsForUpdate(ctx context.Context, tx pgx.Tx, boxIDs []string) (map[string]domain.Box, error) {
	if len(boxIDs) == 0 {
		return map[string]domain.Box{}, nil
	}

	query := `SELECT ` + boxColumns + ` FROM boxes WHERE box_id = ANY($1) FOR UPDATE;`

	rows, err := tx.Query(ctx, query, boxIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query boxes by IDs for update: %w", err)
	}
	defer rows.Close()

	boxesMap := make(map[string]domain.Box)
	for rows.Next() {
		m, err := scanBox(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan locked box row: %w", err)
		}
		boxesMap[m.BoxID] = mapping.ToDomainBox(m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating locked box rows: %w", err)
	}

	// Check if all requested boxes were found and locked
	if len(boxesMap) != len(boxIDs) {
		missing := []string{}
		for _, id := range boxIDs {
			if _, found := boxesMap[id]; !found {
				missing = append(missing, id)
			}
		}
		slog.WarnContext(ctx, "Some boxes requested for update lock were not found", "missing_boxes", missing)
		return nil, fmt.Errorf("%w: could not find or lock all requested boxes, missing: %v", apperrors.ErrNotFound, missing)
	}

	return boxesMap, nil
}

// UpdateBoxBalancesInTx applies signed deltas to multiple boxes within a transaction.
func (r *PgxBoxRepository) UpdateBoxBalancesInTx(ctx context.Context, tx pgx.Tx, deltas map[string]decimal.Decimal, userID string, now time.Time) error {
	if len(deltas) == 0 {
		return nil // Nothing to update
	}

	// COALESCE guards against a NULL balance if the column default was missed
	query := `
		UPDATE boxes
		SET balance = COALESCE(balance, 0) + $2, last_updated_at = $3, last_updated_by = $4
		WHERE box_id = $1;
	`

	batch := &pgx.Batch{}
	boxIDs := make([]string, 0, len(deltas))
	for boxID, delta := range deltas {
		if !delta.IsZero() {
			batch.Queue(query, boxID, delta, now, userID)
			boxIDs = append(boxIDs, boxID)
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
				batchErr = fmt.Errorf("failed to update balance for box %s: %w", boxIDs[i], err)
			}
		} else if ct.RowsAffected() == 0 {
			// Should not happen after the locking step found the row
			if batchErr == nil {
				batchErr = fmt.Errorf("%w: box %s not found during balance update", apperrors.ErrNotFound, boxIDs[i])
			}
		}
	}

	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close box balance update batch: %w", err)
	}

	return batchErr
}

// SetBoxBalanceInTx sets a box balance to an absolute amount within a transaction.
// Used only by the initial-balance path.
func (r *PgxBoxRepository) SetBoxBalanceInTx(ctx context.Context, tx pgx.Tx, boxID string, amount decimal.Decimal, userID string, now time.Time) error {
	query := `
		UPDATE boxes
		SET balance = $2, last_updated_at = $3, last_updated_by = $4
		WHERE box_id = $1;
	`
	ct, err := tx.Exec(ctx, query, boxID, amount, now, userID)
	if err != nil {
		return fmt.Errorf("failed to set balance for box %s: %w", boxID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("%w: box %s not found during balance set", apperrors.ErrNotFound, boxID)
	}
	return nil
}

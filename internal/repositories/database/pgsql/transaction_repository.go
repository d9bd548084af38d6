package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	"github.com/cashbox-app/cashbox_backend/internal/models"
	"github.com/cashbox-app/cashbox_backend/internal/utils/mapping"
	"github.com/cashbox-app/cashbox_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxTransactionRepository persists the immutable transaction log and applies
// the balance changes of each transaction in the same storage transaction.
type PgxTransactionRepository struct {
	BaseRepository
	boxRepo   portsrepo.BoxTransactionSupport
	partyRepo portsrepo.PartyTransactionSupport
}

// newPgxTransactionRepository creates a new repository for the transaction log.
// The box and party repositories supply the row-locking balance updates that
// run inside this repository's storage transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool, boxRepo portsrepo.BoxTransactionSupport, partyRepo portsrepo.PartyTransactionSupport) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		boxRepo:        boxRepo,
		partyRepo:      partyRepo,
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, transaction_date, transaction_type, amount, description, box_id, target_box_id, party_id, created_at, created_by, last_updated_at, last_updated_by`

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.TransactionDate,
		&m.TransactionType,
		&m.Amount,
		&m.Description,
		&m.BoxID,
		&m.TargetBoxID,
		&m.PartyID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxTransactionRepository) insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (transaction_id, transaction_date, transaction_type, amount, description, box_id, target_box_id, party_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.TransactionDate,
		modelTxn.TransactionType,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.BoxID,
		modelTxn.TargetBoxID,
		modelTxn.PartyID,
		modelTxn.CreatedAt,
		modelTxn.CreatedBy,
		modelTxn.LastUpdatedAt,
		modelTxn.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, modelTxn.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", modelTxn.TransactionID, err)
	}
	return nil
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SaveTransaction appends the transaction record and applies its balance
// changes atomically. The affected box and party rows are locked first so the
// read-modify-write of each balance cannot race a concurrent transaction.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, changes domain.BalanceChanges, enforceNonNegative bool) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				slog.ErrorContext(ctx, "Failed to rollback transaction save", "error", rbErr, "transaction_id", txn.TransactionID)
			}
		}
	}()

	// Locking in sorted key order keeps concurrent saves from deadlocking
	boxIDs := sortedKeys(changes.Boxes)
	partyIDs := sortedKeys(changes.Parties)

	lockedBoxes, err := r.boxRepo.FindBoxesByIDsForUpdate(ctx, tx, boxIDs)
	if err != nil {
		return fmt.Errorf("failed to lock boxes for transaction %s: %w", txn.TransactionID, err)
	}
	lockedParties, err := r.partyRepo.FindPartiesByIDsForUpdate(ctx, tx, partyIDs)
	if err != nil {
		return fmt.Errorf("failed to lock parties for transaction %s: %w", txn.TransactionID, err)
	}

	if enforceNonNegative {
		for _, id := range boxIDs {
			if lockedBoxes[id].Balance.Add(changes.Boxes[id]).IsNegative() {
				return fmt.Errorf("%w: box %s would go below zero", apperrors.ErrInsufficientBalance, id)
			}
		}
		for _, id := range partyIDs {
			if lockedParties[id].Balance.Add(changes.Parties[id]).IsNegative() {
				return fmt.Errorf("%w: party %s would go below zero", apperrors.ErrInsufficientBalance, id)
			}
		}
	}

	now := txn.CreatedAt
	if err = r.boxRepo.UpdateBoxBalancesInTx(ctx, tx, changes.Boxes, txn.CreatedBy, now); err != nil {
		return fmt.Errorf("failed to apply box balance changes for transaction %s: %w", txn.TransactionID, err)
	}
	if err = r.partyRepo.UpdatePartyBalancesInTx(ctx, tx, changes.Parties, txn.CreatedBy, now); err != nil {
		return fmt.Errorf("failed to apply party balance changes for transaction %s: %w", txn.TransactionID, err)
	}

	if err = r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	if err = r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}

// SaveInitialBalance appends an INITIAL_BALANCE transaction and sets the
// target ledger's balance to the absolute amount, atomically.
func (r *PgxTransactionRepository) SaveInitialBalance(ctx context.Context, txn domain.Transaction, target domain.LedgerRef) (err error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := r.Rollback(ctx, tx); rbErr != nil {
				slog.ErrorContext(ctx, "Failed to rollback initial balance save", "error", rbErr, "transaction_id", txn.TransactionID)
			}
		}
	}()

	now := txn.CreatedAt
	switch target.Kind {
	case domain.LedgerBox:
		if _, err = r.boxRepo.FindBoxesByIDsForUpdate(ctx, tx, []string{target.ID}); err != nil {
			return fmt.Errorf("failed to lock box %s for initial balance: %w", target.ID, err)
		}
		if err = r.boxRepo.SetBoxBalanceInTx(ctx, tx, target.ID, txn.Amount, txn.CreatedBy, now); err != nil {
			return err
		}
	case domain.LedgerClient, domain.LedgerProvider:
		if _, err = r.partyRepo.FindPartiesByIDsForUpdate(ctx, tx, []string{target.ID}); err != nil {
			return fmt.Errorf("failed to lock party %s for initial balance: %w", target.ID, err)
		}
		if err = r.partyRepo.SetPartyBalanceInTx(ctx, tx, target.ID, txn.Amount, txn.CreatedBy, now); err != nil {
			return err
		}
	default:
		err = fmt.Errorf("%w: unknown ledger kind %q", apperrors.ErrValidation, target.Kind)
		return err
	}

	if err = r.insertTransactionInTx(ctx, tx, txn); err != nil {
		return err
	}

	if err = r.Commit(ctx, tx); err != nil {
		return err
	}
	return nil
}

// ListTransactions retrieves a page of transactions, newest first. The page
// token encodes the (transaction_date, transaction_id) pair of the last row of
// the previous page, which keeps pagination stable while new rows arrive.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	args := []any{}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid page token: %v", apperrors.ErrValidation, err)
		}
		query += ` WHERE (transaction_date, transaction_id) < ($1, $2)`
		args = append(args, lastDate, lastID)
	}

	// Fetch one extra row to learn whether another page exists
	query += fmt.Sprintf(` ORDER BY transaction_date DESC, transaction_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		transactions = append(transactions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newNextToken *string
	if len(transactions) > limit {
		transactions = transactions[:limit]
		last := transactions[len(transactions)-1]
		token := pagination.EncodeToken(last.TransactionDate, last.TransactionID)
		newNextToken = &token
	}

	return mapping.ToDomainTransactionSlice(transactions), newNextToken, nil
}

// FindTransactionByID retrieves a single transaction record.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	modelTxn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	domainTxn := mapping.ToDomainTransaction(modelTxn)
	return &domainTxn, nil
}

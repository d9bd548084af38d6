package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
	"github.com/cashbox-app/cashbox_backend/internal/middleware"
	"github.com/cashbox-app/cashbox_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// transactionService is the balance-mutation engine. All ledger balance
// changes flow through it; each change is recorded as exactly one immutable
// transaction and applied atomically by the repository.
type transactionService struct {
	transactionRepo    portsrepo.TransactionRepositoryFacade
	boxRepo            portsrepo.BoxReader
	partyRepo          portsrepo.PartyReader
	enforceNonNegative bool
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, boxRepo portsrepo.BoxReader, partyRepo portsrepo.PartyReader, enforceNonNegative bool) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo:    transactionRepo,
		boxRepo:            boxRepo,
		partyRepo:          partyRepo,
		enforceNonNegative: enforceNonNegative,
	}
}

// Ensure transactionService implements the portssvc.TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateAmount checks that an amount is strictly positive and carries at
// most two decimal places.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero, got %s", apperrors.ErrValidation, amount.String())
	}
	if amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount must have at most two decimal places, got %s", apperrors.ErrValidation, amount.String())
	}
	return nil
}

// resolveBox checks that a referenced box exists.
func (s *transactionService) resolveBox(ctx context.Context, boxID *string) error {
	if boxID == nil || *boxID == "" {
		return nil // Presence is checked by the delta computation
	}
	if _, err := s.boxRepo.FindBoxByID(ctx, *boxID); err != nil {
		return fmt.Errorf("box %s: %w", *boxID, err)
	}
	return nil
}

// resolveParty checks that a referenced party exists and is active. Inactive
// parties keep their history but take no new transactions.
func (s *transactionService) resolveParty(ctx context.Context, partyID *string) error {
	if partyID == nil || *partyID == "" {
		return nil
	}
	party, err := s.partyRepo.FindPartyByID(ctx, *partyID)
	if err != nil {
		return fmt.Errorf("party %s: %w", *partyID, err)
	}
	if !party.IsActive() {
		return fmt.Errorf("%w: party %s is inactive", apperrors.ErrValidation, *partyID)
	}
	return nil
}

// CreateTransaction validates the request, computes the ledger deltas for its
// type and hands the record plus its deltas to the repository for one atomic
// write. Nothing is persisted if any validation step fails.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.Type.IsValid() || req.Type == domain.InitialBalance {
		return nil, fmt.Errorf("%w: transaction type %q is not accepted here", apperrors.ErrValidation, req.Type)
	}
	if err := validateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.Type == domain.Transfer && req.BoxID != nil && req.TargetBoxID != nil && *req.BoxID == *req.TargetBoxID {
		return nil, fmt.Errorf("%w: transfer source and target box must differ", apperrors.ErrValidation)
	}

	description := req.Description
	if description == "" {
		description = req.Type.DefaultDescription()
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		TransactionType: req.Type,
		Amount:          req.Amount,
		Description:     description,
		BoxID:           req.BoxID,
		TargetBoxID:     req.TargetBoxID,
		PartyID:         req.PartyID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	// The delta computation also rejects missing references for the type
	changes, err := accounting.ComputeChanges(txn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	if err := s.resolveBox(ctx, req.BoxID); err != nil {
		return nil, err
	}
	if err := s.resolveBox(ctx, req.TargetBoxID); err != nil {
		return nil, err
	}
	if err := s.resolveParty(ctx, req.PartyID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn, changes, s.enforceNonNegative); err != nil {
		logger.Error("Failed to save transaction", slog.String("transaction_type", string(req.Type)), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("transaction_type", string(txn.TransactionType)),
		slog.String("amount", txn.Amount.String()),
	)
	return &txn, nil
}

// SetInitialBalance sets one ledger's balance to an absolute amount and
// records a single INITIAL_BALANCE transaction for it. Intended for seeding
// real opening balances when the books move to this system.
func (s *transactionService) SetInitialBalance(ctx context.Context, req dto.SetInitialBalanceRequest, creatorUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.IsNegative() {
		return fmt.Errorf("%w: initial balance must not be negative, got %s", apperrors.ErrValidation, req.Amount.String())
	}
	if req.Amount.Exponent() < -2 {
		return fmt.Errorf("%w: amount must have at most two decimal places, got %s", apperrors.ErrValidation, req.Amount.String())
	}

	target := domain.LedgerRef{Kind: req.Kind, ID: req.LedgerID}
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: time.Now(),
		TransactionType: domain.InitialBalance,
		Amount:          req.Amount,
		Description:     domain.InitialBalance.DefaultDescription(),
	}
	switch req.Kind {
	case domain.LedgerBox:
		txn.BoxID = &req.LedgerID
		if _, err := s.boxRepo.FindBoxByID(ctx, req.LedgerID); err != nil {
			return fmt.Errorf("box %s: %w", req.LedgerID, err)
		}
	case domain.LedgerClient, domain.LedgerProvider:
		txn.PartyID = &req.LedgerID
		wantType, _ := domain.KindToPartyType(req.Kind)
		party, err := s.partyRepo.FindPartyByID(ctx, req.LedgerID)
		if err != nil {
			return fmt.Errorf("party %s: %w", req.LedgerID, err)
		}
		if party.PartyType != wantType {
			return fmt.Errorf("%w: party %s is not a %s", apperrors.ErrValidation, req.LedgerID, wantType)
		}
	default:
		return fmt.Errorf("%w: unknown ledger kind %q", apperrors.ErrValidation, req.Kind)
	}

	now := txn.TransactionDate
	txn.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	if err := s.transactionRepo.SaveInitialBalance(ctx, txn, target); err != nil {
		logger.Error("Failed to set initial balance", slog.String("ledger_id", req.LedgerID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Initial balance set",
		slog.String("ledger_kind", string(req.Kind)),
		slog.String("ledger_id", req.LedgerID),
		slog.String("amount", req.Amount.String()),
	)
	return nil
}

// ListTransactions returns the log newest first with token pagination.
func (s *transactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	transactions, nextToken, err := s.transactionRepo.ListTransactions(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

// GetTransactionByID returns a single log record.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
	"github.com/cashbox-app/cashbox_backend/internal/middleware"
)

// partyService manages clients and providers. One implementation backs both
// kinds; the handlers pass the kind their route manages.
type partyService struct {
	partyRepo portsrepo.PartyRepositoryFacade
}

// NewPartyService creates a new PartyService.
func NewPartyService(partyRepo portsrepo.PartyRepositoryFacade) portssvc.PartySvcFacade {
	return &partyService{partyRepo: partyRepo}
}

// Ensure partyService implements the portssvc.PartySvcFacade interface
var _ portssvc.PartySvcFacade = (*partyService)(nil)

// CreateParty registers a new client or provider with a zero balance.
func (s *partyService) CreateParty(ctx context.Context, partyType domain.PartyType, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: party name is required", apperrors.ErrValidation)
	}

	now := time.Now()
	party := domain.Party{
		PartyID:   uuid.NewString(),
		Name:      name,
		PartyType: partyType,
		Balance:   decimal.Zero,
		Status:    domain.PartyActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.partyRepo.SaveParty(ctx, party); err != nil {
		logger.Error("Failed to save party", slog.String("party_type", string(partyType)), slog.String("error", err.Error()))
		return nil, err
	}

	logger.Info("Party created", slog.String("party_id", party.PartyID), slog.String("party_type", string(partyType)))
	return &party, nil
}

// GetPartyByID retrieves one party, checking it belongs to the requested kind
// so a client route cannot read a provider and vice versa.
func (s *partyService) GetPartyByID(ctx context.Context, partyType domain.PartyType, partyID string) (*domain.Party, error) {
	party, err := s.partyRepo.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party.PartyType != partyType {
		return nil, apperrors.ErrNotFound
	}
	return party, nil
}

// ListParties retrieves parties of one kind sorted by name.
func (s *partyService) ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error) {
	return s.partyRepo.ListParties(ctx, partyType, activeOnly)
}

// DeactivateParty soft-deletes a party. Its balance and transaction history
// are preserved; it only stops appearing in active listings and taking new
// transactions.
func (s *partyService) DeactivateParty(ctx context.Context, partyType domain.PartyType, partyID string, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.partyRepo.DeactivateParty(ctx, partyID, partyType, userID, time.Now()); err != nil {
		return err
	}

	logger.Info("Party deactivated", slog.String("party_id", partyID), slog.String("party_type", string(partyType)))
	return nil
}

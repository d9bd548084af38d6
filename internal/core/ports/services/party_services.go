package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	"github.com/cashbox-app/cashbox_backend/internal/dto"
)

// PartySvcFacade defines operations over clients and providers. The same
// service backs both; handlers pass the kind they manage.
type PartySvcFacade interface {
	// CreateParty registers a new client or provider with a zero balance.
	CreateParty(ctx context.Context, partyType domain.PartyType, req dto.CreatePartyRequest, creatorUserID string) (*domain.Party, error)

	// GetPartyByID retrieves one party of the given kind.
	GetPartyByID(ctx context.Context, partyType domain.PartyType, partyID string) (*domain.Party, error)

	// ListParties retrieves parties of one kind sorted by name, optionally
	// restricted to active ones.
	ListParties(ctx context.Context, partyType domain.PartyType, activeOnly bool) ([]domain.Party, error)

	// DeactivateParty soft-deletes a party; its balance and history remain.
	DeactivateParty(ctx context.Context, partyType domain.PartyType, partyID string, userID string) error
}

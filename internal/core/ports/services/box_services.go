package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
)

// BoxSvcFacade defines the read surface over boxes. Box balances are mutated
// only through the transaction service.
type BoxSvcFacade interface {
	// GetBoxByID retrieves one box.
	GetBoxByID(ctx context.Context, boxID string) (*domain.Box, error)

	// ListBoxes retrieves all boxes sorted by name.
	ListBoxes(ctx context.Context) ([]domain.Box, error)
}

package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
)

// boxService provides read access to boxes. Box balances change only through
// the transaction service.
type boxService struct {
	boxRepo portsrepo.BoxRepositoryFacade
}

// NewBoxService creates a new BoxService.
func NewBoxService(boxRepo portsrepo.BoxRepositoryFacade) portssvc.BoxSvcFacade {
	return &boxService{boxRepo: boxRepo}
}

// Ensure boxService implements the portssvc.BoxSvcFacade interface
var _ portssvc.BoxSvcFacade = (*boxService)(nil)

// GetBoxByID retrieves one box.
func (s *boxService) GetBoxByID(ctx context.Context, boxID string) (*domain.Box, error) {
	return s.boxRepo.FindBoxByID(ctx, boxID)
}

// ListBoxes retrieves all boxes sorted by name.
func (s *boxService) ListBoxes(ctx context.Context) ([]domain.Box, error) {
	return s.boxRepo.ListBoxes(ctx)
}

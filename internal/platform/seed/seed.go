package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashbox-app/cashbox_backend/internal/apperrors"
	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
	portsrepo "github.com/cashbox-app/cashbox_backend/internal/core/ports/repositories"
	portssvc "github.com/cashbox-app/cashbox_backend/internal/core/ports/services"
	"github.com/cashbox-app/cashbox_backend/internal/platform/config"
)

const adminUsername = "admin"

// systemUserID is recorded as the creator of seeded rows.
const systemUserID = "system"

// Run provisions the fixed box set and the admin user on first boot against an
// empty database. It is idempotent: a database that already has boxes or the
// admin user is left untouched.
func Run(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider, userSvc portssvc.UserSvcFacade) error {
	if err := seedBoxes(ctx, repos.BoxRepo); err != nil {
		return err
	}
	return seedAdminUser(ctx, cfg, repos.UserRepo, userSvc)
}

// seedBoxes creates the three fixed boxes. The box set is closed: one each
// for cash, checks and bank transfers.
func seedBoxes(ctx context.Context, boxRepo portsrepo.BoxRepositoryFacade) error {
	count, err := boxRepo.CountBoxes(ctx)
	if err != nil {
		return fmt.Errorf("failed to count boxes for seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	boxes := []domain.Box{
		{Name: "Cash", BoxType: domain.BoxCash},
		{Name: "Checks", BoxType: domain.BoxChecks},
		{Name: "Transfers", BoxType: domain.BoxTransfers},
	}
	for _, box := range boxes {
		box.BoxID = uuid.NewString()
		box.Balance = decimal.Zero
		box.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     systemUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: systemUserID,
		}
		if err := boxRepo.SaveBox(ctx, box); err != nil {
			return fmt.Errorf("failed to seed box %s: %w", box.Name, err)
		}
		slog.InfoContext(ctx, "Seeded box", "box_id", box.BoxID, "name", box.Name)
	}
	return nil
}

func seedAdminUser(ctx context.Context, cfg *config.Config, userRepo portsrepo.UserRepositoryFacade, userSvc portssvc.UserSvcFacade) error {
	_, err := userRepo.FindUserByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin user for seeding: %w", err)
	}

	if cfg.SeedAdminPassword == "" {
		slog.WarnContext(ctx, "SEED_ADMIN_PASSWORD not set, skipping admin user creation")
		return nil
	}

	user, err := userSvc.CreateUser(ctx, adminUsername, "Administrator", cfg.SeedAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	slog.InfoContext(ctx, "Seeded admin user", "user_id", user.UserID)
	return nil
}

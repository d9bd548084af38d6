package services

import (
	"context"

	"github.com/cashbox-app/cashbox_backend/internal/core/domain"
)

// UserSvcFacade defines operations over operator accounts.
type UserSvcFacade interface {
	// GetUserByID retrieves a user by id.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username; used by login.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser registers a new operator with a bcrypt-hashed password.
	CreateUser(ctx context.Context, username, name, password string) (*domain.User, error)
}

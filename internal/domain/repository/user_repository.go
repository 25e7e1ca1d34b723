// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"farmkitchen/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDs retrieves the accounts for the given IDs. Missing IDs are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)

	// FindByFirebaseUID retrieves a single account by its identity-provider subject id.
	FindByFirebaseUID(ctx context.Context, firebaseUID string) (*entity.User, error)

	// Create persists a new account.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing account.
	Update(ctx context.Context, user *entity.User) error

	// List retrieves accounts newest-first, optionally filtered by role.
	List(ctx context.Context, role *entity.Role) ([]*entity.User, error)

	// Count returns the total number of accounts.
	Count(ctx context.Context) (int64, error)

	// CountByRole returns the number of accounts holding the given role.
	CountByRole(ctx context.Context, role entity.Role) (int64, error)
}

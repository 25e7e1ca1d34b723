package usecase

import (
	"context"

	"farmkitchen/internal/domain/entity"
)

// AuthUseCase handles identity-token based signup, login and request
// authentication. All three verify a Firebase ID token; they differ only in
// how they treat an unknown or already-registered account.
type AuthUseCase interface {
	// Signup verifies the token and creates the account. It fails with
	// ErrAlreadyRegistered when the identity already has an account.
	Signup(ctx context.Context, idToken string) (*entity.User, error)

	// Login verifies the token and returns the existing account. It fails
	// with ErrUserNotFound when no account exists for the identity.
	Login(ctx context.Context, idToken string) (*entity.User, error)

	// ResolveIdentity verifies the token and returns the matching account,
	// provisioning a consumer account on first contact. Used by the auth
	// middleware on every protected request.
	ResolveIdentity(ctx context.Context, idToken string) (*entity.User, error)
}

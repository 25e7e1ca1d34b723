// Package impl provides the concrete use case implementations wired by fx.
package impl

import (
	"context"
	"strings"
	"time"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type authService struct {
	verifier service.IdentityVerifier
	userRepo repository.UserRepository
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Verifier service.IdentityVerifier
	UserRepo repository.UserRepository
}

// NewAuthService creates a new auth service instance
func NewAuthService(params AuthServiceParams) usecase.AuthUseCase {
	return &authService{
		verifier: params.Verifier,
		userRepo: params.UserRepo,
	}
}

// Signup verifies the token and creates a fresh consumer account.
func (s *authService) Signup(ctx context.Context, idToken string) (*entity.User, error) {
	claims, err := s.verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	_, err = s.userRepo.FindByFirebaseUID(ctx, claims.UID)
	if err == nil {
		return nil, domainerrors.ErrAlreadyRegistered.WithDetails("User already exists, please login")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	return s.provision(ctx, claims)
}

// Login verifies the token and returns the existing account.
func (s *authService) Login(ctx context.Context, idToken string) (*entity.User, error) {
	claims, err := s.verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByFirebaseUID(ctx, claims.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WithDetails("User not found, please sign up")
		}

		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	return user, nil
}

// ResolveIdentity verifies the token and returns the matching account,
// provisioning a consumer account on first contact.
func (s *authService) ResolveIdentity(ctx context.Context, idToken string) (*entity.User, error) {
	claims, err := s.verify(ctx, idToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByFirebaseUID(ctx, claims.UID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to find user by firebase uid")
	}

	return s.provision(ctx, claims)
}

func (s *authService) verify(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	claims, err := s.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated.WithDetails("Invalid or expired token")
	}
	if claims.Email == "" {
		return nil, domainerrors.ErrInvalidCredential.WithDetails("Token is missing an email claim")
	}

	return claims, nil
}

// provision creates a consumer account from verified token claims. The
// display name falls back to the email local-part when the provider sends
// no name.
func (s *authService) provision(ctx context.Context, claims *service.IdentityClaims) (*entity.User, error) {
	name := claims.Name
	if name == "" {
		name = strings.SplitN(claims.Email, "@", 2)[0]
	}

	user := &entity.User{
		ID:          uuid.New(),
		FirebaseUID: claims.UID,
		Email:       claims.Email,
		Name:        name,
		Role:        entity.RoleConsumer,
		Avatar:      claims.Picture,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	return user, nil
}

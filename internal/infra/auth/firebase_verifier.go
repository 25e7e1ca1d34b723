// Package auth implements identity-token verification against Firebase.
package auth

import (
	"context"

	"farmkitchen/config"
	"farmkitchen/internal/domain/service"
	"farmkitchen/internal/errors"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

type firebaseVerifier struct {
	client *firebaseauth.Client
}

// Params holds dependencies for the Firebase verifier, injected by Fx.
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// NewFirebaseVerifier creates an identity verifier backed by Firebase Auth.
func NewFirebaseVerifier(params Params) (service.IdentityVerifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is missing")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// VerifyIDToken validates the token signature and expiry, then extracts the
// profile claims the marketplace cares about.
func (v *firebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (*service.IdentityClaims, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	claims := &service.IdentityClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		claims.Name = name
	}
	if picture, ok := token.Claims["picture"].(string); ok {
		claims.Picture = picture
	}

	return claims, nil
}

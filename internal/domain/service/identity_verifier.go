// Package service defines domain-level interfaces for external collaborators.
// Concrete implementations live under internal/infra.
package service

import "context"

// IdentityClaims are the claims extracted from a verified identity token.
type IdentityClaims struct {
	UID     string // Stable subject identifier assigned by the provider.
	Email   string // May be empty if the provider issued no email claim.
	Name    string
	Picture string
}

// IdentityVerifier validates an opaque bearer credential against the external
// identity provider. Verification is a single attempt; failures surface
// immediately.
type IdentityVerifier interface {
	// VerifyIDToken validates the token and returns its claims.
	VerifyIDToken(ctx context.Context, idToken string) (*IdentityClaims, error)
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// User is the core account entity. Accounts are provisioned automatically on
// the first successful identity verification and are never deleted.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the account.
	FirebaseUID string    // The stable subject identifier from the identity provider.
	Email       string    // The account's email, taken from the verified token claims.
	Name        string    // Display name; defaults to the email local-part.
	Role        Role      // Closed role enumeration (admin, farmer, consumer).
	Address     string    // Optional free-form postal address.
	Avatar      string    // Optional profile picture URL from the identity provider.
	Location    orb.Point // Geographic point (lon, lat); origin until the user sets one.
	CreatedAt   time.Time // Timestamp of when this account was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this account.
}

// HasLocation reports whether the account holds a real geo-point.
// A point at the origin is the "unset" default.
func (u *User) HasLocation() bool {
	return u.Location.Lon() != 0 || u.Location.Lat() != 0
}

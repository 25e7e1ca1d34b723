package service

import (
	"context"
	"time"
)

// Cache is a small JSON cache used for short-lived aggregation results.
type Cache interface {
	// GetJSON unmarshals the cached value for key into dest, reporting
	// whether the key was present.
	GetJSON(ctx context.Context, key string, dest any) (bool, error)

	// SetJSON marshals value and stores it under key for the given TTL.
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

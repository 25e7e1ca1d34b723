// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown.
const DefaultTimeout = 30 * time.Second

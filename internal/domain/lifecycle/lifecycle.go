// Package lifecycle holds shared constants for graceful startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of long-lived components.
const DefaultTimeout = 30 * time.Second

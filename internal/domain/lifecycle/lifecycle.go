// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and startup pings.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared timeouts for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds fx lifecycle hooks (server start/stop, DB pings).
const DefaultTimeout = 10 * time.Second

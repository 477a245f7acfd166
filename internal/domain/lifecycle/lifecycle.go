// Package lifecycle holds shared values for process start and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds start hooks (database ping, migrations) and graceful shutdown.
const DefaultTimeout = 10 * time.Second

// Package lifecycle holds shared timing constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second

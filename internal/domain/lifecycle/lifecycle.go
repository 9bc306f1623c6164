// Package lifecycle holds the shared bounds for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop step of a component.
const DefaultTimeout = 10 * time.Second

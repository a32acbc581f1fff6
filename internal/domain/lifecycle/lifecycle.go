// Package lifecycle holds shared timeouts for application start and stop
// hooks.
package lifecycle

import "time"

// DefaultTimeout bounds each lifecycle hook; hooks that cannot finish in
// this window fail the start or stop sequence.
const DefaultTimeout = 10 * time.Second

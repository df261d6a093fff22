// Package clients provides the instrumented HTTP client used to reach the
// commerce store API.
package clients

import "errors"

// Transport-level failures. The acl package translates them into domain errors.
var (
	// ErrCircuitOpen is returned while the circuit breaker blocks requests.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last error once every attempt failed.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

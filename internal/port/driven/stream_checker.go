package driven

import (
	"context"

	"github.com/alorle/iptv-curator/internal/probe"
)

// StreamChecker defines the interface for a single liveness check of a stream address.
// Implementations bound each check with their own timeout, never retry, and
// report every failure as an unavailable result rather than an error.
// Check must be safe for concurrent use.
type StreamChecker interface {
	Check(ctx context.Context, address string) probe.Result
}

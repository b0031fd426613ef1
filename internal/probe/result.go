package probe

import (
	"strings"
	"time"
)

// Result represents a single liveness check of a stream address.
// It is an immutable value object.
type Result struct {
	address    string
	timestamp  time.Time
	available  bool
	latency    time.Duration
	statusCode int
	errMessage string
}

// NewResult creates a new probe result with validation.
func NewResult(
	address string,
	timestamp time.Time,
	available bool,
	latency time.Duration,
	statusCode int,
	errorMessage string,
) (Result, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Result{}, ErrEmptyAddress
	}
	if timestamp.IsZero() {
		return Result{}, ErrInvalidTimestamp
	}
	return Result{
		address:    address,
		timestamp:  timestamp,
		available:  available,
		latency:    latency,
		statusCode: statusCode,
		errMessage: errorMessage,
	}, nil
}

// Failed builds an unavailable result for address without validation.
// Used when a probe could not be attempted or the checker misbehaved.
func Failed(address string, timestamp time.Time, reason string) Result {
	return Result{
		address:    address,
		timestamp:  timestamp,
		errMessage: reason,
	}
}

func (r Result) Address() string        { return r.address }
func (r Result) Timestamp() time.Time   { return r.timestamp }
func (r Result) Available() bool        { return r.available }
func (r Result) Latency() time.Duration { return r.latency }
func (r Result) StatusCode() int        { return r.statusCode }
func (r Result) ErrorMessage() string   { return r.errMessage }

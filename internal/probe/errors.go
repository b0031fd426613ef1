package probe

import "errors"

var (
	ErrEmptyAddress     = errors.New("probe address cannot be empty")
	ErrInvalidTimestamp = errors.New("probe timestamp must not be zero")
	ErrNoProbeData      = errors.New("no probe data available")
)

package driven

import "context"

// PlaylistSource defines the interface for retrieving upstream playlist documents.
// This is a driven port implemented by concrete adapters (e.g., HTTP client, file reader).
type PlaylistSource interface {
	// Fetch retrieves the raw document at location.
	// Any transport failure or non-success status is returned as an error.
	Fetch(ctx context.Context, location string) ([]byte, error)
}

package driven

// PlaylistWriter defines the interface for persisting the generated playlist.
type PlaylistWriter interface {
	// Write stores data at path in a single step. A failed write must not
	// leave a partially written playlist behind.
	Write(path string, data []byte) error
}

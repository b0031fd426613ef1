package driven

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alorle/iptv-curator/internal/port/driven"
)

// PlaylistFileWriter implements the PlaylistWriter port on the local
// filesystem. Data goes to a temporary file in the target directory which is
// then renamed over the destination, so readers see either the old or the
// new playlist.
type PlaylistFileWriter struct {
	perm os.FileMode
}

// NewPlaylistFileWriter creates a writer producing files with mode 0644.
func NewPlaylistFileWriter() *PlaylistFileWriter {
	return &PlaylistFileWriter{perm: 0o644}
}

// Write atomically replaces path with data.
func (w *PlaylistFileWriter) Write(path string, data []byte) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write playlist: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync playlist: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close playlist: %w", err)
	}
	if err = os.Chmod(tmpName, w.perm); err != nil {
		return fmt.Errorf("failed to set playlist permissions: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

// Ensure PlaylistFileWriter implements the driven.PlaylistWriter interface
var _ driven.PlaylistWriter = (*PlaylistFileWriter)(nil)

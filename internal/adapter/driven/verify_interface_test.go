package driven

import (
	port "github.com/alorle/iptv-curator/internal/port/driven"
)

// Compile-time check that PlaylistHTTPSource implements PlaylistSource interface
var _ port.PlaylistSource = (*PlaylistHTTPSource)(nil)

// Compile-time check that StreamHTTPChecker implements StreamChecker interface
var _ port.StreamChecker = (*StreamHTTPChecker)(nil)

// Compile-time check that PlaylistFileWriter implements PlaylistWriter interface
var _ port.PlaylistWriter = (*PlaylistFileWriter)(nil)

package driven

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alorle/iptv-curator/internal/port/driven"
)

const (
	// HTTP client timeout for fetching playlist documents
	defaultFetchTimeout = 30 * time.Second

	// Upper bound on a single playlist document
	maxPlaylistSize = 32 << 20
)

// PlaylistHTTPSource implements the PlaylistSource port by fetching playlist
// documents over HTTP. It never retries.
type PlaylistHTTPSource struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewPlaylistHTTPSource creates a new HTTP playlist source adapter.
// A non-positive timeout falls back to 30 seconds.
func NewPlaylistHTTPSource(timeout time.Duration, userAgent string, logger *slog.Logger) *PlaylistHTTPSource {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &PlaylistHTTPSource{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch retrieves the document at location. Only status 200 counts as success.
func (s *PlaylistHTTPSource) Fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", location, err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", location, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			s.logger.Warn("failed to close response body", "url", location, "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, location)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxPlaylistSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", location, err)
	}

	s.logger.Debug("fetched playlist document", "url", location, "bytes", len(content))

	return content, nil
}

// Ensure PlaylistHTTPSource implements the driven.PlaylistSource interface
var _ driven.PlaylistSource = (*PlaylistHTTPSource)(nil)

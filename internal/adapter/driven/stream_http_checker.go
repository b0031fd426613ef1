package driven

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alorle/iptv-curator/internal/port/driven"
	"github.com/alorle/iptv-curator/internal/probe"
)

const defaultProbeTimeout = 2 * time.Second

// StreamHTTPChecker implements the StreamChecker port with a single bounded
// GET per address. Only the response status is inspected; the body is
// closed unread.
type StreamHTTPChecker struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     *slog.Logger
	now        func() time.Time
}

// NewStreamHTTPChecker creates a checker whose probes give up after timeout.
// A non-positive timeout falls back to 2 seconds.
func NewStreamHTTPChecker(timeout time.Duration, userAgent string, logger *slog.Logger) *StreamHTTPChecker {
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &StreamHTTPChecker{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logger,
		now:       time.Now,
	}
}

// Check probes address once. Transport errors, timeouts and any status other
// than 200 yield an unavailable result.
func (c *StreamHTTPChecker) Check(ctx context.Context, address string) probe.Result {
	u, err := url.Parse(address)
	if err != nil {
		return c.failed(address, 0, 0, fmt.Errorf("invalid address: %w", err))
	}
	if scheme := strings.ToLower(u.Scheme); scheme != "http" && scheme != "https" {
		return c.failed(address, 0, 0, fmt.Errorf("unsupported scheme %q", u.Scheme))
	}

	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, address, nil)
	if err != nil {
		return c.failed(address, 0, 0, fmt.Errorf("failed to create probe request: %w", err))
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(start)
	if err != nil {
		if isTimeout(err) {
			return c.failed(address, latency, 0, fmt.Errorf("probe timed out after %s", c.timeout))
		}
		return c.failed(address, latency, 0, fmt.Errorf("probe request failed: %w", err))
	}
	// the body of a live stream never ends; closing without reading aborts the transfer
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.failed(address, latency, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	result, err := probe.NewResult(address, c.now(), true, latency, resp.StatusCode, "")
	if err != nil {
		return c.failed(address, latency, resp.StatusCode, err)
	}
	return result
}

func (c *StreamHTTPChecker) failed(address string, latency time.Duration, status int, cause error) probe.Result {
	c.logger.Debug("stream probe failed", "address", address, "status", status, "error", cause)

	result, err := probe.NewResult(address, c.now(), false, latency, status, cause.Error())
	if err != nil {
		return probe.Failed(address, c.now(), cause.Error())
	}
	return result
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Ensure StreamHTTPChecker implements the driven.StreamChecker interface
var _ driven.StreamChecker = (*StreamHTTPChecker)(nil)

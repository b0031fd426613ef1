package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/port/driven"
	"github.com/alorle/iptv-curator/internal/probe"
	"github.com/alorle/iptv-curator/metrics"
)

// ProbeService checks stream liveness for a batch of candidates with a
// bounded number of concurrent checks.
type ProbeService struct {
	checker  driven.StreamChecker
	workers  int
	limiter  *rate.Limiter
	recorder *metrics.Recorder
	logger   *slog.Logger
}

// NewProbeService creates a new ProbeService.
// workers below one are treated as one. A rateLimit of zero or less leaves
// probe starts unpaced; otherwise at most rateLimit probes start per second.
func NewProbeService(
	checker driven.StreamChecker,
	workers int,
	rateLimit float64,
	recorder *metrics.Recorder,
	logger *slog.Logger,
) *ProbeService {
	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), 1)
	}
	return &ProbeService{
		checker:  checker,
		workers:  max(workers, 1),
		limiter:  limiter,
		recorder: recorder,
		logger:   logger,
	}
}

// ProbeAll checks every channel and returns one result per channel, at the
// same index. It waits for all checks to finish; a failing or slow check
// never cancels the others.
func (s *ProbeService) ProbeAll(ctx context.Context, channels []channel.Channel) []probe.Result {
	results := make([]probe.Result, len(channels))
	if len(channels) == 0 {
		return results
	}

	workers := min(s.workers, len(channels))
	s.logger.Info("starting probe cycle", "candidates", len(channels), "workers", workers)

	jobs := make(chan int)
	var completed atomic.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Go(func() {
			for i := range jobs {
				results[i] = s.probeOne(ctx, channels[i])
				s.report(channels[i], results[i], completed.Add(1), len(channels))
			}
		})
	}

	for i := range channels {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if summary, err := probe.NewSummary(results); err == nil {
		s.logger.Info("probe cycle completed",
			"available", summary.Available(),
			"failed", summary.Failed(),
			"avg_latency", summary.AvgLatency(),
			"max_latency", summary.MaxLatency(),
			"failure_rate", fmt.Sprintf("%.2f", summary.FailureRate()),
		)
	}

	return results
}

// probeOne runs a single check. A panicking checker counts as a failed probe.
func (s *ProbeService) probeOne(ctx context.Context, ch channel.Channel) (result probe.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = probe.Failed(ch.Address(), time.Now(), fmt.Sprintf("probe panicked: %v", r))
		}
	}()

	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			return probe.Failed(ch.Address(), time.Now(), fmt.Sprintf("rate limiter: %v", err))
		}
	}

	return s.checker.Check(ctx, ch.Address())
}

func (s *ProbeService) report(ch channel.Channel, r probe.Result, done int64, total int) {
	s.recorder.RecordProbe(r.Available(), r.Latency())

	if r.Available() {
		s.logger.Info("stream accepted",
			"name", ch.Name(),
			"address", ch.Address(),
			"latency", r.Latency(),
			"progress", fmt.Sprintf("%d/%d", done, total),
		)
		return
	}

	s.logger.Info("stream rejected",
		"name", ch.Name(),
		"address", ch.Address(),
		"reason", r.ErrorMessage(),
		"progress", fmt.Sprintf("%d/%d", done, total),
	)
}

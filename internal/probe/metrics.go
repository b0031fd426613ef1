package probe

import "time"

// Summary holds aggregate figures for the probes of one run.
type Summary struct {
	total       int
	available   int
	avgLatency  time.Duration
	maxLatency  time.Duration
	failureRate float64
}

// NewSummary aggregates a slice of probe results.
// Returns ErrNoProbeData if results is empty.
func NewSummary(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoProbeData
	}

	var available int
	var totalLatency, maxLatency time.Duration
	for _, r := range results {
		if !r.Available() {
			continue
		}
		available++
		totalLatency += r.Latency()
		if r.Latency() > maxLatency {
			maxLatency = r.Latency()
		}
	}

	var avg time.Duration
	if available > 0 {
		avg = totalLatency / time.Duration(available)
	}

	return Summary{
		total:       len(results),
		available:   available,
		avgLatency:  avg,
		maxLatency:  maxLatency,
		failureRate: 1.0 - float64(available)/float64(len(results)),
	}, nil
}

func (s Summary) Total() int                { return s.total }
func (s Summary) Available() int            { return s.available }
func (s Summary) Failed() int               { return s.total - s.available }
func (s Summary) AvgLatency() time.Duration { return s.avgLatency }
func (s Summary) MaxLatency() time.Duration { return s.maxLatency }
func (s Summary) FailureRate() float64      { return s.failureRate }

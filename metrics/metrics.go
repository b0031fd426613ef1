package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Candidate rejection reasons used as the "reason" label.
const (
	ReasonExcluded  = "excluded"
	ReasonNoMatch   = "no_match"
	ReasonDuplicate = "duplicate"
	ReasonInvalid   = "invalid"
)

// Recorder collects the metrics of a single curation run on its own
// registry. A nil *Recorder discards everything.
type Recorder struct {
	registry *prometheus.Registry

	sourcesFetched   prometheus.Counter
	sourcesFailed    prometheus.Counter
	entriesParsed    prometheus.Counter
	candidatesKept   prometheus.Counter
	candidatesDenied *prometheus.CounterVec
	probes           *prometheus.CounterVec
	probeLatency     prometheus.Histogram
	acceptedChannels *prometheus.GaugeVec
	playlistBytes    prometheus.Gauge
	runDuration      prometheus.Gauge
	lastSuccess      prometheus.Gauge
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		sourcesFetched: factory.NewCounter(prometheus.CounterOpts{
			Name: "iptv_curator_sources_fetched_total",
			Help: "Number of upstream playlist sources fetched successfully",
		}),
		sourcesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "iptv_curator_sources_failed_total",
			Help: "Number of upstream playlist sources skipped after a fetch failure",
		}),
		entriesParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "iptv_curator_entries_parsed_total",
			Help: "Number of name/address entries parsed from all sources",
		}),
		candidatesKept: factory.NewCounter(prometheus.CounterOpts{
			Name: "iptv_curator_candidates_kept_total",
			Help: "Number of candidates that passed classification and deduplication",
		}),
		candidatesDenied: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iptv_curator_candidates_rejected_total",
			Help: "Number of candidates dropped before probing",
		}, []string{"reason"}),
		probes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "iptv_curator_probes_total",
			Help: "Number of stream probes by outcome",
		}, []string{"outcome"}),
		probeLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "iptv_curator_probe_latency_seconds",
			Help:    "Time to first response byte of successful stream probes",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		}),
		acceptedChannels: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "iptv_curator_accepted_channels",
			Help: "Number of channels written to the playlist",
		}, []string{"kind"}),
		playlistBytes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_curator_playlist_bytes",
			Help: "Size of the generated playlist",
		}),
		runDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_curator_run_duration_seconds",
			Help: "Wall-clock duration of the last run",
		}),
		lastSuccess: factory.NewGauge(prometheus.GaugeOpts{
			Name: "iptv_curator_last_success_timestamp_seconds",
			Help: "Unix time of the last run that wrote a playlist",
		}),
	}
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// RecordSourceFetched counts a successfully fetched source
func (r *Recorder) RecordSourceFetched() {
	if r == nil {
		return
	}
	r.sourcesFetched.Inc()
}

// RecordSourceFailed counts a skipped source
func (r *Recorder) RecordSourceFailed() {
	if r == nil {
		return
	}
	r.sourcesFailed.Inc()
}

// RecordEntriesParsed adds n parsed entries
func (r *Recorder) RecordEntriesParsed(n int) {
	if r == nil {
		return
	}
	r.entriesParsed.Add(float64(n))
}

// RecordCandidateKept counts a candidate that will be probed
func (r *Recorder) RecordCandidateKept() {
	if r == nil {
		return
	}
	r.candidatesKept.Inc()
}

// RecordCandidateRejected counts a dropped candidate under reason
func (r *Recorder) RecordCandidateRejected(reason string) {
	if r == nil {
		return
	}
	r.candidatesDenied.WithLabelValues(reason).Inc()
}

// RecordProbe counts a probe outcome and observes latency for successes
func (r *Recorder) RecordProbe(available bool, latency time.Duration) {
	if r == nil {
		return
	}
	if !available {
		r.probes.WithLabelValues("failed").Inc()
		return
	}
	r.probes.WithLabelValues("ok").Inc()
	r.probeLatency.Observe(latency.Seconds())
}

// SetAccepted sets the number of static and network channels in the playlist
func (r *Recorder) SetAccepted(static, network int) {
	if r == nil {
		return
	}
	r.acceptedChannels.WithLabelValues("static").Set(float64(static))
	r.acceptedChannels.WithLabelValues("network").Set(float64(network))
}

// RecordRun records the run duration and, on success, the playlist size and completion time
func (r *Recorder) RecordRun(duration time.Duration, playlistBytes int, succeeded bool, at time.Time) {
	if r == nil {
		return
	}
	r.runDuration.Set(duration.Seconds())
	if succeeded {
		r.playlistBytes.Set(float64(playlistBytes))
		r.lastSuccess.Set(float64(at.Unix()))
	}
}

// WriteTextfile writes all metrics to path in the text exposition format,
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}

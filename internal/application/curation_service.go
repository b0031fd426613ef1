package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/classifier"
	"github.com/alorle/iptv-curator/internal/dedup"
	"github.com/alorle/iptv-curator/internal/m3u"
	"github.com/alorle/iptv-curator/internal/port/driven"
	"github.com/alorle/iptv-curator/internal/rank"
	"github.com/alorle/iptv-curator/metrics"
)

// ErrPlaylistWrite is returned when the generated playlist cannot be persisted.
var ErrPlaylistWrite = errors.New("failed to write playlist")

// Source identifies one upstream playlist document.
type Source struct {
	Name string
	URL  string
}

// Summary reports what a curation run did.
type Summary struct {
	SourcesFetched int
	SourcesFailed  int
	EntriesParsed  int
	Invalid        int
	Excluded       int
	NoMatch        int
	Duplicates     int
	Candidates     int
	Static         int
	Network        int
	Bytes          int
	GeneratedAt    time.Time
	Duration       time.Duration
}

// Accepted returns the number of channels written to the playlist.
func (s Summary) Accepted() int {
	return s.Static + s.Network
}

// CurationService orchestrates one curation run:
// fetch every source, keep matching unique candidates, probe them,
// rank the survivors together with the static channels and write the playlist.
type CurationService struct {
	source     driven.PlaylistSource
	writer     driven.PlaylistWriter
	classifier *classifier.Classifier
	ranker     *rank.Ranker
	prober     *ProbeService
	playlist   *PlaylistService
	recorder   *metrics.Recorder
	logger     *slog.Logger
	sources    []Source
	statics    []channel.Channel
	outputPath string
	now        func() time.Time
}

// NewCurationService creates a new curation service with the required dependencies.
func NewCurationService(
	source driven.PlaylistSource,
	writer driven.PlaylistWriter,
	classifier *classifier.Classifier,
	ranker *rank.Ranker,
	prober *ProbeService,
	playlist *PlaylistService,
	recorder *metrics.Recorder,
	logger *slog.Logger,
	sources []Source,
	statics []channel.Channel,
	outputPath string,
) *CurationService {
	return &CurationService{
		source:     source,
		writer:     writer,
		classifier: classifier,
		ranker:     ranker,
		prober:     prober,
		playlist:   playlist,
		recorder:   recorder,
		logger:     logger,
		sources:    sources,
		statics:    statics,
		outputPath: outputPath,
		now:        time.Now,
	}
}

// Run performs the full curation workflow:
// 1. Fetch and parse every source in order
// 2. Classify and deduplicate candidates across sources
// 3. Probe the network candidates concurrently
// 4. Rank static channels and live candidates
// 5. Encode the playlist in memory and write it in one step
//
// Source, parse and probe failures are logged and never abort the run.
// Only a failure to produce or persist the playlist returns an error.
func (s *CurationService) Run(ctx context.Context) (Summary, error) {
	start := s.now()

	candidates, summary := s.Collect(ctx)

	results := s.prober.ProbeAll(ctx, candidates)

	accepted := make([]channel.Channel, 0, len(s.statics)+len(candidates))
	for _, st := range s.statics {
		accepted = append(accepted, st)
		s.logger.Info("static channel added", "name", st.Name(), "address", st.Address())
	}
	for i, ch := range candidates {
		if results[i].Available() {
			accepted = append(accepted, ch)
			summary.Network++
		}
	}
	summary.Static = len(s.statics)

	s.ranker.Sort(accepted)

	generatedAt := s.now()
	data, err := s.playlist.GenerateM3U(accepted, generatedAt)
	if err != nil {
		s.finish(&summary, start, 0, false)
		return summary, fmt.Errorf("%w: %w", ErrPlaylistWrite, err)
	}

	if err := s.writer.Write(s.outputPath, data); err != nil {
		s.finish(&summary, start, 0, false)
		return summary, fmt.Errorf("%w to %s: %w", ErrPlaylistWrite, s.outputPath, err)
	}

	summary.GeneratedAt = generatedAt
	s.finish(&summary, start, len(data), true)

	s.logger.Info("playlist written",
		"path", s.outputPath,
		"channels", summary.Accepted(),
		"static", summary.Static,
		"network", summary.Network,
		"size", humanize.Bytes(uint64(len(data))),
		"duration", summary.Duration,
	)

	return summary, nil
}

// Collect fetches every source and returns the unique network candidates that
// passed classification, in source order then in-source order. Addresses of
// static channels are reserved first, so candidates repeating them are dropped.
func (s *CurationService) Collect(ctx context.Context) ([]channel.Channel, Summary) {
	var summary Summary

	seen := dedup.New()
	for _, st := range s.statics {
		seen.Reserve(st.Address())
	}

	for _, src := range s.sources {
		data, err := s.source.Fetch(ctx, src.URL)
		if err != nil {
			summary.SourcesFailed++
			s.recorder.RecordSourceFailed()
			s.logger.Warn("source skipped", "source", src.Name, "url", src.URL, "error", err)
			continue
		}

		summary.SourcesFetched++
		s.recorder.RecordSourceFetched()
		s.logger.Info("processing source", "source", src.Name, "url", src.URL, "size", humanize.Bytes(uint64(len(data))))

		s.collectSource(src, data, seen, &summary)
	}

	candidates := seen.Channels()
	summary.Candidates = len(candidates)

	s.logger.Info("candidates collected",
		"candidates", summary.Candidates,
		"entries", summary.EntriesParsed,
		"excluded", summary.Excluded,
		"no_match", summary.NoMatch,
		"duplicates", summary.Duplicates,
	)

	return candidates, summary
}

func (s *CurationService) collectSource(src Source, data []byte, seen *dedup.Deduplicator, summary *Summary) {
	parser := m3u.NewParser(bytes.NewReader(data))

	var parsed, kept int
	for entry := range parser.All() {
		parsed++

		ch, err := channel.NewChannel(entry.Name, entry.Address, src.Name)
		if err != nil {
			summary.Invalid++
			s.recorder.RecordCandidateRejected(metrics.ReasonInvalid)
			s.logger.Debug("entry dropped", "source", src.Name, "name", entry.Name, "error", err)
			continue
		}

		decision := s.classifier.Classify(&ch)
		switch decision.Outcome {
		case classifier.Excluded:
			summary.Excluded++
			s.recorder.RecordCandidateRejected(metrics.ReasonExcluded)
			s.logger.Debug("entry excluded", "source", src.Name, "name", ch.Name(), "keyword", decision.Keyword)
			continue
		case classifier.Rejected:
			summary.NoMatch++
			s.recorder.RecordCandidateRejected(metrics.ReasonNoMatch)
			continue
		}

		if !seen.Add(ch) {
			summary.Duplicates++
			s.recorder.RecordCandidateRejected(metrics.ReasonDuplicate)
			s.logger.Debug("duplicate address", "source", src.Name, "name", ch.Name(), "address", ch.Address())
			continue
		}

		kept++
		s.recorder.RecordCandidateKept()
	}

	if err := parser.Err(); err != nil {
		s.logger.Warn("source truncated", "source", src.Name, "error", err)
	}

	summary.EntriesParsed += parsed
	s.recorder.RecordEntriesParsed(parsed)
	s.logger.Info("source processed", "source", src.Name, "entries", parsed, "candidates", kept)
}

func (s *CurationService) finish(summary *Summary, start time.Time, size int, succeeded bool) {
	end := s.now()
	summary.Duration = end.Sub(start)
	summary.Bytes = size
	if succeeded {
		s.recorder.SetAccepted(summary.Static, summary.Network)
	}
	s.recorder.RecordRun(summary.Duration, size, succeeded, end)
}

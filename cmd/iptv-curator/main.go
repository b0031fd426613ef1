package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/alorle/iptv-curator/config"
	"github.com/alorle/iptv-curator/internal/adapter/driven"
	"github.com/alorle/iptv-curator/internal/application"
	"github.com/alorle/iptv-curator/internal/channel"
	"github.com/alorle/iptv-curator/internal/classifier"
	"github.com/alorle/iptv-curator/internal/rank"
	"github.com/alorle/iptv-curator/internal/textnorm"
	"github.com/alorle/iptv-curator/logging"
	"github.com/alorle/iptv-curator/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Create structured logger
	logger := logging.New(os.Stdout, logging.ParseLevel(cfg.LogLevel), cfg.LogFormat).
		With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	logger.Info("starting iptv-curator", "config_file", config.Path(), "config", cfg)

	if _, err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("curation failed", "error", err)
		os.Exit(1)
	}
}

// run wires the adapters and services from cfg and performs one curation run.
// The metrics textfile, when configured, is written even if the run fails.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (application.Summary, error) {
	statics, err := staticChannels(cfg.StaticChannels)
	if err != nil {
		return application.Summary{}, err
	}

	recorder := metrics.New()

	// Create driven adapters
	source := driven.NewPlaylistHTTPSource(cfg.Fetch.Timeout, cfg.Fetch.UserAgent, logger)
	checker := driven.NewStreamHTTPChecker(cfg.Probe.Timeout, cfg.Probe.UserAgent, logger)
	writer := driven.NewPlaylistFileWriter()

	// Create domain services
	normalizer := textnorm.New(cfg.Substitutions)
	cls := classifier.New(cfg.Keywords.Include, cfg.Keywords.Exclude, normalizer)
	ranker := rank.New(cfg.PriorityKeywords(), normalizer)

	// Create application services
	prober := application.NewProbeService(checker, cfg.Probe.Workers, cfg.Probe.RateLimit, recorder, logger)
	playlist := application.NewPlaylistService(cfg.Output.EPGURL, cfg.Output.GroupTitle, cfg.Output.LogoTemplate)

	sources := make([]application.Source, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		sources = append(sources, application.Source{Name: src.Name, URL: src.URL})
	}

	curation := application.NewCurationService(
		source, writer, cls, ranker, prober, playlist, recorder, logger,
		sources, statics, cfg.Output.Path,
	)

	summary, runErr := curation.Run(ctx)

	if cfg.Metrics.Textfile != "" {
		if err := recorder.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	return summary, runErr
}

func staticChannels(entries []config.StaticChannel) ([]channel.Channel, error) {
	statics := make([]channel.Channel, 0, len(entries))
	for i, sc := range entries {
		ch, err := channel.NewStaticChannel(sc.Name, sc.URL)
		if err != nil {
			return nil, fmt.Errorf("static channel %d (%s): %w", i, sc.Name, err)
		}
		statics = append(statics, ch)
	}
	return statics, nil
}

package server

import (
	"log/slog"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/config"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers/fixture"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers/nhl"
)

// sourceSet holds the upstream sources the game service reads from.
type sourceSet struct {
	legacy   providers.GameSource
	edge     providers.GameSource
	schedule providers.ScheduleSource
	local    bool
}

// sourceFactory assembles the sources with shared wrappers (logging + metrics).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) sourceSet {
	fetcher := nhl.NewFetcher(nil, f.metrics)
	legacy := nhl.NewLegacyClient(cfg.NHL.LegacyBaseURL, fetcher)
	set := sourceSet{
		legacy:   providers.WithLogging(legacy, sourceName("nhl", "legacy"), f.logger),
		edge:     providers.WithLogging(nhl.NewEdgeClient(cfg.NHL.EdgeBaseURL, fetcher), sourceName("nhl", "edge"), f.logger),
		schedule: providers.WithScheduleLogging(legacy, sourceName("nhl", "schedule"), f.logger),
	}

	if cfg.NHL.SourceDir != "" {
		local := fixture.New(cfg.NHL.SourceDir)
		if f.logger != nil {
			f.logger.Info("serving games from local json", slog.String("dir", cfg.NHL.SourceDir))
		}
		set.legacy = providers.WithLogging(local, sourceName("local", "legacy"), f.logger)
		set.edge = providers.WithLogging(local, sourceName("local", "edge"), f.logger)
		set.local = true
	}
	return set
}

// sourceName keeps naming consistent across logs.
func sourceName(origin, variant string) string {
	return origin + "." + variant
}

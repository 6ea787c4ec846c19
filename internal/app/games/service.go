package games

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	domaingames "github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/gamedetails"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/imageenc"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/logging"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/shotchart"
)

// Dumper persists raw upstream documents for debugging.
type Dumper interface {
	WriteGame(raw providers.RawGame) error
}

// Options wires a Service. Any field may be left nil; a missing source
// answers with providers.ErrProviderUnavailable.
type Options struct {
	Legacy           providers.GameSource
	Edge             providers.GameSource
	Schedule         providers.ScheduleSource
	Dumper           Dumper
	Recorder         *metrics.Recorder
	Logger           *slog.Logger
	ShowShotAttempts bool
}

// Service turns game ids into parsed records, rendered charts and schedules.
type Service struct {
	sources  map[domaingames.Source]providers.GameSource
	schedule providers.ScheduleSource
	dumper   Dumper
	recorder *metrics.Recorder
	logger   *slog.Logger
	render   shotchart.RenderOptions
	now      func() time.Time
}

// NewService constructs a Service from opts.
func NewService(opts Options) *Service {
	sources := make(map[domaingames.Source]providers.GameSource, 2)
	if opts.Legacy != nil {
		sources[domaingames.SourceLegacy] = opts.Legacy
	}
	if opts.Edge != nil {
		sources[domaingames.SourceEdge] = opts.Edge
	}
	return &Service{
		sources:  sources,
		schedule: opts.Schedule,
		dumper:   opts.Dumper,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		render:   shotchart.RenderOptions{ShowShotAttempts: opts.ShowShotAttempts},
		now:      time.Now,
	}
}

// Chart is a rendered shot chart. Image is empty when rendering or encoding failed.
type Chart struct {
	Record domaingames.GameRecord
	Image  string
}

// HasImage reports whether the chart carries an encoded image.
func (c Chart) HasImage() bool {
	return c.Image != ""
}

// FetchRaw fetches the raw payload of a game and dumps it when a Dumper is configured.
// Dump failures are logged and never returned.
func (s *Service) FetchRaw(ctx context.Context, source domaingames.Source, gameID string) (providers.RawGame, error) {
	src, ok := s.sources[source]
	if !ok {
		return nil, fmt.Errorf("%s source: %w", source, providers.ErrProviderUnavailable)
	}
	raw, err := src.FetchGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	s.dump(ctx, raw)
	return raw, nil
}

// GameDetails fetches and parses a game into a GameRecord.
func (s *Service) GameDetails(ctx context.Context, source domaingames.Source, gameID, tz string) (domaingames.GameRecord, error) {
	raw, err := s.FetchRaw(ctx, source, gameID)
	if err != nil {
		return domaingames.GameRecord{}, err
	}
	return gamedetails.Parse(raw, tz)
}

// ShotChart builds the chart of a game. Failing to obtain game details is an
// error; failing to render or encode only leaves the image empty.
func (s *Service) ShotChart(ctx context.Context, source domaingames.Source, gameID, tz string) (Chart, error) {
	logger := logging.FromContext(ctx, s.logger)

	rec, err := s.GameDetails(ctx, source, gameID, tz)
	if err != nil {
		logging.Error(logger, "Error parsing game details", err,
			slog.String(logging.FieldGameID, gameID),
			slog.String(logging.FieldSource, string(source)),
		)
		return Chart{}, fmt.Errorf("game details for %s: %w", gameID, err)
	}

	start := s.now()
	fig, err := shotchart.Render(rec, s.render)
	if err != nil {
		s.recorder.RecordChartRender(string(source), s.now().Sub(start), err)
		logging.Warn(logger, "shot chart render failed",
			slog.String(logging.FieldGameID, gameID),
			slog.String(logging.FieldError, err.Error()),
		)
		return Chart{Record: rec}, nil
	}

	img, ok := imageenc.ToBase64(fig)
	if !ok {
		err = fmt.Errorf("encode shot chart for %s", gameID)
		logging.Warn(logger, "shot chart encode failed", slog.String(logging.FieldGameID, gameID))
	}
	s.recorder.RecordChartRender(string(source), s.now().Sub(start), err)
	return Chart{Record: rec, Image: img}, nil
}

// PlayTypes lists the distinct play types of a game.
func (s *Service) PlayTypes(ctx context.Context, source domaingames.Source, gameID string) ([]string, error) {
	raw, err := s.FetchRaw(ctx, source, gameID)
	if err != nil {
		return nil, err
	}
	events, err := gamedetails.Events(raw)
	if err != nil {
		return nil, err
	}
	return shotchart.PlayTypeKeys(events), nil
}

// Schedule lists a team's games for a season with localized start times.
func (s *Service) Schedule(ctx context.Context, teamID, seasonID, tz string) ([]domaingames.ScheduledGame, error) {
	if s.schedule == nil {
		return nil, fmt.Errorf("schedule source: %w", providers.ErrProviderUnavailable)
	}
	raw, err := s.schedule.FetchSchedule(ctx, teamID, seasonID)
	if err != nil {
		return nil, err
	}
	return gamedetails.ParseSchedule(raw, tz), nil
}

func (s *Service) dump(ctx context.Context, raw providers.RawGame) {
	if s.dumper == nil {
		return
	}
	if err := s.dumper.WriteGame(raw); err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "raw dump failed",
			slog.String(logging.FieldGameID, raw.GameID()),
			slog.String(logging.FieldError, err.Error()),
		)
	}
}

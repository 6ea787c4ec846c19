package providers

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/logging"
)

// loggingSource wraps a GameSource and logs every fetch with its duration.
type loggingSource struct {
	inner  GameSource
	name   string
	logger *slog.Logger
	now    func() time.Time
}

// WithLogging wraps a GameSource so fetch outcomes are logged under name.
func WithLogging(inner GameSource, name string, logger *slog.Logger) GameSource {
	return &loggingSource{
		inner:  inner,
		name:   name,
		logger: logger,
		now:    time.Now,
	}
}

func (s *loggingSource) FetchGame(ctx context.Context, gameID string) (RawGame, error) {
	if s == nil || s.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := s.now()
	raw, err := s.inner.FetchGame(ctx, gameID)
	elapsed := s.now().Sub(start)
	if err != nil {
		logWithProvider(ctx, s.logger, slog.LevelWarn, s.name, "game fetch failed",
			slog.String(logging.FieldGameID, gameID),
			slog.Float64(logging.FieldDurationMS, float64(elapsed.Microseconds())/1000),
			slog.String(logging.FieldError, err.Error()),
		)
		return nil, err
	}

	logWithProvider(ctx, s.logger, slog.LevelDebug, s.name, "game fetched",
		slog.String(logging.FieldGameID, gameID),
		slog.Float64(logging.FieldDurationMS, float64(elapsed.Microseconds())/1000),
		slog.Int(logging.FieldCount, len(raw.Documents())),
	)
	return raw, nil
}

// loggingSchedule wraps a ScheduleSource the same way loggingSource wraps games.
type loggingSchedule struct {
	inner  ScheduleSource
	name   string
	logger *slog.Logger
	now    func() time.Time
}

// WithScheduleLogging wraps a ScheduleSource so fetch outcomes are logged under name.
func WithScheduleLogging(inner ScheduleSource, name string, logger *slog.Logger) ScheduleSource {
	return &loggingSchedule{
		inner:  inner,
		name:   name,
		logger: logger,
		now:    time.Now,
	}
}

func (s *loggingSchedule) FetchSchedule(ctx context.Context, teamID, seasonID string) (json.RawMessage, error) {
	if s == nil || s.inner == nil {
		return nil, ErrProviderUnavailable
	}

	start := s.now()
	raw, err := s.inner.FetchSchedule(ctx, teamID, seasonID)
	elapsed := s.now().Sub(start)
	if err != nil {
		logWithProvider(ctx, s.logger, slog.LevelWarn, s.name, "schedule fetch failed",
			slog.String(logging.FieldTeamID, teamID),
			slog.String(logging.FieldSeasonID, seasonID),
			slog.Float64(logging.FieldDurationMS, float64(elapsed.Microseconds())/1000),
			slog.String(logging.FieldError, err.Error()),
		)
		return nil, err
	}

	logWithProvider(ctx, s.logger, slog.LevelDebug, s.name, "schedule fetched",
		slog.String(logging.FieldTeamID, teamID),
		slog.String(logging.FieldSeasonID, seasonID),
		slog.Float64(logging.FieldDurationMS, float64(elapsed.Microseconds())/1000),
	)
	return raw, nil
}

package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

// StubSource returns Raw (or Err) for every game id and counts calls.
type StubSource struct {
	mu    sync.Mutex
	Raw   providers.RawGame
	Err   error
	Calls []string
}

func (s *StubSource) FetchGame(ctx context.Context, gameID string) (providers.RawGame, error) {
	_ = ctx
	s.mu.Lock()
	s.Calls = append(s.Calls, gameID)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Raw, nil
}

// StubSchedule returns Raw (or Err) for every team and season.
type StubSchedule struct {
	Raw json.RawMessage
	Err error
}

func (s StubSchedule) FetchSchedule(ctx context.Context, teamID, seasonID string) (json.RawMessage, error) {
	_ = ctx
	_ = teamID
	_ = seasonID
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Raw, nil
}

// UnavailableSource always returns ErrProviderUnavailable.
type UnavailableSource struct{}

func (UnavailableSource) FetchGame(ctx context.Context, gameID string) (providers.RawGame, error) {
	return nil, providers.ErrProviderUnavailable
}

// LegacyRaw wraps LegacyFeedJSON in a raw payload.
func LegacyRaw() providers.LegacyGame {
	return providers.LegacyGame{ID: LegacyGameID, Feed: json.RawMessage(LegacyFeedJSON)}
}

// EdgeRaw wraps the Edge fixture documents in a raw payload.
func EdgeRaw() providers.EdgeGame {
	return providers.EdgeGame{
		ID:         EdgeGameID,
		Landing:    json.RawMessage(EdgeLandingJSON),
		Boxscore:   json.RawMessage(EdgeBoxscoreJSON),
		PlayByPlay: json.RawMessage(EdgePlayByPlayJSON),
	}
}

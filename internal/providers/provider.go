package providers

import (
	"context"
	"encoding/json"
)

// GameSource fetches the raw payload of a single game.
type GameSource interface {
	FetchGame(ctx context.Context, gameID string) (RawGame, error)
}

// ScheduleSource fetches a raw team schedule for a season (e.g. "20222023").
type ScheduleSource interface {
	FetchSchedule(ctx context.Context, teamID, seasonID string) (json.RawMessage, error)
}

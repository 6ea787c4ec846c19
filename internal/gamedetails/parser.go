// Package gamedetails normalizes raw NHL payloads into games.GameRecord values.
package gamedetails

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/shotchart"
)

// ErrNoPayload is returned when Parse is handed a nil payload.
var ErrNoPayload = errors.New("no game payload")

// Parse normalizes a raw payload into a GameRecord. Missing optional fields
// never fail the parse; they fall back to "" or 0, and gameStart to nil.
func Parse(raw providers.RawGame, tz string) (games.GameRecord, error) {
	var (
		rec    games.GameRecord
		events []games.PlayEvent
	)
	switch g := raw.(type) {
	case providers.LegacyGame:
		rec, events = normalizeLegacy(g, tz)
	case providers.EdgeGame:
		rec, events = normalizeEdge(g, tz)
	case nil:
		return games.GameRecord{}, ErrNoPayload
	default:
		return games.GameRecord{}, fmt.Errorf("unsupported payload %T", raw)
	}

	rec.GameID = raw.GameID()
	rec.Source = raw.Source()
	rec.AwayShotAttempts, rec.HomeShotAttempts = shotchart.CountAttempts(events)
	rec.Charts.ShotChart.Data = shotchart.BuildShotPoints(events)
	return rec, nil
}

// Events extracts the normalized play-by-play events of a raw payload.
func Events(raw providers.RawGame) ([]games.PlayEvent, error) {
	switch g := raw.(type) {
	case providers.LegacyGame:
		_, events := normalizeLegacy(g, "")
		return events, nil
	case providers.EdgeGame:
		return edgeEvents(g, edgeTeamIDs(g)), nil
	case nil:
		return nil, ErrNoPayload
	default:
		return nil, fmt.Errorf("unsupported payload %T", raw)
	}
}

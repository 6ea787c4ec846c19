package games

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Source identifies which upstream schema a record was normalized from.
type Source string

const (
	SourceLegacy Source = "legacy"
	SourceEdge   Source = "edge"
)

// ParseSource maps a query/config value onto a Source, reporting false for unknown values.
func ParseSource(raw string) (Source, bool) {
	switch Source(strings.ToLower(strings.TrimSpace(raw))) {
	case SourceLegacy:
		return SourceLegacy, true
	case SourceEdge:
		return SourceEdge, true
	default:
		return "", false
	}
}

// Side says which team an event belongs to.
type Side string

const (
	SideAway    Side = "away"
	SideHome    Side = "home"
	SideUnknown Side = ""
)

// Play type keys that end up on a shot chart.
const (
	PlayMissedShot  = "missed-shot"
	PlayShotOnGoal  = "shot-on-goal"
	PlayBlockedShot = "blocked-shot"
	PlayGoal        = "goal"
)

// PlayEvent is one play-by-play entry normalized across both upstream schemas.
type PlayEvent struct {
	TypeDescKey string  `json:"typeDescKey"`
	Side        Side    `json:"side,omitempty"`
	Period      int     `json:"period,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	// HasCoords is false when the upstream play carries no rink location.
	HasCoords bool `json:"hasCoords"`
}

// MarkerSize is a plot marker size. Dumped payloads sometimes carry it as a string.
type MarkerSize float64

// UnmarshalJSON accepts both numbers and numeric strings.
func (m *MarkerSize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*m = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*m = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("markersize %q: %w", s, err)
		}
		*m = MarkerSize(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = MarkerSize(v)
	return nil
}

// ShotPoint is one renderable shot marker in chart coordinates.
type ShotPoint struct {
	X            float64    `json:"x_calculated_shot_chart"`
	Y            float64    `json:"y_calculated_shot_chart"`
	MarkerType   string     `json:"markertype"`
	Color        string     `json:"color"`
	MarkerSize   MarkerSize `json:"markersize"`
	ShotAttempts int        `json:"shot_attempts"`
}

// ShotChart wraps the ordered shot points of a game.
type ShotChart struct {
	Data []ShotPoint `json:"data"`
}

// Charts groups the chart payloads attached to a game record.
type Charts struct {
	ShotChart ShotChart `json:"shotChart"`
}

// GameRecord is the normalized game shape every upstream payload is parsed into.
// GameStart is nil when the start time could not be localized; the clock strings
// default to "" instead.
type GameRecord struct {
	GameID                     string  `json:"gameId"`
	Source                     Source  `json:"source"`
	GameStart                  *string `json:"gameStart"`
	CurrentPeriodTimeRemaining string  `json:"currentPeriodTimeRemaining"`
	CurrentPeriodOrdinal       string  `json:"currentPeriodOrdinal"`
	AwayTeam                   string  `json:"awayTeam"`
	HomeTeam                   string  `json:"homeTeam"`
	AwayGoals                  int     `json:"awayGoals"`
	HomeGoals                  int     `json:"homeGoals"`
	AwayShotsOnGoal            int     `json:"awayShotsOnGoal"`
	HomeShotsOnGoal            int     `json:"homeShotsOnGoal"`
	AwayShotAttempts           int     `json:"awayShotAttempts"`
	HomeShotAttempts           int     `json:"homeShotAttempts"`
	Charts                     Charts  `json:"charts"`
}

// GameStartOrEmpty returns the localized start time or "" when unavailable.
func (g GameRecord) GameStartOrEmpty() string {
	if g.GameStart == nil {
		return ""
	}
	return *g.GameStart
}

// ScheduledGame is one entry of a team schedule.
type ScheduledGame struct {
	GameID    string  `json:"gameId"`
	GameStart *string `json:"gameStart"`
	AwayTeam  string  `json:"awayTeam"`
	HomeTeam  string  `json:"homeTeam"`
	Status    string  `json:"status"`
}

// Package shotchart turns play-by-play events into shot chart points and renders them over a rink.
package shotchart

import (
	"sort"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
)

var shotKeys = map[string]bool{
	games.PlayMissedShot:  true,
	games.PlayShotOnGoal:  true,
	games.PlayBlockedShot: true,
	games.PlayGoal:        true,
}

// IsShotEvent reports whether a play type belongs on the shot chart.
func IsShotEvent(typeDescKey string) bool {
	return shotKeys[typeDescKey]
}

// FilterShotEvents keeps missed, on-goal, blocked and goal events in their original order.
func FilterShotEvents(events []games.PlayEvent) []games.PlayEvent {
	out := make([]games.PlayEvent, 0, len(events))
	for _, ev := range events {
		if IsShotEvent(ev.TypeDescKey) {
			out = append(out, ev)
		}
	}
	return out
}

// PlayTypeKeys returns the distinct typeDescKeys observed, sorted.
func PlayTypeKeys(events []games.PlayEvent) []string {
	seen := make(map[string]struct{}, len(events))
	keys := make([]string, 0)
	for _, ev := range events {
		if _, ok := seen[ev.TypeDescKey]; ok {
			continue
		}
		seen[ev.TypeDescKey] = struct{}{}
		keys = append(keys, ev.TypeDescKey)
	}
	sort.Strings(keys)
	return keys
}

// CountAttempts counts shot events per side.
func CountAttempts(events []games.PlayEvent) (away, home int) {
	for _, ev := range events {
		if !IsShotEvent(ev.TypeDescKey) {
			continue
		}
		switch ev.Side {
		case games.SideAway:
			away++
		case games.SideHome:
			home++
		}
	}
	return away, home
}

// ChartCoordinates places a raw rink coordinate on the chart. Every shot is
// first rotated into the right half (x >= 0); away shots are then mirrored
// into the left half so each team attacks one side.
func ChartCoordinates(x, y float64, side games.Side) (float64, float64) {
	if x < 0 {
		x, y = -x, -y
	}
	if side == games.SideAway {
		x, y = -x, -y
	}
	return x, y
}

// BuildShotPoints converts the shot events of a game into chart points. Events
// whose side is unknown cannot be colored and are skipped. Events without rink
// coordinates still count toward ShotAttempts but are not plotted.
// ShotAttempts is the running per-team count including the shot itself.
func BuildShotPoints(events []games.PlayEvent) []games.ShotPoint {
	shots := FilterShotEvents(events)
	points := make([]games.ShotPoint, 0, len(shots))
	attempts := map[games.Side]int{}
	for _, ev := range shots {
		if ev.Side == games.SideUnknown {
			continue
		}
		attempts[ev.Side]++
		if !ev.HasCoords {
			continue
		}
		x, y := ChartCoordinates(ev.X, ev.Y, ev.Side)
		m := StyleFor(ev.TypeDescKey, ev.Side)
		points = append(points, games.ShotPoint{
			X:            x,
			Y:            y,
			MarkerType:   m.Type,
			Color:        m.Color,
			MarkerSize:   games.MarkerSize(m.Size),
			ShotAttempts: attempts[ev.Side],
		})
	}
	return points
}

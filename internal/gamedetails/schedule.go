package gamedetails

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/timeutil"
)

// ParseSchedule flattens a legacy schedule document (dates[].games[]) into scheduled games.
func ParseSchedule(raw json.RawMessage, tz string) []games.ScheduledGame {
	var out []games.ScheduledGame
	for _, date := range gjson.GetBytes(raw, "dates").Array() {
		for _, g := range date.Get("games").Array() {
			out = append(out, games.ScheduledGame{
				GameID:    g.Get("gamePk").String(),
				GameStart: timeutil.LocalizePtr(g.Get("gameDate").String(), tz),
				AwayTeam:  g.Get("teams.away.team.name").String(),
				HomeTeam:  g.Get("teams.home.team.name").String(),
				Status:    g.Get("status.detailedState").String(),
			})
		}
	}
	return out
}

package gamedetails

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/timeutil"
)

const finalClock = "Final"

// terminalGameStates are Edge gameState values of a finished game.
var terminalGameStates = map[string]bool{
	"FINAL": true,
	"OFF":   true,
}

func normalizeEdge(g providers.EdgeGame, tz string) (games.GameRecord, []games.PlayEvent) {
	landing := gjson.ParseBytes(g.Landing)
	box := gjson.ParseBytes(g.Boxscore)
	pbp := gjson.ParseBytes(g.PlayByPlay)
	docs := []gjson.Result{landing, box, pbp}

	rec := games.GameRecord{
		AwayTeam:        teamAbbrev(first(docs, "awayTeam.abbrev")),
		HomeTeam:        teamAbbrev(first(docs, "homeTeam.abbrev")),
		GameStart:       timeutil.LocalizePtr(first(docs, "startTimeUTC").String(), tz),
		AwayGoals:       nonNegative(first(docs, "awayTeam.score").Int()),
		HomeGoals:       nonNegative(first(docs, "homeTeam.score").Int()),
		AwayShotsOnGoal: nonNegative(first(docs, "awayTeam.sog").Int()),
		HomeShotsOnGoal: nonNegative(first(docs, "homeTeam.sog").Int()),
	}

	state := strings.ToUpper(first(docs, "gameState").String())
	if terminalGameStates[state] {
		rec.CurrentPeriodTimeRemaining = finalClock
	} else {
		rec.CurrentPeriodTimeRemaining = first(docs, "clock.timeRemaining").String()
	}
	rec.CurrentPeriodOrdinal = periodOrdinal(first(docs, "periodDescriptor"))

	return rec, edgeEvents(g, edgeTeamIDs(g))
}

func edgeTeamIDs(g providers.EdgeGame) sideResolver {
	docs := []gjson.Result{
		gjson.ParseBytes(g.Landing),
		gjson.ParseBytes(g.Boxscore),
		gjson.ParseBytes(g.PlayByPlay),
	}
	return sideResolver{
		awayID:     first(docs, "awayTeam.id").Int(),
		homeID:     first(docs, "homeTeam.id").Int(),
		awayAbbrev: teamAbbrev(first(docs, "awayTeam.abbrev")),
		homeAbbrev: teamAbbrev(first(docs, "homeTeam.abbrev")),
	}
}

func edgeEvents(g providers.EdgeGame, sides sideResolver) []games.PlayEvent {
	plays := gjson.GetBytes(g.PlayByPlay, "plays").Array()
	events := make([]games.PlayEvent, 0, len(plays))
	for _, play := range plays {
		details := play.Get("details")
		events = append(events, games.PlayEvent{
			TypeDescKey: play.Get("typeDescKey").String(),
			Side:        sides.resolve(details.Get("eventOwnerTeamId").Int(), ""),
			Period:      int(play.Get("periodDescriptor.number").Int()),
			X:           details.Get("xCoord").Float(),
			Y:           details.Get("yCoord").Float(),
			HasCoords:   details.Get("xCoord").Exists() && details.Get("yCoord").Exists(),
		})
	}
	return events
}

// periodOrdinal renders a periodDescriptor as 1st/2nd/3rd, OT, 2OT or SO.
func periodOrdinal(desc gjson.Result) string {
	number := int(desc.Get("number").Int())
	switch strings.ToUpper(desc.Get("periodType").String()) {
	case "SO":
		return "SO"
	case "OT":
		if n := number - 3; n > 1 {
			return fmt.Sprintf("%dOT", n)
		}
		return "OT"
	}
	if number <= 0 {
		return ""
	}
	return ordinal(number)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// teamAbbrev accepts both "TOR" and {"default": "TOR"}.
func teamAbbrev(v gjson.Result) string {
	if v.IsObject() {
		return v.Get("default").String()
	}
	return v.String()
}

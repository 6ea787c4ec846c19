package gamedetails

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/timeutil"
)

// legacyEventKeys maps result.eventTypeId values onto play-by-play keys.
var legacyEventKeys = map[string]string{
	"SHOT":         games.PlayShotOnGoal,
	"GOAL":         games.PlayGoal,
	"MISSED_SHOT":  games.PlayMissedShot,
	"BLOCKED_SHOT": games.PlayBlockedShot,
}

func normalizeLegacy(g providers.LegacyGame, tz string) (games.GameRecord, []games.PlayEvent) {
	doc := gjson.ParseBytes(g.Feed)
	teams := doc.Get("gameData.teams")
	linescore := doc.Get("liveData.linescore")

	rec := games.GameRecord{
		AwayTeam:                   teams.Get("away.abbreviation").String(),
		HomeTeam:                   teams.Get("home.abbreviation").String(),
		GameStart:                  timeutil.LocalizePtr(doc.Get("gameData.datetime.dateTime").String(), tz),
		CurrentPeriodTimeRemaining: linescore.Get("currentPeriodTimeRemaining").String(),
		CurrentPeriodOrdinal:       linescore.Get("currentPeriodOrdinal").String(),
		AwayGoals:                  nonNegative(linescore.Get("teams.away.goals").Int()),
		HomeGoals:                  nonNegative(linescore.Get("teams.home.goals").Int()),
		AwayShotsOnGoal:            nonNegative(linescore.Get("teams.away.shotsOnGoal").Int()),
		HomeShotsOnGoal:            nonNegative(linescore.Get("teams.home.shotsOnGoal").Int()),
	}

	sides := sideResolver{
		awayID:     teams.Get("away.id").Int(),
		homeID:     teams.Get("home.id").Int(),
		awayAbbrev: rec.AwayTeam,
		homeAbbrev: rec.HomeTeam,
	}

	plays := doc.Get("liveData.plays.allPlays").Array()
	events := make([]games.PlayEvent, 0, len(plays))
	for _, play := range plays {
		key := legacyEventKey(play.Get("result.eventTypeId").String())
		if key == "" {
			continue
		}
		team := play.Get("team")
		events = append(events, games.PlayEvent{
			TypeDescKey: key,
			Side:        sides.resolve(team.Get("id").Int(), team.Get("triCode").String()),
			Period:      int(play.Get("about.period").Int()),
			X:           play.Get("coordinates.x").Float(),
			Y:           play.Get("coordinates.y").Float(),
			HasCoords:   play.Get("coordinates.x").Exists() && play.Get("coordinates.y").Exists(),
		})
	}
	return rec, events
}

// legacyEventKey returns the play-by-play key for an eventTypeId, lower-kebab-casing unknown ids.
func legacyEventKey(eventTypeID string) string {
	eventTypeID = strings.TrimSpace(eventTypeID)
	if key, ok := legacyEventKeys[eventTypeID]; ok {
		return key
	}
	return strings.ReplaceAll(strings.ToLower(eventTypeID), "_", "-")
}

package shotchart

import (
	"fmt"
	"strconv"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
)

const finalClock = "Final"

// Title renders "{away} {goals} vs. {home} {goals}" over the game clock.
// A finished game shows only "Final"; otherwise "{timeRemaining}/{ordinal}".
func Title(rec games.GameRecord) string {
	return fmt.Sprintf("%s %d vs. %s %d\n%s",
		rec.AwayTeam, rec.AwayGoals, rec.HomeTeam, rec.HomeGoals, Clock(rec))
}

// Clock formats the period clock of a record.
func Clock(rec games.GameRecord) string {
	if rec.CurrentPeriodTimeRemaining == finalClock || rec.CurrentPeriodOrdinal == finalClock {
		return rec.CurrentPeriodTimeRemaining
	}
	return rec.CurrentPeriodTimeRemaining + "/" + rec.CurrentPeriodOrdinal
}

// DetailLine summarizes shots on goal and attempts per team above the start time.
func DetailLine(rec games.GameRecord) string {
	return fmt.Sprintf("%s - %d SOG (%d Total Shot Attempts)      %s - %d SOG (%d Total Shot Attempts)\n%s",
		rec.AwayTeam, rec.AwayShotsOnGoal, rec.AwayShotAttempts,
		rec.HomeTeam, rec.HomeShotsOnGoal, rec.HomeShotAttempts,
		rec.GameStartOrEmpty())
}

// Annotation is a text label placed next to a marker.
type Annotation struct {
	X    float64
	Y    float64
	Text string
}

// Annotations labels every point with its running attempt count.
func Annotations(points []games.ShotPoint) []Annotation {
	out := make([]Annotation, 0, len(points))
	for _, p := range points {
		out = append(out, Annotation{
			X:    p.X + AnnotationOffsetX,
			Y:    p.Y + AnnotationOffsetY,
			Text: strconv.Itoa(p.ShotAttempts),
		})
	}
	return out
}

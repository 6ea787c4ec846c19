package gamedetails

import (
	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
)

// first returns the value at path from the first document that has it.
func first(docs []gjson.Result, path string) gjson.Result {
	for _, doc := range docs {
		if v := doc.Get(path); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func nonNegative(v int64) int {
	if v < 0 {
		return 0
	}
	return int(v)
}

type sideResolver struct {
	awayID     int64
	homeID     int64
	awayAbbrev string
	homeAbbrev string
}

// resolve matches a team id first and falls back to the tri-code.
func (s sideResolver) resolve(teamID int64, triCode string) games.Side {
	switch {
	case teamID != 0 && teamID == s.awayID:
		return games.SideAway
	case teamID != 0 && teamID == s.homeID:
		return games.SideHome
	case triCode != "" && triCode == s.awayAbbrev:
		return games.SideAway
	case triCode != "" && triCode == s.homeAbbrev:
		return games.SideHome
	default:
		return games.SideUnknown
	}
}

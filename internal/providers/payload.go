package providers

import (
	"encoding/json"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/domain/games"
)

// Document kinds, also used as file suffixes for raw dumps.
const (
	KindFeed       = "feed"
	KindLanding    = "landing"
	KindBoxscore   = "boxscore"
	KindPlayByPlay = "play-by-play"
)

// Document is one raw upstream JSON body with the kind it was fetched as.
type Document struct {
	Kind    string
	Payload json.RawMessage
}

// RawGame is the raw payload of one game. It is either a LegacyGame or an EdgeGame.
type RawGame interface {
	GameID() string
	Source() games.Source
	Documents() []Document
	isRawGame()
}

// LegacyGame holds the single live feed document of the legacy stats API.
type LegacyGame struct {
	ID   string
	Feed json.RawMessage
}

func (g LegacyGame) GameID() string        { return g.ID }
func (g LegacyGame) Source() games.Source  { return games.SourceLegacy }
func (g LegacyGame) Documents() []Document { return []Document{{Kind: KindFeed, Payload: g.Feed}} }
func (LegacyGame) isRawGame()              {}

// EdgeGame holds the three gamecenter documents of the Edge API.
type EdgeGame struct {
	ID         string
	Landing    json.RawMessage
	Boxscore   json.RawMessage
	PlayByPlay json.RawMessage
}

func (g EdgeGame) GameID() string       { return g.ID }
func (g EdgeGame) Source() games.Source { return games.SourceEdge }
func (EdgeGame) isRawGame()             {}

// Documents returns landing, boxscore and play-by-play in that order.
func (g EdgeGame) Documents() []Document {
	return []Document{
		{Kind: KindLanding, Payload: g.Landing},
		{Kind: KindBoxscore, Payload: g.Boxscore},
		{Kind: KindPlayByPlay, Payload: g.PlayByPlay},
	}
}

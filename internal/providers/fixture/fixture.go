package fixture

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/snapshots"
)

// Provider replays games previously dumped to disk instead of calling the NHL APIs.
// Edge dumps (landing, boxscore, play-by-play) win over a legacy feed dump.
type Provider struct {
	store *snapshots.FSStore
}

// New creates a provider reading {dir}/{gameId}-{kind}.json files.
func New(dir string) *Provider {
	return &Provider{store: snapshots.NewFSStore(dir)}
}

// FetchGame loads the dumped documents of a game.
func (p *Provider) FetchGame(ctx context.Context, gameID string) (providers.RawGame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.store.HasDocument(gameID, providers.KindLanding) {
		return p.loadEdge(gameID)
	}
	if p.store.HasDocument(gameID, providers.KindFeed) {
		feed, err := p.store.LoadDocument(gameID, providers.KindFeed)
		if err != nil {
			return nil, fmt.Errorf("local feed %s: %w", gameID, err)
		}
		return providers.LegacyGame{ID: gameID, Feed: feed}, nil
	}
	// Neither variant exists; surface the missing landing file.
	return p.loadEdge(gameID)
}

func (p *Provider) loadEdge(gameID string) (providers.RawGame, error) {
	kinds := []string{providers.KindLanding, providers.KindBoxscore, providers.KindPlayByPlay}
	docs := make([]json.RawMessage, len(kinds))
	for i, kind := range kinds {
		doc, err := p.store.LoadDocument(gameID, kind)
		if err != nil {
			return nil, fmt.Errorf("local %s %s: %w", kind, gameID, err)
		}
		docs[i] = doc
	}
	return providers.EdgeGame{
		ID:         gameID,
		Landing:    docs[0],
		Boxscore:   docs[1],
		PlayByPlay: docs[2],
	}, nil
}

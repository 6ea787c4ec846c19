package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

// EdgeClient reads gamecenter documents from the Edge API.
type EdgeClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewEdgeClient builds a client rooted at baseURL, defaulting to api-web.nhle.com.
func NewEdgeClient(baseURL string, fetcher *Fetcher) *EdgeClient {
	if fetcher == nil {
		fetcher = NewFetcher(nil, nil)
	}
	return &EdgeClient{
		baseURL: normalizeBaseURL(baseURL, defaultEdgeBaseURL),
		fetcher: fetcher,
	}
}

// FetchGame fetches landing, boxscore and play-by-play concurrently. The first
// failure cancels the remaining requests and fails the whole fetch.
func (c *EdgeClient) FetchGame(ctx context.Context, gameID string) (providers.RawGame, error) {
	targets := []struct {
		kind     string
		endpoint string
	}{
		{providers.KindLanding, endpointEdgeLanding},
		{providers.KindBoxscore, endpointEdgeBoxscore},
		{providers.KindPlayByPlay, endpointEdgePlayByPlay},
	}
	docs := make([]json.RawMessage, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	for i, target := range targets {
		g.Go(func() error {
			body, err := c.fetcher.fetch(gctx, target.endpoint, c.documentURL(gameID, target.kind))
			if err != nil {
				return fmt.Errorf("edge %s %s: %w", target.kind, gameID, err)
			}
			docs[i] = body
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return providers.EdgeGame{
		ID:         gameID,
		Landing:    docs[0],
		Boxscore:   docs[1],
		PlayByPlay: docs[2],
	}, nil
}

func (c *EdgeClient) documentURL(gameID, kind string) string {
	return fmt.Sprintf("%s/gamecenter/%s/%s", c.baseURL, url.PathEscape(gameID), kind)
}

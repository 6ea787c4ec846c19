package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

// LegacyClient reads games and schedules from the legacy stats API.
type LegacyClient struct {
	baseURL string
	fetcher *Fetcher
}

// NewLegacyClient builds a client rooted at baseURL, defaulting to the public stats API.
func NewLegacyClient(baseURL string, fetcher *Fetcher) *LegacyClient {
	if fetcher == nil {
		fetcher = NewFetcher(nil, nil)
	}
	return &LegacyClient{
		baseURL: normalizeBaseURL(baseURL, defaultLegacyBaseURL),
		fetcher: fetcher,
	}
}

// FetchGame retrieves the live feed document for a game.
func (c *LegacyClient) FetchGame(ctx context.Context, gameID string) (providers.RawGame, error) {
	feed, err := c.fetcher.fetch(ctx, endpointLegacyFeed, c.feedURL(gameID))
	if err != nil {
		return nil, fmt.Errorf("legacy feed %s: %w", gameID, err)
	}
	return providers.LegacyGame{ID: gameID, Feed: feed}, nil
}

// FetchSchedule retrieves a team's schedule for a season such as "20222023".
func (c *LegacyClient) FetchSchedule(ctx context.Context, teamID, seasonID string) (json.RawMessage, error) {
	body, err := c.fetcher.fetch(ctx, endpointLegacySchedule, c.scheduleURL(teamID, seasonID))
	if err != nil {
		return nil, fmt.Errorf("legacy schedule team=%s season=%s: %w", teamID, seasonID, err)
	}
	return body, nil
}

func (c *LegacyClient) feedURL(gameID string) string {
	return fmt.Sprintf("%s/game/%s/feed/live", c.baseURL, url.PathEscape(gameID))
}

func (c *LegacyClient) scheduleURL(teamID, seasonID string) string {
	q := url.Values{}
	q.Set("teamId", teamID)
	q.Set("season", seasonID)
	return c.baseURL + "/schedule?" + q.Encode()
}

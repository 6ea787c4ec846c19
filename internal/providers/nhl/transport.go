package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient falls back to a client without a timeout; requests are
// bounded by the caller's context instead.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{}
}

func normalizeBaseURL(raw, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

// Fetcher performs single JSON GETs against the NHL APIs.
type Fetcher struct {
	client   httpDoer
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewFetcher builds a Fetcher. Both arguments may be nil.
func NewFetcher(client *http.Client, recorder *metrics.Recorder) *Fetcher {
	return &Fetcher{
		client:   resolveHTTPClient(client),
		recorder: recorder,
		now:      time.Now,
	}
}

// FetchJSON GETs url and returns the body once it is known to be valid JSON.
// Transport failures, non-2xx statuses and malformed bodies are returned as errors.
func (f *Fetcher) FetchJSON(ctx context.Context, url string) (json.RawMessage, error) {
	return f.fetch(ctx, endpointAdhoc, url)
}

func (f *Fetcher) fetch(ctx context.Context, endpoint, url string) (body json.RawMessage, err error) {
	start := f.now()
	defer func() {
		f.recorder.RecordUpstreamFetch(endpoint, f.now().Sub(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return nil, &providers.StatusError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode %s: invalid JSON body", url)
	}
	return json.RawMessage(data), nil
}

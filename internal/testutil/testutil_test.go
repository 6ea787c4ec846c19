package testutil

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/providers"
)

func TestFixturesAreValidJSON(t *testing.T) {
	for name, doc := range map[string]string{
		"feed":         LegacyFeedJSON,
		"landing":      EdgeLandingJSON,
		"boxscore":     EdgeBoxscoreJSON,
		"play-by-play": EdgePlayByPlayJSON,
		"schedule":     LegacyScheduleJSON,
	} {
		if !json.Valid([]byte(doc)) {
			t.Fatalf("fixture %s is not valid json", name)
		}
	}
	if LegacyRaw().GameID() != LegacyGameID || EdgeRaw().GameID() != EdgeGameID {
		t.Fatalf("unexpected fixture ids")
	}
	if len(EdgeRaw().Documents()) != 3 {
		t.Fatalf("expected three edge documents")
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	AssertBodyContains(t, rr, `"ok"`)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestStubHTTPServer(t *testing.T) {
	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	if err := sh.ListenAndServe(); !errors.Is(err, sh.ListenErr) {
		t.Fatalf("expected listen error, got %v", err)
	}
	if err := sh.Shutdown(context.Background()); !errors.Is(err, sh.ShutdownErr) {
		t.Fatalf("expected shutdown error, got %v", err)
	}
	if sh.Addr() != ":0" || sh.Handler() == nil {
		t.Fatalf("expected defaults for addr and handler")
	}
	if listen, shutdown := sh.Calls(); listen != 1 || shutdown != 1 {
		t.Fatalf("expected one call each, got listen=%d shutdown=%d", listen, shutdown)
	}

	blocking := &StubHTTPServer{Unblock: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- blocking.Shutdown(context.Background()) }()
	close(blocking.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stuck := &StubHTTPServer{Unblock: make(chan struct{})}
	if err := stuck.Shutdown(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestSourceHelpers(t *testing.T) {
	ctx := context.Background()

	src := &StubSource{Raw: LegacyRaw()}
	if raw, err := src.FetchGame(ctx, "1"); err != nil || raw.GameID() != LegacyGameID {
		t.Fatalf("unexpected stub result %v %v", raw, err)
	}
	if len(src.Calls) != 1 || src.Calls[0] != "1" {
		t.Fatalf("expected call recorded, got %v", src.Calls)
	}

	failing := &StubSource{Err: errors.New("boom")}
	if _, err := failing.FetchGame(ctx, "1"); !errors.Is(err, failing.Err) {
		t.Fatalf("expected error passthrough")
	}

	if _, err := (UnavailableSource{}).FetchGame(ctx, "1"); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}

	sched := StubSchedule{Raw: json.RawMessage(LegacyScheduleJSON)}
	if raw, err := sched.FetchSchedule(ctx, "55", "20222023"); err != nil || len(raw) == 0 {
		t.Fatalf("unexpected schedule result %v", err)
	}
}

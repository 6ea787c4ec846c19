package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/app/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/config"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/metrics"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/testutil"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port: "0",
		NHL: config.NHLConfig{
			LegacyBaseURL: "http://127.0.0.1:1",
			EdgeBaseURL:   "http://127.0.0.1:1",
		},
		Chart: config.ChartConfig{
			DefaultSource:     "legacy",
			DefaultGameID:     testutil.LegacyGameID,
			DefaultEdgeGameID: testutil.EdgeGameID,
			DefaultTeamID:     "55",
			DefaultSeasonID:   "20222023",
			DefaultTimezone:   "UTC",
			QRDir:             t.TempDir(),
		},
		Dumps: config.DumpsConfig{Dir: t.TempDir()},
	}
}

func stubSources() sourceSet {
	return sourceSet{
		legacy:   &testutil.StubSource{Raw: testutil.LegacyRaw()},
		edge:     &testutil.StubSource{Raw: testutil.EdgeRaw()},
		schedule: testutil.StubSchedule{Raw: []byte(testutil.LegacyScheduleJSON)},
	}
}

func TestServerServesHealthAndCharts(t *testing.T) {
	cfg := testConfig(t)
	srv := newServerWithSources(cfg, nil, metrics.NewRecorder(), stubSources(), nil, nil)
	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/nhl-shot-chart", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "SEA 5 vs. DAL 2")

	rr = testutil.Serve(router, http.MethodGet, "/shot-chart", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertBodyContains(t, rr, "TOR 2 vs. BOS 3")
}

func TestServerRecordsRequestMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	srv := newServerWithSources(testConfig(t), nil, rec, stubSources(), nil, nil)

	testutil.Serve(srv.Handler(), http.MethodGet, "/shot-chart", nil)

	total, failed := rec.ChartRenders("edge")
	if total != 1 || failed != 0 {
		t.Fatalf("expected one successful edge render, got total=%d failed=%d", total, failed)
	}
}

func TestServerUnreachableUpstreamRendersErrorPage(t *testing.T) {
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false
	srv := New(cfg, nil)

	req := httptest.NewRequest(http.MethodGet, "/nhl-shot-chart", nil)
	rr := testutil.ServeRequest(srv.Handler(), req)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertBodyContains(t, rr, "Error Generating Shot Chart")
}

func TestSourceFactoryUsesLocalJSON(t *testing.T) {
	dir := t.TempDir()
	raw := testutil.EdgeRaw()
	for _, doc := range raw.Documents() {
		path := filepath.Join(dir, raw.ID+"-"+doc.Kind+".json")
		if err := os.WriteFile(path, doc.Payload, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	cfg := testConfig(t)
	cfg.NHL.SourceDir = dir
	cfg.Dumps.Enabled = true

	sources := newSourceFactory(nil, nil).build(cfg)
	if !sources.local {
		t.Fatalf("expected local sources")
	}
	got, err := sources.edge.FetchGame(context.Background(), raw.ID)
	if err != nil {
		t.Fatalf("fetch local game: %v", err)
	}
	if got.GameID() != raw.ID {
		t.Fatalf("unexpected game %s", got.GameID())
	}
	if buildDumper(cfg, sources, nil) != nil {
		t.Fatalf("expected dumps disabled when reading local json")
	}
}

func TestSourceFactoryLogsScheduleFailures(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	sources := newSourceFactory(logger, metrics.NewRecorder()).build(testConfig(t))

	if _, err := sources.schedule.FetchSchedule(context.Background(), "55", "20222023"); err == nil {
		t.Fatal("expected unreachable schedule endpoint to fail")
	}
	out := buf.String()
	if !strings.Contains(out, "schedule fetch failed") || !strings.Contains(out, "source=nhl.schedule") {
		t.Fatalf("expected schedule failure logged with source, got %q", out)
	}
}

func TestBuildDumperRespectsConfig(t *testing.T) {
	cfg := testConfig(t)
	if buildDumper(cfg, sourceSet{}, nil) != nil {
		t.Fatalf("expected no dumper when disabled")
	}
	cfg.Dumps.Enabled = true
	if buildDumper(cfg, sourceSet{}, nil) == nil {
		t.Fatalf("expected dumper when enabled")
	}
}

func TestServerDumpsFetchedGames(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dumps.Enabled = true
	srv := newServerWithSources(cfg, nil, metrics.NewRecorder(), stubSources(), nil, nil)

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/api/load-game-data", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	path := filepath.Join(cfg.Dumps.Dir, testutil.EdgeGameID+"-landing.json")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected dump at %s: %v", path, err)
	}
}

func TestBuildMetricsSuccessPathSetsServerAndShutdown(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return metrics.NewRecorder(), http.NewServeMux(), func(context.Context) error { return nil }, nil
	}

	rec, srv, stop := buildMetrics(config.Config{
		Metrics: config.MetricsConfig{Enabled: true, Port: "9999"},
	}, nil, nil)

	if rec == nil || srv == nil || stop == nil {
		t.Fatalf("expected recorder, server, and shutdown to be set on success")
	}
	if srv.Addr() != ":9999" {
		t.Fatalf("unexpected metrics addr %s", srv.Addr())
	}
}

func TestNewServerWithMetricsHandlesSetupFailure(t *testing.T) {
	orig := metricsSetup
	defer func() { metricsSetup = orig }()
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("fail")
	}

	cfg := testConfig(t)
	cfg.Metrics.Enabled = true
	srv := newServerWithMetrics(cfg, nil, nil)
	if srv.metrics == nil {
		t.Fatalf("expected fallback metrics recorder even on setup failure")
	}
	if srv.metricsServer != nil {
		t.Fatalf("expected no metrics server after setup failure")
	}
}

func TestNewServerWithMetricsUsesInjectedRecorder(t *testing.T) {
	rec, _ := testutil.NewRecorderWithShutdown()
	srv := newServerWithMetrics(testConfig(t), nil, rec)
	if srv.metrics != rec {
		t.Fatalf("expected injected recorder to be used")
	}
	if srv.metricsStop != nil {
		t.Fatalf("expected no metrics shutdown for injected recorder")
	}
}

func TestGracefulShutdownCallsShutdown(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, games.NewService(games.Options{}), httpSrv)
	srv.metricsServer = metricsSrv
	stopCalls := 0
	srv.metricsStop = func(context.Context) error {
		stopCalls++
		return errors.New("exporter stuck")
	}
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 || metricsSrv.ShutdownCalls != 1 || stopCalls != 1 {
		t.Fatalf("expected every component stopped once, got http=%d metrics=%d exporter=%d",
			httpSrv.ShutdownCalls, metricsSrv.ShutdownCalls, stopCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	blocking := &testutil.StubHTTPServer{Unblock: make(chan struct{})}

	srv := newServerWithDeps(config.Config{ShutdownTimeout: 5 * time.Millisecond}, nil, nil, blocking)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestShutdownTimeoutFallsBackToDefault(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.StubHTTPServer{})
	if srv.shutdownTimeout() != shutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %s", srv.shutdownTimeout())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	srv := newServerWithDeps(config.Config{}, nil, nil, &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}
	srv := newServerWithDeps(config.Config{}, nil, nil, httpSrv)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	listen, shutdown := httpSrv.Calls()
	if listen != 1 || shutdown != 1 {
		t.Fatalf("expected listen and shutdown once, got listen=%d shutdown=%d", listen, shutdown)
	}
}

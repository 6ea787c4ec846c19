package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	appgames "github.com/preston-bernstein/nhl-shot-chart-service/internal/app/games"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/http/handlers"
	"github.com/preston-bernstein/nhl-shot-chart-service/internal/testutil"
)

func newTestRouter(t *testing.T, staticDir string) http.Handler {
	t.Helper()
	svc := appgames.NewService(appgames.Options{
		Legacy:   &testutil.StubSource{Raw: testutil.LegacyRaw()},
		Edge:     &testutil.StubSource{Raw: testutil.EdgeRaw()},
		Schedule: testutil.StubSchedule{Raw: []byte(testutil.LegacyScheduleJSON)},
	})
	h := handlers.NewHandler(svc, handlers.Config{
		DefaultGameID:     testutil.LegacyGameID,
		DefaultEdgeGameID: testutil.EdgeGameID,
		DefaultTeamID:     "55",
		DefaultSeasonID:   "20222023",
		StaticDir:         staticDir,
		QRDir:             t.TempDir(),
	}, nil)
	return NewRouter(h, nil)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	cases := map[string]int{
		"/health":             http.StatusOK,
		"/api/load-game-data": http.StatusOK,
		"/api/play-types":     http.StatusOK,
		"/game-data":          http.StatusOK,
		"/qrcode":             http.StatusOK,
		"/qrcode/download":    http.StatusOK,
		"/nhl-shot-chart":     http.StatusOK,
		"/favicon.ico":        http.StatusNotFound,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterRendersChartPages(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	for _, path := range []string{"/", "/nhl-shot-chart", "/shot-chart", "/nhl-schedule"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertBodyContains(t, rr, "<figure>")
	}
}

func TestRouterHeadOnPages(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	rr := testutil.Serve(router, http.MethodHead, "/nhl-schedule", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if rr.Body.Len() != 0 {
		t.Fatalf("expected empty HEAD body, got %q", rr.Body.String())
	}
}

func TestRouterOptionsOnAnyPath(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	for _, path := range []string{"/", "/nhl-shot-chart", "/made/up/path"} {
		rr := testutil.Serve(router, http.MethodOptions, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		testutil.AssertBodyContains(t, rr, `"allowed_methods":["GET","POST","OPTIONS","HEAD"]`)
	}
}

func TestRouterServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "apple-touch-icon.png"), []byte("png"), 0o644); err != nil {
		t.Fatalf("write icon: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatalf("write css: %v", err)
	}
	router := newTestRouter(t, dir)

	rr := testutil.Serve(router, http.MethodGet, "/apple-touch-icon.png", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/static/site.css", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(rr.Body.String(), "body{}") {
		t.Fatalf("unexpected static body %q", rr.Body.String())
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newTestRouter(t, t.TempDir())

	rr := testutil.Serve(router, http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestRouterMissingSourceRendersErrorPage(t *testing.T) {
	svc := appgames.NewService(appgames.Options{})
	h := handlers.NewHandler(svc, handlers.Config{DefaultGameID: "1"}, nil)
	router := NewRouter(h, nil)

	req := httptest.NewRequest(http.MethodGet, "/nhl-shot-chart", nil)
	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertBodyContains(t, rr, "Error Generating Shot Chart")
}

package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nhl-shot-chart-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	if !bytes.Contains(rr.Body.Bytes(), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", rr.Body.String())
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorPageRendersMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/nhl-shot-chart", nil)
	req.Header.Set("X-Request-ID", "req-7")
	rr := httptest.NewRecorder()

	writeErrorPage(rr, req, http.StatusInternalServerError, errors.New("upstream <down>"), nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	testutil.AssertBodyContains(t, rr, "Error Generating Shot Chart", "upstream &lt;down&gt;", "req-7")
}

func TestWriteHTMLUnknownPageFallsBackTo500(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()

	writeHTML(rr, http.StatusOK, "missing.html", nil, logger)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	testutil.AssertBodyContains(t, rr, "Error Generating Shot Chart")
	if !strings.Contains(buf.String(), "failed to render page") {
		t.Fatalf("expected render failure logged, got %s", buf.String())
	}
}

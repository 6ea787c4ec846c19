package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRecorderTracksUpstreamFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordUpstreamFetch("edge.landing", 10*time.Millisecond, nil)
	rec.RecordUpstreamFetch("edge.landing", 15*time.Millisecond, errors.New("boom"))

	if got := rec.UpstreamCalls("edge.landing"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.UpstreamErrors("edge.landing"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	snap := rec.Snapshot("edge.landing")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if other := rec.Snapshot("edge.boxscore"); other.Calls != 0 {
		t.Fatalf("expected empty snapshot for unknown endpoint, got %+v", other)
	}
}

func TestRecorderTracksChartRenders(t *testing.T) {
	rec := NewRecorder()
	rec.RecordChartRender("legacy", time.Millisecond, nil)
	rec.RecordChartRender("legacy", time.Millisecond, errors.New("bad figure"))
	rec.RecordChartRender("edge", time.Millisecond, nil)

	total, failed := rec.ChartRenders("legacy")
	if total != 2 || failed != 1 {
		t.Fatalf("expected 2/1 legacy renders, got %d/%d", total, failed)
	}
	total, failed = rec.ChartRenders("edge")
	if total != 1 || failed != 0 {
		t.Fatalf("expected 1/0 edge renders, got %d/%d", total, failed)
	}
}

func TestRecorderIsSafeForConcurrentFetches(t *testing.T) {
	rec := NewRecorder()
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.RecordUpstreamFetch("edge.play-by-play", time.Millisecond, nil)
		}()
	}
	wg.Wait()
	if got := rec.UpstreamCalls("edge.play-by-play"); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	rec.RecordUpstreamFetch("legacy.feed", time.Millisecond, nil)
	rec.RecordChartRender("legacy", time.Millisecond, nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if rec.UpstreamCalls("legacy.feed") != 0 {
		t.Fatal("expected zero calls on nil recorder")
	}
	if total, _ := rec.ChartRenders("legacy"); total != 0 {
		t.Fatal("expected zero renders on nil recorder")
	}
}

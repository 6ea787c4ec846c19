package games

import (
	"encoding/json"
	"testing"
)

func TestShotPointDecodesStringMarkerSize(t *testing.T) {
	raw := `{"x_calculated_shot_chart": 50, "y_calculated_shot_chart": 20, "markertype": "o", "color": "red", "markersize": "5", "shot_attempts": 2}`
	var p ShotPoint
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.MarkerSize != 5 || p.X != 50 || p.Y != 20 || p.ShotAttempts != 2 {
		t.Fatalf("unexpected point %+v", p)
	}
}

func TestMarkerSizeAcceptsNumbersAndRejectsGarbage(t *testing.T) {
	var m MarkerSize
	if err := json.Unmarshal([]byte(`7.5`), &m); err != nil || m != 7.5 {
		t.Fatalf("expected 7.5, got %v (%v)", m, err)
	}
	if err := json.Unmarshal([]byte(`null`), &m); err != nil || m != 0 {
		t.Fatalf("expected zero for null, got %v (%v)", m, err)
	}
	if err := json.Unmarshal([]byte(`"big"`), &m); err == nil {
		t.Fatal("expected error for non-numeric string")
	}
}

func TestGameRecordEncodesNullGameStart(t *testing.T) {
	out, err := json.Marshal(GameRecord{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v, ok := decoded["gameStart"]; !ok || v != nil {
		t.Fatalf("expected explicit null gameStart, got %v", v)
	}
	if v := decoded["currentPeriodOrdinal"]; v != "" {
		t.Fatalf("expected empty ordinal, got %v", v)
	}
}

func TestGameStartOrEmpty(t *testing.T) {
	start := "2022-09-26 07:00 PM PDT"
	if got := (GameRecord{GameStart: &start}).GameStartOrEmpty(); got != start {
		t.Fatalf("unexpected start %q", got)
	}
	if got := (GameRecord{}).GameStartOrEmpty(); got != "" {
		t.Fatalf("expected empty start, got %q", got)
	}
}

func TestParseSource(t *testing.T) {
	if s, ok := ParseSource(" Edge "); !ok || s != SourceEdge {
		t.Fatalf("expected edge, got %q", s)
	}
	if s, ok := ParseSource("legacy"); !ok || s != SourceLegacy {
		t.Fatalf("expected legacy, got %q", s)
	}
	if _, ok := ParseSource("statsapi"); ok {
		t.Fatal("expected unknown source to be rejected")
	}
}

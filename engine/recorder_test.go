package engine

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ftahirops/logradar/model"
)

func TestPlayerReplaysRecordedEvents(t *testing.T) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)

	if err := enc.Encode(recordedEvent{SourceID: "s1", Line: "hello", Status: model.StatusRunning}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := enc.Encode(recordedEvent{SourceID: "s1", Line: "world", Status: model.StatusRunning}); err != nil {
		t.Fatalf("encode: %v", err)
	}

	player := NewPlayer(bytes.NewReader(buf.Bytes()))
	if player.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", player.Len())
	}

	ev1, ok := player.Next()
	if !ok || ev1.Line != "hello" {
		t.Fatalf("Next() = %+v, %v, want hello", ev1, ok)
	}
	ev2, ok := player.Next()
	if !ok || ev2.Line != "world" {
		t.Fatalf("Next() = %+v, %v, want world", ev2, ok)
	}
	if _, ok := player.Next(); ok {
		t.Fatalf("Next() after exhaustion should return false")
	}
}

func TestPlayerSkipsMalformedLines(t *testing.T) {
	data := []byte("not json\n" + `{"source_id":"s1","line":"ok","status":1}` + "\n")
	player := NewPlayer(bytes.NewReader(data))
	if player.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", player.Len())
	}
}

func TestPlayerPauseHoldsReplay(t *testing.T) {
	data := []byte(`{"source_id":"s1","line":"a","status":1}` + "\n")
	player := NewPlayer(bytes.NewReader(data))
	player.SetPaused(true)
	if _, ok := player.Next(); ok {
		t.Fatalf("Next() while paused should return false")
	}
	player.SetPaused(false)
	if _, ok := player.Next(); !ok {
		t.Fatalf("Next() after unpause should return an event")
	}
}

func TestRecorderWritesJSONLines(t *testing.T) {
	var buf bytes.Buffer
	rec := NewRecorder(&buf)
	rec.Record(model.SourceEvent{SourceID: "s1", Line: "hello", Status: model.StatusRunning})
	rec.Record(model.SourceEvent{SourceID: "s1", Status: model.StatusError})

	player := NewPlayer(bytes.NewReader(buf.Bytes()))
	if player.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", player.Len())
	}
}

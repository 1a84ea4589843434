package engine

import (
	"testing"
	"time"

	"github.com/ftahirops/logradar/model"
)

func makeEvent(normalized, raw string, level model.Severity) model.LogEvent {
	return model.LogEvent{
		Level:      level,
		Source:     "test",
		Raw:        raw,
		Normalized: normalized,
		Time:       time.Now(),
	}
}

func TestIngestCreatesPattern(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("GET /api/<NUM>", "GET /api/42", model.Info))
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	p := s.Pattern(0)
	if p.CountTotal != 1 || p.Canonical != "GET /api/<NUM>" {
		t.Errorf("unexpected pattern: %+v", p)
	}
}

func TestDuplicateNormalizedClusters(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("GET /api/<NUM>", "GET /api/1", model.Info))
	s.Ingest(makeEvent("GET /api/<NUM>", "GET /api/2", model.Info))
	s.Ingest(makeEvent("GET /api/<NUM>", "GET /api/3", model.Info))
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if got := s.Pattern(0).CountTotal; got != 3 {
		t.Errorf("CountTotal = %d, want 3", got)
	}
}

func TestDifferentNormalizedSeparatePatterns(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("GET /api/<NUM>", "GET /api/1", model.Info))
	s.Ingest(makeEvent("POST /api/<NUM>", "POST /api/1", model.Info))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
}

func TestSamplesCappedAtMax(t *testing.T) {
	s := NewPatternStore()
	for i := 0; i < 15; i++ {
		s.Ingest(makeEvent("pattern", "raw", model.Info))
	}
	samples := s.Pattern(0).Samples
	if len(samples) != maxSamples {
		t.Fatalf("len(Samples) = %d, want %d", len(samples), maxSamples)
	}
}

func TestLevelEscalates(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("same", "info line", model.Info))
	s.Ingest(makeEvent("same", "error line", model.Error))
	if got := s.Pattern(0).Level; got != model.Error {
		t.Errorf("Level = %v, want Error", got)
	}
}

func TestRate1mCountsEvents(t *testing.T) {
	s := NewPatternStore()
	for i := 0; i < 5; i++ {
		s.Ingest(makeEvent("p", "r", model.Info))
	}
	if got := s.Pattern(0).Rate1m(); got != 5.0 {
		t.Errorf("Rate1m() = %v, want 5", got)
	}
}

func TestClearCountersResets(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("p", "r", model.Info))
	s.Ingest(makeEvent("p", "r", model.Info))
	s.ClearCounters()
	p := s.Pattern(0)
	if p.CountTotal != 0 || p.Rate1m() != 0 {
		t.Errorf("ClearCounters left state: %+v", p)
	}
}

func TestResetClearsAll(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("p", "r", model.Info))
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestSortedIndicesByRate(t *testing.T) {
	s := NewPatternStore()
	s.Ingest(makeEvent("A", "a", model.Info))
	for i := 0; i < 3; i++ {
		s.Ingest(makeEvent("B", "b", model.Info))
	}
	sorted := s.SortedIndices()
	if s.Pattern(sorted[0]).Canonical != "B" {
		t.Errorf("sorted[0] canonical = %q, want B", s.Pattern(sorted[0]).Canonical)
	}
	if s.Pattern(sorted[1]).Canonical != "A" {
		t.Errorf("sorted[1] canonical = %q, want A", s.Pattern(sorted[1]).Canonical)
	}
}

func TestSparklineAccumulatesInCurrentBucket(t *testing.T) {
	s := NewPatternStore()
	for i := 0; i < 5; i++ {
		s.Ingest(makeEvent("p", "r", model.Info))
	}
	p := s.Pattern(0)
	if p.CurrentBucket != 5 {
		t.Errorf("CurrentBucket = %d, want 5", p.CurrentBucket)
	}
	if len(p.SparklineBuckets) != 0 {
		t.Errorf("SparklineBuckets should be empty before any tick, got %v", p.SparklineBuckets)
	}
}

func TestIntegrationWithParse(t *testing.T) {
	s := NewPatternStore()
	ev := ParseLine("src", "2025-01-01T00:00:00Z [ERROR] timeout from 10.0.0.1 after 500ms")
	s.Ingest(ev)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	p := s.Pattern(0)
	if p.Level != model.Error {
		t.Errorf("Level = %v, want Error", p.Level)
	}
}

func TestSignatureHashBucketHoldsMultipleDistinctSignatures(t *testing.T) {
	// index maps a hash to a slice of candidate indices precisely so that a
	// hash collision falls through to a signature comparison instead of
	// silently merging two unrelated patterns.
	s := NewPatternStore()
	s.Ingest(makeEvent("sig-a", "raw a", model.Info))
	s.Ingest(makeEvent("sig-b", "raw b", model.Info))
	h := signatureHash("sig-a")
	s.index[h] = append(s.index[h], 1) // simulate sig-b's index colliding into sig-a's bucket
	s.Ingest(makeEvent("sig-a", "raw a again", model.Info))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (collision must not merge)", s.Len())
	}
	if got := s.Pattern(0).CountTotal; got != 2 {
		t.Errorf("sig-a CountTotal = %d, want 2", got)
	}
	if got := s.Pattern(1).CountTotal; got != 1 {
		t.Errorf("sig-b CountTotal = %d, want 1", got)
	}
}

package engine

import (
	"hash/fnv"
	"sort"
	"time"

	"github.com/ftahirops/logradar/model"
)

const (
	window1m            = 60 * time.Second
	window5m            = 300 * time.Second
	maxSamples          = 10
	sparklineBucketSecs = 5 * time.Second
	sparklineBucketN    = 24
)

// storedPattern is the mutable bookkeeping a PatternStore keeps per cluster.
// model.Pattern is the read-only snapshot handed to the UI layer.
type storedPattern struct {
	pattern model.Pattern
}

func newStoredPattern(ev model.LogEvent, now time.Time) *storedPattern {
	return &storedPattern{pattern: model.Pattern{
		Canonical:            ev.Normalized,
		Signature:            ev.Normalized,
		Level:                ev.Level,
		CountTotal:           1,
		FirstSeen:            now,
		LastSeen:             now,
		Samples:              []string{ev.Raw},
		Trend:                model.TrendStable,
		Sources:              map[string]struct{}{ev.Source: {}},
		SparklineBuckets:     nil,
		CurrentBucket:        1,
		sparklineLastAdvance: now,
		timestamps1m:         []time.Time{now},
		timestamps5m:         []time.Time{now},
	}}
}

func (p *storedPattern) record(ev model.LogEvent, now time.Time) {
	pt := &p.pattern
	pt.Sources[ev.Source] = struct{}{}
	pt.CountTotal++
	pt.LastSeen = now
	if ev.Level.Rank() > pt.Level.Rank() {
		pt.Level = ev.Level
	}
	if len(pt.Samples) >= maxSamples {
		pt.Samples = pt.Samples[1:]
	}
	pt.Samples = append(pt.Samples, ev.Raw)
	pt.timestamps1m = append(pt.timestamps1m, now)
	pt.timestamps5m = append(pt.timestamps5m, now)
	pt.CurrentBucket++
}

// pruneWindows drops timestamps that have aged out of the 1m/5m windows and
// advances the sparkline, lazily, as real time has moved on — not on every
// ingest. The first elapsed bucket interval commits CurrentBucket into
// SparklineBuckets; any further elapsed intervals (a gap with no ticks, or
// an idle pattern) are backfilled with empty buckets so the sparkline stays
// time-accurate instead of compressing toward "now".
func (p *storedPattern) pruneWindows(now time.Time) {
	pt := &p.pattern
	pt.timestamps1m = dropOlderThan(pt.timestamps1m, now, window1m)
	pt.timestamps5m = dropOlderThan(pt.timestamps5m, now, window5m)

	advanced := false
	for now.Sub(pt.sparklineLastAdvance) >= sparklineBucketSecs {
		pt.sparklineLastAdvance = pt.sparklineLastAdvance.Add(sparklineBucketSecs)
		if !advanced {
			pt.SparklineBuckets = append(pt.SparklineBuckets, pt.CurrentBucket)
			pt.CurrentBucket = 0
			advanced = true
		} else {
			pt.SparklineBuckets = append(pt.SparklineBuckets, 0)
		}
		if len(pt.SparklineBuckets) > sparklineBucketN {
			pt.SparklineBuckets = pt.SparklineBuckets[1:]
		}
	}
}

func dropOlderThan(ts []time.Time, now time.Time, window time.Duration) []time.Time {
	i := 0
	for i < len(ts) && now.Sub(ts[i]) > window {
		i++
	}
	if i == 0 {
		return ts
	}
	return ts[i:]
}

func (p *storedPattern) updateTrend() {
	pt := &p.pattern
	r1, r5 := pt.Rate1m(), pt.Rate5m()
	switch {
	case r5 < 0.1:
		if r1 > 0 {
			pt.Trend = model.TrendUp
		} else {
			pt.Trend = model.TrendStable
		}
	case r1 > r5*1.5:
		pt.Trend = model.TrendUp
	case r1 < r5*0.5:
		pt.Trend = model.TrendDown
	default:
		pt.Trend = model.TrendStable
	}
	pt.Spike = r1 > r5*3.0 && pt.CountTotal > 10
}

func signatureHash(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

// PatternStore clusters log events by redacted signature and tracks rolling
// rate/trend/sparkline state per cluster. It is owned and mutated only by
// the UI goroutine (see the event loop's single-writer discipline), so it
// carries no internal locking.
type PatternStore struct {
	patterns []*storedPattern
	index    map[uint64][]int // hash -> candidate pattern indices, verified by signature
}

// NewPatternStore returns an empty store.
func NewPatternStore() *PatternStore {
	return &PatternStore{index: make(map[uint64][]int)}
}

// Ingest records ev into its cluster, creating a new pattern if no existing
// cluster shares its signature. Unlike a naive hash-indexed table, a hash
// hit is always confirmed by comparing the full signature before treating
// it as a match — two distinct signatures that happen to collide on a
// 64-bit hash get distinct patterns, not merged counts.
func (s *PatternStore) Ingest(ev model.LogEvent) {
	now := time.Now()
	h := signatureHash(ev.Normalized)
	for _, idx := range s.index[h] {
		if s.patterns[idx].pattern.Signature == ev.Normalized {
			s.patterns[idx].record(ev, now)
			return
		}
	}
	idx := len(s.patterns)
	s.patterns = append(s.patterns, newStoredPattern(ev, now))
	s.index[h] = append(s.index[h], idx)
}

// Tick prunes rolling windows and recomputes trend/spike for every pattern.
// Called once per UI tick, not per ingest.
func (s *PatternStore) Tick() {
	now := time.Now()
	for _, p := range s.patterns {
		p.pruneWindows(now)
		p.updateTrend()
	}
}

// Patterns returns the live pattern snapshots in storage order (stable
// across calls; use SortedIndices for a display ordering).
func (s *PatternStore) Patterns() []model.Pattern {
	out := make([]model.Pattern, len(s.patterns))
	for i, p := range s.patterns {
		out[i] = p.pattern
	}
	return out
}

// Pattern returns the pattern at idx.
func (s *PatternStore) Pattern(idx int) model.Pattern {
	return s.patterns[idx].pattern
}

// SortedIndices returns pattern indices ordered by descending 1-minute
// rate, breaking ties by most-recently-seen first.
func (s *PatternStore) SortedIndices() []int {
	idxs := make([]int, len(s.patterns))
	for i := range idxs {
		idxs[i] = i
	}
	sort.SliceStable(idxs, func(i, j int) bool {
		a, b := s.patterns[idxs[i]].pattern, s.patterns[idxs[j]].pattern
		if a.Rate1m() != b.Rate1m() {
			return a.Rate1m() > b.Rate1m()
		}
		return a.LastSeen.After(b.LastSeen)
	})
	return idxs
}

// ClearCounters zeroes per-pattern counts and rolling windows without
// forgetting the clusters themselves (the "c" reset-counters keybinding).
func (s *PatternStore) ClearCounters() {
	now := time.Now()
	for _, p := range s.patterns {
		pt := &p.pattern
		pt.CountTotal = 0
		pt.timestamps1m = nil
		pt.timestamps5m = nil
		pt.SparklineBuckets = nil
		pt.CurrentBucket = 0
		pt.sparklineLastAdvance = now
		pt.Trend = model.TrendStable
		pt.Spike = false
	}
}

// Reset discards all patterns (the "r" full-reset keybinding).
func (s *PatternStore) Reset() {
	s.patterns = nil
	s.index = make(map[uint64][]int)
}

// Len returns the number of distinct patterns currently tracked.
func (s *PatternStore) Len() int {
	return len(s.patterns)
}

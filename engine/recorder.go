package engine

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"github.com/ftahirops/logradar/model"
)

// Recorder appends every SourceEvent it observes to a JSON-lines file, so a
// live session can be replayed later with --replay.
type Recorder struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewRecorder wraps w as a JSON-lines event sink.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: json.NewEncoder(w)}
}

// Record appends ev. A write failure is swallowed: recording is a
// best-effort diagnostic aid, not part of the ingest path's correctness.
func (r *Recorder) Record(ev model.SourceEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.enc.Encode(recordedEvent{
		SourceID: ev.SourceID,
		Line:     ev.Line,
		Status:   ev.Status,
		Time:     ev.Time,
	})
}

type recordedEvent struct {
	SourceID string             `json:"source_id"`
	Line     string             `json:"line,omitempty"`
	Status   model.SourceStatus `json:"status"`
	Time     interface{}        `json:"time"`
}

// Player replays a recorded JSON-lines event log as a Ticker, one event per
// Next() call, ignoring the original inter-event timing (the spec has no
// requirement to reproduce wall-clock gaps, only ingest order).
type Player struct {
	mu     sync.Mutex
	events []model.SourceEvent
	pos    int
	paused bool
}

// NewPlayer parses every line of r as a recorded event. Malformed lines are
// skipped rather than aborting the whole replay.
func NewPlayer(r io.Reader) *Player {
	var events []model.SourceEvent
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		var re recordedEvent
		if err := json.Unmarshal(sc.Bytes(), &re); err != nil {
			continue
		}
		events = append(events, model.SourceEvent{
			SourceID: re.SourceID,
			Line:     re.Line,
			Status:   re.Status,
		})
	}
	return &Player{events: events}
}

// Next returns the next recorded event, or false once replay is paused or
// exhausted.
func (p *Player) Next() (model.SourceEvent, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.paused || p.pos >= len(p.events) {
		return model.SourceEvent{}, false
	}
	ev := p.events[p.pos]
	p.pos++
	return ev, true
}

// SetPaused toggles step-hold: while paused, Next always reports no event.
// No UI key binding calls it.
func (p *Player) SetPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.paused = paused
}

// Len returns the total recorded event count.
func (p *Player) Len() int {
	return len(p.events)
}

// Pos returns the current replay offset.
func (p *Player) Pos() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos
}

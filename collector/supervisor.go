// Package collector implements the per-source log producers (docker,
// command, file, azure) and the supervisor that fans their output into a
// single bounded channel for the UI to drain.
package collector

import (
	"context"
	"sync"

	"github.com/ftahirops/logradar/model"
)

// eventBufferSize bounds the fan-in channel. A full channel applies
// backpressure to every producer (none of them drop lines); there is no
// overflow policy, matching the "never a data-loss policy" requirement.
const eventBufferSize = 1024

// Producer is implemented by each source kind (docker/command/file/azure).
// Run blocks, pushing SourceEvents to events, until ctx is canceled or the
// underlying stream ends on its own.
type Producer interface {
	Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent)
}

// Supervisor owns the lifecycle of every active source: it starts one
// goroutine per source, cancels it to stop, and fans all output into a
// single channel that the UI goroutine is the sole reader of.
type Supervisor struct {
	mu      sync.Mutex
	events  chan model.SourceEvent
	cancels map[string]context.CancelFunc
}

// NewSupervisor creates an empty supervisor.
func NewSupervisor() *Supervisor {
	return &Supervisor{
		events:  make(chan model.SourceEvent, eventBufferSize),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Events returns the fan-in channel the UI's Ticker drains.
func (s *Supervisor) Events() <-chan model.SourceEvent {
	return s.events
}

// NewSourceID builds the canonical "<kind>/<name>" handle for a newly
// added source (see model.BuildSourceID); this id is what every other
// package means by "source id", not just an internal map key.
func NewSourceID(kind model.SourceKind, name string) string {
	return model.BuildSourceID(kind, name)
}

// Start spawns p under sourceID. The producer's context is canceled, which
// guarantees the spawned child process (if any) is killed, when Stop is
// called or the supervisor itself is shut down via StopAll.
func (s *Supervisor) Start(parent context.Context, sourceID string, p Producer) {
	ctx, cancel := context.WithCancel(parent)
	s.mu.Lock()
	s.cancels[sourceID] = cancel
	s.mu.Unlock()

	go func() {
		defer cancel()
		p.Run(ctx, sourceID, s.events)
	}()
}

// Stop cancels the named source's context, triggering kill-on-drop cleanup
// of any child process it owns.
func (s *Supervisor) Stop(sourceID string) {
	s.mu.Lock()
	cancel, ok := s.cancels[sourceID]
	delete(s.cancels, sourceID)
	s.mu.Unlock()
	if ok {
		cancel()
	}
}

// StopAll cancels every active source, for a clean shutdown on quit.
func (s *Supervisor) StopAll() {
	s.mu.Lock()
	cancels := make([]context.CancelFunc, 0, len(s.cancels))
	for id, cancel := range s.cancels {
		cancels = append(cancels, cancel)
		delete(s.cancels, id)
	}
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

func emitStatus(events chan<- model.SourceEvent, sourceID string, status model.SourceStatus, err error) {
	events <- model.SourceEvent{SourceID: sourceID, Status: status, Err: err}
}

func emitLine(events chan<- model.SourceEvent, sourceID, line string) {
	events <- model.SourceEvent{SourceID: sourceID, Line: line, Status: model.StatusRunning}
}

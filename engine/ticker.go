package engine

import "github.com/ftahirops/logradar/model"

// Ticker abstracts where SourceEvents come from: a live supervisor fan-in
// channel, or a recorded session being replayed.
type Ticker interface {
	// Next returns the next event and true, or zero value and false if no
	// event is currently available (the caller should try again next tick).
	Next() (model.SourceEvent, bool)
}

// ChanTicker adapts a live channel of SourceEvents (as produced by
// collector.Supervisor) to the Ticker interface.
type ChanTicker struct {
	Events <-chan model.SourceEvent
}

// Next drains at most one event from the channel without blocking.
func (c ChanTicker) Next() (model.SourceEvent, bool) {
	select {
	case ev, ok := <-c.Events:
		if !ok {
			return model.SourceEvent{}, false
		}
		return ev, true
	default:
		return model.SourceEvent{}, false
	}
}

package collector

import (
	"context"
	"testing"
	"time"

	"github.com/ftahirops/logradar/model"
)

type fakeProducer struct {
	lines   []string
	started chan struct{}
}

func (f fakeProducer) Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	emitStatus(events, sourceID, model.StatusRunning, nil)
	close(f.started)
	for _, l := range f.lines {
		select {
		case <-ctx.Done():
			return
		case events <- model.SourceEvent{SourceID: sourceID, Line: l, Status: model.StatusRunning}:
		}
	}
	<-ctx.Done()
	emitStatus(events, sourceID, model.StatusStopped, nil)
}

func TestSupervisorStartDeliversEvents(t *testing.T) {
	s := NewSupervisor()
	p := fakeProducer{lines: []string{"a", "b"}, started: make(chan struct{})}
	s.Start(context.Background(), "src1", p)

	<-p.started
	var got []string
	for i := 0; i < 3; i++ { // Running + "a" + "b"
		ev := <-s.Events()
		if ev.Line != "" {
			got = append(got, ev.Line)
		}
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got lines %v, want [a b]", got)
	}
	s.StopAll()
}

func TestSupervisorStopCancelsSource(t *testing.T) {
	s := NewSupervisor()
	p := fakeProducer{lines: nil, started: make(chan struct{})}
	s.Start(context.Background(), "src1", p)
	<-p.started

	// drain the Running status
	<-s.Events()

	s.Stop("src1")
	select {
	case ev := <-s.Events():
		if ev.Status != model.StatusStopped {
			t.Fatalf("expected Stopped after Stop(), got %v", ev.Status)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for stopped status")
	}
}

func TestNewSourceIDBuildsKindPrefixedID(t *testing.T) {
	if got := NewSourceID(model.SourceDocker, "web"); got != "docker/web" {
		t.Fatalf("NewSourceID(docker, web) = %q, want docker/web", got)
	}
	if got := NewSourceID(model.SourceCommand, "kubectl"); got != "cmd/kubectl" {
		t.Fatalf("NewSourceID(command, kubectl) = %q, want cmd/kubectl", got)
	}
	if a, b := NewSourceID(model.SourceDocker, "app"), NewSourceID(model.SourceFile, "app"); a == b {
		t.Fatalf("expected docker and file sources named %q to get distinct ids, both were %q", "app", a)
	}
}

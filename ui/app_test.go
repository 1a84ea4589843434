package ui

import (
	"context"
	"testing"

	"github.com/ftahirops/logradar/collector"
	"github.com/ftahirops/logradar/model"
)

type fakeTicker struct {
	events []model.SourceEvent
}

func (f *fakeTicker) Next() (model.SourceEvent, bool) {
	if len(f.events) == 0 {
		return model.SourceEvent{}, false
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, true
}

func mustTheme(t *testing.T, name string) Theme {
	t.Helper()
	th, ok := LookupTheme(name)
	if !ok {
		t.Fatalf("theme %q not found", name)
	}
	return th
}

// A replayed recording's events never go through AttachSource, so onTick
// must be able to stand up a SourceInfo for an id it has never seen,
// purely from the id's own "<kind>/<name>" shape.
func TestOnTickRegistersReplayedSourceFromID(t *testing.T) {
	ticker := &fakeTicker{events: []model.SourceEvent{
		{SourceID: "docker/web", Status: model.StatusRunning, Line: "boot ok"},
	}}
	m := NewModel(collector.NewSupervisor(), ticker, model.BuiltinProfiles(), "default", mustTheme(t, "matrix"), false, nil)
	m.onTick()

	src, ok := m.sources["docker/web"]
	if !ok {
		t.Fatal("expected onTick to register a synthetic source for a replayed id")
	}
	if src.Kind != model.SourceDocker || src.Name != "web" {
		t.Errorf("got Kind=%v Name=%q, want SourceDocker/web", src.Kind, src.Name)
	}
	if m.store.Len() != 1 {
		t.Errorf("store.Len() = %d, want the replayed line ingested", m.store.Len())
	}
}

func TestOnTickDropsEventWithUnparsableSourceID(t *testing.T) {
	ticker := &fakeTicker{events: []model.SourceEvent{
		{SourceID: "not-a-valid-id", Status: model.StatusRunning, Line: "x"},
	}}
	m := NewModel(collector.NewSupervisor(), ticker, model.BuiltinProfiles(), "default", mustTheme(t, "matrix"), false, nil)
	m.onTick()
	if len(m.sources) != 0 {
		t.Errorf("expected no source registered for an unparsable id, got %d", len(m.sources))
	}
}

func TestAttachSourceUsesFirstTokenForCommandID(t *testing.T) {
	m := NewModel(collector.NewSupervisor(), &fakeTicker{}, model.BuiltinProfiles(), "default", mustTheme(t, "matrix"), false, nil)
	id := m.AttachSource("kubectl logs -f deploy/api", model.SourceCommand, "kubectl logs -f deploy/api", fakeProducer{})
	if id != "cmd/kubectl" {
		t.Errorf("AttachSource command id = %q, want cmd/kubectl", id)
	}
	if m.sources[id].Name != "kubectl logs -f deploy/api" {
		t.Errorf("display name should keep the full command, got %q", m.sources[id].Name)
	}
}

func TestAttachSourceDockerAndFileWithSameNameDontCollide(t *testing.T) {
	m := NewModel(collector.NewSupervisor(), &fakeTicker{}, model.BuiltinProfiles(), "default", mustTheme(t, "matrix"), false, nil)
	dockerID := m.AttachSource("app", model.SourceDocker, "app", fakeProducer{})
	fileID := m.AttachSource("app", model.SourceFile, "app", fakeProducer{})
	if dockerID == fileID {
		t.Fatalf("docker and file sources named %q collided on id %q", "app", dockerID)
	}
}

type fakeProducer struct{}

func (fakeProducer) Run(_ context.Context, _ string, _ chan<- model.SourceEvent) {}

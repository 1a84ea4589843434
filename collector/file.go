package collector

import (
	"context"

	"github.com/ftahirops/logradar/model"
)

// FileProducer tails a local file from its first line with `tail -f`,
// following appends; a rotated file is not reopened. As with Docker,
// attaching to an existing file is immediate, so Status:Running fires on
// spawn.
type FileProducer struct {
	Path string
}

func (f FileProducer) Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	streamCommand(ctx, sourceID, events, true, false, "tail", "-f", "-n", "+1", f.Path)
}

package collector

import (
	"context"

	"github.com/ftahirops/logradar/model"
)

// CommandProducer streams stdout from an arbitrary shell command, e.g. a
// `kubectl logs -f` or `ssh host tail -f /var/log/app.log`; stderr is
// discarded, since an arbitrary command's stderr chatter (shell warnings,
// unrelated tool noise) isn't part of its log contract the way a
// container's is. Unlike Docker, an arbitrary command might buffer or take
// time to produce its first line, so Status:Running is only reported once
// real output has been seen.
type CommandProducer struct {
	Shell string
}

func (c CommandProducer) Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	streamCommand(ctx, sourceID, events, false, false, "sh", "-c", c.Shell)
}

package collector

import (
	"context"

	"github.com/ftahirops/logradar/model"
)

// DockerProducer streams `docker logs -f` for one container, both stdout
// and stderr (a container's logs are routed to either, and both matter).
// Status:Running is reported the instant the process spawns: docker
// attaches to the container's log stream immediately, there is no
// meaningful "waiting for first line" gap the way there is for an
// arbitrary shell command.
type DockerProducer struct {
	Container string
}

func (d DockerProducer) Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	streamCommand(ctx, sourceID, events, true, true, "docker", "logs", "-f", "--tail", "100", d.Container)
}

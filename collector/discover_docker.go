package collector

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ftahirops/logradar/model"
)

// DiscoverDocker lists running containers via `docker ps`. It is spawned
// as a one-shot background task by the UI, not a Producer, since discovery
// results are consumed once rather than streamed.
func DiscoverDocker(ctx context.Context) ([]model.DockerContainer, error) {
	cmd := exec.CommandContext(ctx, "docker", "ps", "--format", "{{.ID}}\t{{.Names}}\t{{.Image}}\t{{.Status}}")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("docker not found: %w", err)
	}

	var containers []model.DockerContainer
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 4)
		if len(parts) < 4 {
			continue
		}
		containers = append(containers, model.DockerContainer{
			ID:     parts[0],
			Name:   parts[1],
			Image:  parts[2],
			Status: parts[3],
		})
	}
	return containers, nil
}

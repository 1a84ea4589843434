package collector

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/ftahirops/logradar/model"
)

// streamCommand spawns name/args under ctx and forwards every line of
// output to events as it arrives. ctx cancellation kills the process:
// there is no separate cleanup step, since exec.CommandContext already
// kills the started process when ctx is canceled. Only that process is
// signaled; processes it spawned itself are not.
//
// emitRunningOnSpawn controls whether Status: Running is emitted the
// instant the process starts (docker, file) or only once the first line of
// output has actually arrived (command, azure) — matching each source
// kind's "is this thing actually producing data yet" contract.
//
// includeStderr additionally wires the child's stderr into the same line
// stream (docker, which the spec requires to capture both streams);
// sources that must discard stderr (command) leave it false.
//
// The returned bool is false when the command could not be started, or
// exited with an error (other than ctx cancellation) before producing any
// output; a clean exit or a cancellation returns true even if no line was
// read. Callers that always run a source to completion
// (docker, command, file, the azure CLI fallback) ignore it; the azure
// fast path uses it to decide whether a failure should still fall back to
// the CLI, since "attached, then errored" and "never attached" call for
// different handling.
func streamCommand(ctx context.Context, sourceID string, events chan<- model.SourceEvent, emitRunningOnSpawn, includeStderr bool, name string, args ...string) bool {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		emitStatus(events, sourceID, model.StatusError, fmt.Errorf("%s: %w", name, err))
		return false
	}
	var stderr io.ReadCloser
	if includeStderr {
		stderr, err = cmd.StderrPipe()
		if err != nil {
			emitStatus(events, sourceID, model.StatusError, fmt.Errorf("%s: %w", name, err))
			return false
		}
	}

	if err := cmd.Start(); err != nil {
		emitStatus(events, sourceID, model.StatusError, fmt.Errorf("%s not found: %w", name, err))
		return false
	}
	if emitRunningOnSpawn {
		emitStatus(events, sourceID, model.StatusRunning, nil)
	}

	var sawOutput atomic.Bool
	sawOutput.Store(emitRunningOnSpawn)

	scan := func(r io.Reader) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 64*1024), 1<<20)
		for scanner.Scan() {
			if !sawOutput.Swap(true) {
				emitStatus(events, sourceID, model.StatusRunning, nil)
			}
			emitLine(events, sourceID, scanner.Text())
		}
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() { defer wg.Done(); scan(stdout) }()
	if stderr != nil {
		wg.Add(1)
		go func() { defer wg.Done(); scan(stderr) }()
	}
	wg.Wait()

	if err := cmd.Wait(); err != nil && ctx.Err() == nil {
		emitStatus(events, sourceID, model.StatusError, err)
		return sawOutput.Load()
	}
	emitStatus(events, sourceID, model.StatusStopped, nil)
	return true
}

package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrToolNotFound is returned when an external tool binary cannot be located.
var ErrToolNotFound = errors.New("tool not found")

// maxOutputLine bounds a single line of tool output.
const maxOutputLine = 16 * 1024 * 1024

// ProcessAdapter abstracts running the external tools the generator drives.
type ProcessAdapter interface {
	// Run executes name with args in dir and waits for it to exit.
	// Returns the combined stdout/stderr output and any error.
	Run(ctx context.Context, dir, name string, args ...string) (output string, err error)

	// Stdout executes name like Run but returns stdout alone, for tools whose
	// stdout is a machine-readable document.
	Stdout(ctx context.Context, dir, name string, args ...string) (stdout []byte, err error)

	// LookPath resolves a binary name to an executable path.
	LookPath(name string) (string, error)
}

// LocalProcessAdapter provides a concrete implementation using os/exec.
// No timeout is applied: callers wait for the tool to finish.
type LocalProcessAdapter struct{}

// NewLocalProcessAdapter constructs a LocalProcessAdapter.
func NewLocalProcessAdapter() *LocalProcessAdapter {
	return &LocalProcessAdapter{}
}

// Run executes the command, draining stdout and stderr concurrently.
func (a *LocalProcessAdapter) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	var (
		mu       sync.Mutex
		combined strings.Builder
	)

	collect := func(line string) {
		mu.Lock()
		defer mu.Unlock()

		combined.WriteString(line)
		combined.WriteByte('\n')
	}

	err := a.run(ctx, dir, name, args, collect, collect)

	return combined.String(), err
}

// Stdout executes the command and returns its stdout; stderr is logged.
func (a *LocalProcessAdapter) Stdout(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	var (
		stdout strings.Builder
		stderr strings.Builder
	)

	err := a.run(ctx, dir, name, args,
		func(line string) {
			stdout.WriteString(line)
			stdout.WriteByte('\n')
		},
		func(line string) {
			stderr.WriteString(line)
			stderr.WriteByte('\n')
		},
	)
	if err != nil && stderr.Len() > 0 {
		return []byte(stdout.String()), fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()))
	}

	return []byte(stdout.String()), err
}

func (a *LocalProcessAdapter) run(ctx context.Context, dir, name string, args []string, onStdout, onStderr func(string)) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe for %s: %w", name, err)
	}

	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe for %s: %w", name, err)
	}

	slog.Debug("Running external tool", "tool", name, "args", args, "dir", dir)

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrToolNotFound, name)
		}

		return fmt.Errorf("start %s: %w", name, err)
	}

	var group errgroup.Group

	group.Go(func() error { return drain(stdoutPipe, name, "stdout", onStdout) })
	group.Go(func() error { return drain(stderrPipe, name, "stderr", onStderr) })

	drainErr := group.Wait()
	waitErr := cmd.Wait()

	if waitErr != nil {
		return fmt.Errorf("%s: %w", name, waitErr)
	}

	if drainErr != nil {
		return fmt.Errorf("read %s output: %w", name, drainErr)
	}

	return nil
}

func drain(r io.Reader, tool, stream string, onLine func(string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOutputLine)

	for scanner.Scan() {
		line := scanner.Text()
		slog.Debug("External tool output", "tool", tool, "stream", stream, "line", line)
		onLine(line)
	}

	if err := scanner.Err(); err != nil {
		// Keep reading so the child never blocks on a full pipe before Wait.
		_, _ = io.Copy(io.Discard, r)

		return err
	}

	return nil
}

// LookPath resolves a binary name to an executable path.
func (a *LocalProcessAdapter) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	return path, nil
}

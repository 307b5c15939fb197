// Package command runs code by piping it to an interpreter's stdin.
// It provides no isolation: the interpreter runs with the caller's rights.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/safedep/dry/log"
	corerunner "github.com/safedep/rewind/core/runner"
)

// Name is the runner type.
const Name = "command"

// waitDelay bounds how long output pipes are drained after the process is
// killed, for interpreters whose children keep them open.
const waitDelay = 500 * time.Millisecond

// Runner executes code with an external interpreter.
type Runner struct {
	argv    []string
	timeout time.Duration
}

// New creates a runner for argv, e.g. ["python3", "-"].
// A non-positive timeout disables the deadline.
func New(argv []string, timeout time.Duration) (*Runner, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, errors.New("command runner needs an interpreter")
	}
	return &Runner{
		argv:    append([]string(nil), argv...),
		timeout: timeout,
	}, nil
}

func (r *Runner) Name() string { return Name }

// Run pipes code to the interpreter and waits for it to exit.
func (r *Runner) Run(ctx context.Context, code string) (*corerunner.Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, r.argv[0], r.argv[1:]...)
	cmd.Stdin = strings.NewReader(code)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	log.Debugf("Running code with %s", strings.Join(r.argv, " "))

	start := time.Now()
	err := cmd.Run()
	result := &corerunner.Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		result.TimedOut = true
		result.ExitCode = -1
		return result, nil
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, fmt.Errorf("failed to run %s: %w", r.argv[0], err)
	}

	return result, nil
}

var _ corerunner.Runner = (*Runner)(nil)

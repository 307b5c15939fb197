// Package runner defines the collaborator that executes a code version.
package runner

import (
	"context"
	"errors"
	"time"
)

// ErrUnknownRunner is returned when no runner is registered for a type.
var ErrUnknownRunner = errors.New("unknown runner")

// Result is the outcome of running a code version.
type Result struct {
	Stdout   string        `json:"stdout"`
	Stderr   string        `json:"stderr"`
	ExitCode int           `json:"exit_code"`
	Duration time.Duration `json:"duration"`
	// TimedOut is set when the run was stopped by its deadline.
	TimedOut bool `json:"timed_out,omitempty"`
}

// Success reports whether the run finished with exit code zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && !r.TimedOut
}

// Runner executes source code and captures its output.
type Runner interface {
	// Name returns the runner type.
	Name() string
	// Run executes code. A non-zero exit is reported through Result, not error.
	Run(ctx context.Context, code string) (*Result, error)
}

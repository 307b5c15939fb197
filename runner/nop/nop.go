package nop

import (
	"context"

	corerunner "github.com/safedep/rewind/core/runner"
)

// Name is the runner type.
const Name = "nop"

// Runner echoes the code back without executing it.
type Runner struct{}

func New() *Runner {
	return &Runner{}
}

func (r *Runner) Name() string { return Name }

func (r *Runner) Run(ctx context.Context, code string) (*corerunner.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &corerunner.Result{Stdout: code}, nil
}

var _ corerunner.Runner = (*Runner)(nil)

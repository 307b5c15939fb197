// Package runner builds the configured code runner.
package runner

import (
	"fmt"
	"sort"
	"sync"

	"github.com/safedep/rewind/config"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/runner/command"
	"github.com/safedep/rewind/runner/nop"
)

// Registry manages registered runners.
type Registry struct {
	mu      sync.RWMutex
	runners map[string]corerunner.Runner
}

// NewRegistry creates a new runner registry.
func NewRegistry() *Registry {
	return &Registry{
		runners: make(map[string]corerunner.Runner),
	}
}

// Register adds a runner to the registry.
func (r *Registry) Register(runner corerunner.Runner) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runners[runner.Name()] = runner
}

// Get retrieves a runner by type name.
func (r *Registry) Get(name string) (corerunner.Runner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	runner, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", corerunner.ErrUnknownRunner, name)
	}
	return runner, nil
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.runners))
	for name := range r.runners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildRegistry registers every runner type available for cfg.
func BuildRegistry(cfg config.RunnerConfig) *Registry {
	registry := NewRegistry()
	registry.Register(nop.New())

	if cmd, err := command.New(cfg.Command, cfg.Timeout); err == nil {
		registry.Register(cmd)
	}

	return registry
}

// FromConfig returns the runner selected by cfg.Type.
func FromConfig(cfg config.RunnerConfig) (corerunner.Runner, error) {
	return BuildRegistry(cfg).Get(cfg.Type)
}

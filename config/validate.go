package config

import (
	"fmt"

	"github.com/safedep/rewind/core/bucket"
)

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.Playback.StepDuration <= 0 {
		return fmt.Errorf("playback.step_duration must be positive")
	}

	// Bucket keys are computed in whole milliseconds
	if !bucket.ValidInterval(cfg.Buckets.Interval) {
		return fmt.Errorf("buckets.interval must be at least 1ms and a whole number of milliseconds")
	}

	if !isValidColorMode(cfg.Display.Colors) {
		return fmt.Errorf("invalid display.colors: %s (must be auto, always, or never)", cfg.Display.Colors)
	}

	if !isValidTimezoneMode(cfg.Display.Timezone) {
		return fmt.Errorf("invalid display.timezone: %s (must be local or utc)", cfg.Display.Timezone)
	}

	if err := validateRunner(cfg.Runner); err != nil {
		return err
	}

	return nil
}

// isValidColorMode returns true if the given mode is valid.
func isValidColorMode(mode ColorMode) bool {
	switch mode {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// isValidTimezoneMode returns true if the given mode is valid.
func isValidTimezoneMode(mode TimezoneMode) bool {
	switch mode {
	case TimezoneLocal, TimezoneUTC:
		return true
	default:
		return false
	}
}

// knownRunnerTypes lists the valid runner types.
var knownRunnerTypes = map[string]bool{
	RunnerNop:     true,
	RunnerCommand: true,
}

func validateRunner(r RunnerConfig) error {
	if !knownRunnerTypes[r.Type] {
		return fmt.Errorf("runner.type: unknown type %q", r.Type)
	}
	if r.Type == RunnerCommand && len(r.Command) == 0 {
		return fmt.Errorf("runner.command must not be empty for the command runner")
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("runner.timeout must be positive")
	}
	return nil
}

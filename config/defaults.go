package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets all default configuration values.
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.path", "") // Empty means use platform default

	// Playback defaults
	v.SetDefault("playback.step_duration", 2*time.Second)
	v.SetDefault("playback.autoplay", true)

	// Sparkline defaults
	v.SetDefault("buckets.interval", 30*time.Minute)

	// Display defaults
	v.SetDefault("display.colors", "auto")
	v.SetDefault("display.timezone", "local")
	v.SetDefault("display.theme", "github")

	// Runner defaults
	v.SetDefault("runner.type", RunnerNop)
	v.SetDefault("runner.command", []string{"python3", "-"})
	v.SetDefault("runner.timeout", 10*time.Second)
}

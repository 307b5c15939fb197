package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return configFile
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, "", cfg.Storage.Path)

	assert.Equal(t, 2*time.Second, cfg.Playback.StepDuration)
	assert.True(t, cfg.Playback.Autoplay)

	assert.Equal(t, 30*time.Minute, cfg.Buckets.Interval)

	assert.Equal(t, ColorAuto, cfg.Display.Colors)
	assert.Equal(t, TimezoneLocal, cfg.Display.Timezone)
	assert.Equal(t, "github", cfg.Display.Theme)

	assert.Equal(t, RunnerNop, cfg.Runner.Type)
	assert.Equal(t, []string{"python3", "-"}, cfg.Runner.Command)
	assert.Equal(t, 10*time.Second, cfg.Runner.Timeout)

	assert.NoError(t, validate(cfg))
}

func TestLoad_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `
storage:
  path: /tmp/rewind-test.db
playback:
  step_duration: 500ms
  autoplay: false
buckets:
  interval: 1h
display:
  colors: always
  timezone: utc
  theme: monokai
runner:
  type: command
  command: ["sh", "-s"]
  timeout: 3s
`)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/rewind-test.db", cfg.GetDatabasePath())
	assert.Equal(t, 500*time.Millisecond, cfg.Playback.StepDuration)
	assert.False(t, cfg.Playback.Autoplay)
	assert.Equal(t, time.Hour, cfg.Buckets.Interval)
	assert.Equal(t, ColorAlways, cfg.Display.Colors)
	assert.Equal(t, TimezoneUTC, cfg.Display.Timezone)
	assert.Equal(t, time.UTC, cfg.Location())
	assert.Equal(t, "monokai", cfg.Display.Theme)
	assert.Equal(t, RunnerCommand, cfg.Runner.Type)
	assert.Equal(t, []string{"sh", "-s"}, cfg.Runner.Command)
	assert.Equal(t, 3*time.Second, cfg.Runner.Timeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "zero step duration",
			content: "playback:\n  step_duration: 0s\n",
			wantErr: "playback.step_duration must be positive",
		},
		{
			name:    "negative bucket interval",
			content: "buckets:\n  interval: -5m\n",
			wantErr: "buckets.interval must be at least 1ms",
		},
		{
			name:    "sub-millisecond bucket interval",
			content: "buckets:\n  interval: 10us\n",
			wantErr: "buckets.interval must be at least 1ms",
		},
		{
			name:    "fractional millisecond bucket interval",
			content: "buckets:\n  interval: 1500us\n",
			wantErr: "whole number of milliseconds",
		},
		{
			name:    "color mode",
			content: "display:\n  colors: invalid\n",
			wantErr: "invalid display.colors",
		},
		{
			name:    "timezone mode",
			content: "display:\n  timezone: invalid\n",
			wantErr: "invalid display.timezone",
		},
		{
			name:    "runner type",
			content: "runner:\n  type: docker\n",
			wantErr: `runner.type: unknown type "docker"`,
		},
		{
			name:    "empty runner command",
			content: "runner:\n  type: command\n  command: []\n",
			wantErr: "runner.command must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_NonExistentFile_UsesDefaults(t *testing.T) {
	nonExistentFile := filepath.Join(t.TempDir(), "nonexistent.yaml")

	cfg, err := Load(nonExistentFile)
	require.NoError(t, err)
	assert.Equal(t, Default().Playback, cfg.Playback)
	assert.Equal(t, RunnerNop, cfg.Runner.Type)
}

func TestLoad_MalformedYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
playback:
  step_duration: 2s
  this is not valid yaml
`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("REWIND_PLAYBACK_STEP_DURATION", "750ms")

	cfg, err := Load(writeConfig(t, "display:\n  colors: never\n"))
	require.NoError(t, err)

	assert.Equal(t, 750*time.Millisecond, cfg.Playback.StepDuration)
}

func TestConfig_GetDatabasePath_Default(t *testing.T) {
	cfg := Default()
	assert.Contains(t, cfg.GetDatabasePath(), "rewind.db")
}

func TestConfig_ShouldUseColors(t *testing.T) {
	cfg := Default()

	cfg.Display.Colors = ColorAlways
	assert.True(t, cfg.ShouldUseColors())

	cfg.Display.Colors = ColorNever
	assert.False(t, cfg.ShouldUseColors())
}

func TestConfig_Location(t *testing.T) {
	cfg := Default()
	assert.Equal(t, time.Local, cfg.Location())
}

func TestResolvePaths(t *testing.T) {
	paths := ResolvePaths()

	assert.NotEmpty(t, paths.ConfigDir)
	assert.NotEmpty(t, paths.DataDir)
	assert.NotEmpty(t, paths.CacheDir)
	assert.Contains(t, paths.ConfigFile, "config.yaml")
	assert.Contains(t, paths.DatabaseFile, "rewind.db")
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))

	require.NoError(t, EnsureDirectories())
}

func TestIsValidColorMode(t *testing.T) {
	assert.True(t, isValidColorMode(ColorAuto))
	assert.True(t, isValidColorMode(ColorAlways))
	assert.True(t, isValidColorMode(ColorNever))
	assert.False(t, isValidColorMode(ColorMode("")))
}

func TestIsValidTimezoneMode(t *testing.T) {
	assert.True(t, isValidTimezoneMode(TimezoneLocal))
	assert.True(t, isValidTimezoneMode(TimezoneUTC))
	assert.False(t, isValidTimezoneMode(TimezoneMode("mars")))
}

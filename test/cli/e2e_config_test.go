package cli_test

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/safedep/rewind/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "show",
			args: []string{"config", "show"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "playback.step_duration")
				assert.Contains(t, stdout, "runner.type")
			},
		},
		{
			name: "show_json",
			args: []string{"config", "show", "--format", "json"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				var result map[string]json.RawMessage
				require.NoError(t, json.Unmarshal([]byte(stdout), &result))
				assert.Contains(t, result, "values")
			},
		},
		{
			name: "get_runner_type",
			args: []string{"config", "get", "runner.type"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "nop\n", stdout)
			},
		},
		{
			name: "get_nonexistent_key",
			args: []string{"config", "get", "nonexistent.key"},
			assert: func(t *testing.T, stdout string, err error) {
				assertExitCode(t, err, cli.ExitConfig)
				assert.Contains(t, err.Error(), "key not found")
			},
		},
		{
			name: "set_value",
			args: []string{"config", "set", "playback.step_duration", "500ms"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Set playback.step_duration = 500ms")
			},
		},
		{
			name: "set_invalid_value",
			args: []string{"config", "set", "runner.type", "docker"},
			assert: func(t *testing.T, stdout string, err error) {
				assertExitCode(t, err, cli.ExitConfig)
			},
		},
		{
			name: "set_unknown_key",
			args: []string{"config", "set", "logging.level", "full"},
			assert: func(t *testing.T, stdout string, err error) {
				assertExitCode(t, err, cli.ExitConfig)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestConfig_SetAndVerify(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("config", "set", "playback.autoplay", "false")
	require.NoError(t, err)

	stdout, _, err := env.run("config", "get", "playback.autoplay")
	require.NoError(t, err)
	assert.Contains(t, stdout, "false")

	// the database path survives the rewrite
	stdout, _, err = env.run("config", "get", "storage.path")
	require.NoError(t, err)
	assert.Contains(t, stdout, env.dbPath)
}

func TestConfig_Reset(t *testing.T) {
	env := newTestEnv(t)

	stdout, _, err := env.run("config", "reset")
	require.NoError(t, err)
	assert.Contains(t, stdout, "reset to defaults")

	_, err = os.Stat(env.configPath)
	assert.True(t, os.IsNotExist(err))

	stdout, _, err = env.run("config", "get", "display.theme")
	require.NoError(t, err)
	assert.Contains(t, stdout, "github")
}

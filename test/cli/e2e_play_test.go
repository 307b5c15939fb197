package cli_test

import (
	"strings"
	"testing"

	"github.com/safedep/rewind/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlay_Plain_PlaysToTheEnd(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("play", "ada", "--plain", "--step", "5ms")
	require.NoError(t, err)

	first := strings.Index(stdout, "1/3")
	second := strings.Index(stdout, "2/3")
	third := strings.Index(stdout, "3/3")
	require.True(t, first >= 0 && second > first && third > second, "steps out of order:\n%s", stdout)
	assert.Equal(t, 1, strings.Count(stdout, "3/3"))
	assert.Contains(t, stdout, "print(3)")
}

func TestPlay_NonTerminalOutputIsPlain(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("play", "Ada")
	require.NoError(t, err)
	assert.Contains(t, stdout, "3/3")
}

func TestPlay_Plain_Paused(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("play", "Ada", "--plain", "--paused")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1/3")
	assert.NotContains(t, stdout, "2/3")
}

func TestPlay_Plain_SeekThenPause(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("play", "Ada", "--plain", "--paused", "--at", "2024-03-01T10:01:00Z")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2/3")
	assert.Contains(t, stdout, "Mar/01 10:01")
	assert.NotContains(t, stdout, "1/3")
	assert.NotContains(t, stdout, "3/3")
}

func TestPlay_Plain_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown_member", []string{"play", "nobody", "--plain"}, cli.ExitMemberNotFound},
		{"seek_miss", []string{"play", "Ada", "--plain", "--at", "2024-03-01T10:02:00Z"}, cli.ExitMemberNotFound},
		{"no_member", []string{"play", "--plain"}, cli.ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.importSample()
			_, _, err := env.run(tt.args...)
			assertExitCode(t, err, tt.code)
		})
	}
}

func TestPlay_Plain_NoVersions(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("play", "Grace", "--plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No versions for Grace.")
}

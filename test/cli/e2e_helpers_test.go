package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safedep/rewind/cli"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleExport = `{"id":"a1","type":"code_version","member":{"id":"m-ada","name":"Ada"},"createdAt":"2024-03-01T10:00:00Z","data":{"code":"print(1)\n"}}
{"id":"a2","type":"run_code","member":{"id":"m-ada","name":"Ada"},"createdAt":"2024-03-01T10:01:00Z","data":{"code":"print(2)\n"}}
{"id":"a3","type":"code_version","member":{"id":"m-ada","name":"Ada"},"createdAt":"2024-03-01T10:05:00Z","data":{"code":"print(2)\nprint(3)\n"}}
{"id":"a4","type":"time_spent","member":{"id":"m-ada","name":"Ada"},"createdAt":"2024-03-01T10:06:00Z","data":{"seconds":5400}}
{"id":"g1","type":"time_spent","member":{"id":"m-grace","name":"Grace"},"createdAt":"2024-03-01T11:00:00Z","data":{"seconds":60}}
{"id":"x1","type":"page_view","member":{"id":"m-ada","name":"Ada"},"createdAt":"2024-03-01T10:07:00Z","data":{}}
`

var base = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	t          *testing.T
	tmpDir     string
	dbPath     string
	configPath string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithConfig(t, "")
}

func newTestEnvWithConfig(t *testing.T, configYAML string) *testEnv {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	configPath := filepath.Join(tmpDir, "config.yaml")

	if configYAML == "" {
		configYAML = fmt.Sprintf(`storage:
  path: %s
playback:
  step_duration: 10ms
display:
  colors: never
  timezone: utc
runner:
  type: nop
`, dbPath)
	}

	err := os.WriteFile(configPath, []byte(configYAML), 0o600)
	require.NoError(t, err)

	return &testEnv{
		t:          t,
		tmpDir:     tmpDir,
		dbPath:     dbPath,
		configPath: configPath,
	}
}

func (env *testEnv) run(args ...string) (stdout, stderr string, err error) {
	env.t.Helper()

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)

	fullArgs := append([]string{"--config", env.configPath, "--no-color"}, args...)
	rootCmd.SetArgs(fullArgs)
	err = rootCmd.ExecuteContext(context.Background())
	return outBuf.String(), errBuf.String(), err
}

func (env *testEnv) writeExport(content string) string {
	env.t.Helper()

	path := filepath.Join(env.tmpDir, "export.jsonl")
	require.NoError(env.t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// importSample imports sampleExport and fails the test on error.
func (env *testEnv) importSample() {
	env.t.Helper()

	_, _, err := env.run("import", env.writeExport(sampleExport))
	require.NoError(env.t, err)
}

func (env *testEnv) openStore() (storage.Store, func()) {
	env.t.Helper()

	store, err := storage.NewSQLiteStore(env.dbPath)
	require.NoError(env.t, err)
	err = store.Init(context.Background())
	require.NoError(env.t, err)

	return store, func() {
		err := store.Close()
		require.NoError(env.t, err)
	}
}

func (env *testEnv) seedStore(fn func(ctx context.Context, store storage.Store)) {
	env.t.Helper()

	store, cleanup := env.openStore()
	defer cleanup()

	fn(context.Background(), store)
}

// seedMember stores a member with one version per offset from base.
func (env *testEnv) seedMember(name string, offsets ...time.Duration) *member.Member {
	env.t.Helper()

	m := member.NewMember(name)
	env.seedStore(func(ctx context.Context, store storage.Store) {
		require.NoError(env.t, store.SaveMember(ctx, m))
		for i, off := range offsets {
			v := version.NewVersion(m.ID, base.Add(off), fmt.Sprintf("print(%d)\n", i+1))
			_, err := store.SaveVersion(ctx, v)
			require.NoError(env.t, err)
		}
	})
	return m
}

func assertExitCode(t *testing.T, err error, code int) {
	t.Helper()

	require.Error(t, err)
	var coder cli.ExitCoder
	require.True(t, errors.As(err, &coder), "error %v carries no exit code", err)
	assert.Equal(t, code, coder.ExitCode())
}

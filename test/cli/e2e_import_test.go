package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/safedep/rewind/cli"
	"github.com/safedep/rewind/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	tests := []struct {
		name   string
		args   func(env *testEnv) []string
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "table",
			args: func(env *testEnv) []string {
				return []string{"import", env.writeExport(sampleExport)}
			},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Imported")
				assert.Contains(t, stdout, "Versions")
				assert.Contains(t, stdout, "Skipped")
			},
		},
		{
			name: "json",
			args: func(env *testEnv) []string {
				return []string{"import", env.writeExport(sampleExport), "--format", "json"}
			},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				var view tui.ImportView
				require.NoError(t, json.Unmarshal([]byte(stdout), &view))
				assert.Equal(t, 2, view.Members)
				assert.Equal(t, 3, view.Versions)
				assert.Equal(t, 2, view.SpentEntries)
				assert.Equal(t, 1, view.Skipped)
				assert.Zero(t, view.Invalid)
			},
		},
		{
			name: "empty_export",
			args: func(env *testEnv) []string {
				return []string{"import", env.writeExport(""), "--format", "json"}
			},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				var view tui.ImportView
				require.NoError(t, json.Unmarshal([]byte(stdout), &view))
				assert.Zero(t, view.Versions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			stdout, _, err := env.run(tt.args(env)...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestImport_Twice_StoresNothingNew(t *testing.T) {
	env := newTestEnv(t)
	env.importSample()

	stdout, _, err := env.run("import", env.writeExport(sampleExport), "--format", "json")
	require.NoError(t, err)

	var view tui.ImportView
	require.NoError(t, json.Unmarshal([]byte(stdout), &view))
	assert.Zero(t, view.Versions)
	assert.Zero(t, view.SpentEntries)
	assert.Equal(t, 5, view.Duplicates)

	stdout, _, err = env.run("members", "--format", "json")
	require.NoError(t, err)

	var members []tui.MemberView
	require.NoError(t, json.Unmarshal([]byte(stdout), &members))
	require.Len(t, members, 2)
	assert.Equal(t, int64(5400), members[0].SpentSeconds)
}

func TestImport_MissingFile(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("import", env.tmpDir+"/missing.jsonl")
	assertExitCode(t, err, cli.ExitImportFailed)
}

func TestImport_RequiresFile(t *testing.T) {
	env := newTestEnv(t)

	_, _, err := env.run("import")
	assert.Error(t, err)
}

package cli_test

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/safedep/rewind/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMembers(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		seed   bool
		assert func(t *testing.T, stdout string, err error)
	}{
		{
			name: "empty_table",
			args: []string{"members"},
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "No members found")
			},
		},
		{
			name: "empty_json",
			args: []string{"members", "--format", "json"},
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				assert.JSONEq(t, "[]", stdout)
			},
		},
		{
			name: "table",
			args: []string{"members"},
			seed: true,
			assert: func(t *testing.T, stdout string, err error) {
				assert.NoError(t, err)
				assert.Contains(t, stdout, "Members (2)")
				assert.Contains(t, stdout, "Ada")
				assert.Contains(t, stdout, "Grace")
				assert.Contains(t, stdout, "1h 30m")
				assert.Contains(t, stdout, "Mar/01/2024 10:05")
			},
		},
		{
			name: "json",
			args: []string{"members", "--format", "json"},
			seed: true,
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				var members []tui.MemberView
				require.NoError(t, json.Unmarshal([]byte(stdout), &members))
				require.Len(t, members, 2)

				ada, grace := members[0], members[1]
				assert.Equal(t, "Ada", ada.Name)
				assert.Equal(t, 3, ada.VersionCount)
				assert.Equal(t, int64(5400), ada.SpentSeconds)
				assert.True(t, ada.LastVersionAt.Equal(base.Add(5*time.Minute)))
				assert.Equal(t, []int{3}, ada.Activity)
				assert.Equal(t, 30*time.Minute, ada.Interval)

				assert.Equal(t, "Grace", grace.Name)
				assert.Zero(t, grace.VersionCount)
				assert.True(t, grace.LastVersionAt.IsZero())
				assert.Empty(t, grace.Activity)
			},
		},
		{
			name: "csv",
			args: []string{"members", "--format", "csv"},
			seed: true,
			assert: func(t *testing.T, stdout string, err error) {
				require.NoError(t, err)
				records, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
				require.NoError(t, err)
				assert.Len(t, records, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			if tt.seed {
				env.importSample()
			}
			stdout, _, err := env.run(tt.args...)
			tt.assert(t, stdout, err)
		})
	}
}

func TestMembers_IntervalFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.seedMember("Lin", 0, time.Minute, 3*time.Minute)

	_, _, err := env.run("config", "set", "buckets.interval", "1m")
	require.NoError(t, err)

	stdout, _, err := env.run("members", "--format", "json")
	require.NoError(t, err)

	var members []tui.MemberView
	require.NoError(t, json.Unmarshal([]byte(stdout), &members))
	require.Len(t, members, 1)
	assert.Equal(t, []int{1, 1, 0, 1}, members[0].Activity)
}

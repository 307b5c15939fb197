package cli

import (
	"testing"
	"time"

	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAt(t *testing.T) {
	at, err := parseAt("")
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	at, err = parseAt(" 2024-03-01T10:00:00.250+01:00 ")
	require.NoError(t, err)
	assert.Equal(t, int64(1709283600250), at.UnixMilli())

	_, err = parseAt("10:00")
	assert.Error(t, err)
}

func TestPickVersion(t *testing.T) {
	m := member.NewMember("Ada")
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	seq := version.NewSequence([]*version.Version{
		version.NewVersion(m.ID, base, "a"),
		version.NewVersion(m.ID, base.Add(time.Minute), "b"),
	})

	idx, v, err := pickVersion(m, seq, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "b", v.Code)

	idx, v, err = pickVersion(m, seq, base)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Equal(t, "a", v.Code)

	_, _, err = pickVersion(m, seq, base.Add(time.Second))
	var coder ExitCoder
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitMemberNotFound, coder.ExitCode())

	_, _, err = pickVersion(m, version.NewSequence(nil), time.Time{})
	require.ErrorAs(t, err, &coder)
	assert.Equal(t, ExitMemberNotFound, coder.ExitCode())
}

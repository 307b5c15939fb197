package version

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

func versionsAt(secs ...int64) []*Version {
	member := uuid.New()
	out := make([]*Version, len(secs))
	for i, s := range secs {
		out[i] = NewVersion(member, at(s), "print(1)")
	}
	return out
}

func TestNewVersion_NormalizesTimestamp(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	ts := time.Date(2024, 3, 1, 12, 0, 0, 123456789, loc)

	v := NewVersion(uuid.New(), ts, "x = 1")

	assert.Equal(t, time.UTC, v.CreatedAt.Location())
	assert.Equal(t, 123000000, v.CreatedAt.Nanosecond())
	assert.Equal(t, DefaultLanguage, v.Language)
	assert.NotEqual(t, uuid.Nil, v.ID)
}

func TestNewSequence_SortsByCreatedAt(t *testing.T) {
	vs := versionsAt(30, 10, 20)

	seq := NewSequence(vs)

	require.Equal(t, 3, seq.Len())
	assert.Equal(t, at(10), seq.At(0).CreatedAt)
	assert.Equal(t, at(20), seq.At(1).CreatedAt)
	assert.Equal(t, at(30), seq.Last().CreatedAt)

	// input slice untouched
	assert.Equal(t, at(30), vs[0].CreatedAt)
}

func TestSequence_NilAndOutOfRange(t *testing.T) {
	var seq *Sequence

	assert.Equal(t, 0, seq.Len())
	assert.Nil(t, seq.At(0))
	assert.Nil(t, seq.Last())
	assert.Equal(t, -1, seq.IndexOf(0))
	assert.Empty(t, seq.Versions())

	seq = NewSequence(versionsAt(1))
	assert.Nil(t, seq.At(-1))
	assert.Nil(t, seq.At(1))
}

func TestSequence_IndexOf(t *testing.T) {
	seq := NewSequence(versionsAt(0, 50, 50, 130))

	tests := []struct {
		name   string
		millis int64
		want   int
	}{
		{"first", 0, 0},
		{"duplicate timestamp returns first match", 50_000, 1},
		{"last", 130_000, 3},
		{"between marks", 60_000, -1},
		{"off by one millisecond", 130_001, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seq.IndexOf(tt.millis))
		})
	}
}

func TestSequence_Marks(t *testing.T) {
	seq := NewSequence(versionsAt(0, 60))

	marks := seq.Marks(func(t time.Time) string { return t.Format("15:04") })

	assert.Equal(t, []Mark{
		{Value: 0, Label: "00:00"},
		{Value: 60_000, Label: "00:01"},
	}, marks)
}

func TestSequence_Span(t *testing.T) {
	assert.Equal(t, time.Duration(0), NewSequence(versionsAt(5)).Span())
	assert.Equal(t, 125*time.Second, NewSequence(versionsAt(5, 130)).Span())
}

func TestVersionFilter_Builder(t *testing.T) {
	id := uuid.New()
	since := at(10)

	f := NewVersionFilter().WithMember(id).WithSince(since).WithLimit(5)

	assert.Equal(t, id, f.MemberID)
	require.NotNil(t, f.Since)
	assert.Equal(t, since, *f.Since)
	assert.Nil(t, f.Until)
	assert.Equal(t, 5, f.Limit)
}

func TestDiff(t *testing.T) {
	member := uuid.New()
	prev := NewVersion(member, at(0), "line1\nline2\nline3\n")
	cur := NewVersion(member, at(60), "line1\nchanged\nline3\n")

	diff, err := Diff(prev, cur)
	require.NoError(t, err)

	assert.Contains(t, diff, "-line2")
	assert.Contains(t, diff, "+changed")
	assert.Contains(t, diff, " line1")

	stats := Stats(diff)
	assert.Equal(t, 1, stats.LinesAdded)
	assert.Equal(t, 1, stats.LinesRemoved)
}

func TestDiff_FirstVersion(t *testing.T) {
	cur := NewVersion(uuid.New(), at(0), "print('hi')\n")

	diff, err := Diff(nil, cur)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- empty")
	assert.Contains(t, diff, "+print('hi')")
}

func TestDiff_Identical(t *testing.T) {
	member := uuid.New()
	a := NewVersion(member, at(0), "same\n")
	b := NewVersion(member, at(1), "same\n")

	diff, err := Diff(a, b)
	require.NoError(t, err)
	assert.Empty(t, diff)

	diff, err = Diff(a, nil)
	require.NoError(t, err)
	assert.Empty(t, diff)
}

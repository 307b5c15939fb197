package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/core/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMemberView(t *testing.T) (*MemberView, []*version.Version) {
	t.Helper()

	m := &member.Member{ID: uuid.MustParse("6f1f0f3e-8b7a-4d0e-9c36-2f5f0c1e7a10"), Name: "Ada", SpentSeconds: 3900}
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	versions := []*version.Version{
		version.NewVersion(m.ID, base, "x = 1\n"),
		version.NewVersion(m.ID, base.Add(time.Minute), "x = 1\ny = 2\n"),
		version.NewVersion(m.ID, base.Add(2*time.Hour), "y = 2\n"),
	}

	return NewMemberView(member.Summarize(m, versions, 30*time.Minute)), versions
}

func newTestPresenter(format Format, buf *bytes.Buffer) Presenter {
	return NewPresenter(format, PresenterOptions{
		Writer:        buf,
		TerminalWidth: 100,
		Location:      time.UTC,
	})
}

func TestNewMemberView(t *testing.T) {
	view, _ := testMemberView(t)

	assert.Equal(t, "Ada", view.Name)
	assert.Equal(t, "6f1f0f3e", view.ShortID)
	assert.Equal(t, 3, view.VersionCount)
	assert.Equal(t, []int{2, 0, 0, 0, 1}, view.Activity)
	assert.True(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC).Equal(view.LastVersionAt))
}

func TestNewVersionViews(t *testing.T) {
	_, versions := testMemberView(t)

	views, err := NewVersionViews(versions, false)
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, 1, views[0].Index)
	assert.Equal(t, 1, views[0].LinesAdded)
	assert.Equal(t, 0, views[0].LinesRemoved)

	assert.Equal(t, 2, views[1].Lines)
	assert.Equal(t, 1, views[1].LinesAdded)
	assert.Equal(t, 0, views[1].LinesRemoved)

	assert.Equal(t, 0, views[2].LinesAdded)
	assert.Equal(t, 1, views[2].LinesRemoved)
	assert.Empty(t, views[2].Code)

	withCode, err := NewVersionViews(versions, true)
	require.NoError(t, err)
	assert.Equal(t, "y = 2\n", withCode[2].Code)
}

func TestTablePresenter_RenderMembers(t *testing.T) {
	view, _ := testMemberView(t)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderMembers([]*MemberView{view}))

	out := buf.String()
	assert.Contains(t, out, "Members (1)")
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "Mar/01/2024 12:00")
	assert.Contains(t, out, "1h 05m")
	assert.Contains(t, out, "█")
	assert.NotContains(t, out, "\033[")
}

func TestTablePresenter_RenderMembers_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderMembers(nil))
	assert.Contains(t, buf.String(), "No members found")
}

func TestTablePresenter_RenderVersions(t *testing.T) {
	view, versions := testMemberView(t)
	views, err := NewVersionViews(versions, false)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderVersions(view, views))

	out := buf.String()
	assert.Contains(t, out, "Time spent: 1 hours, 5 minutes")
	assert.Contains(t, out, "Mar/01 10:01")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "3 versions")
}

func TestTablePresenter_RenderRun(t *testing.T) {
	var buf bytes.Buffer
	p := newTestPresenter(FormatTable, &buf)

	require.NoError(t, p.RenderRun(&RunView{
		MemberName: "Ada",
		Runner:     "command",
		Stdout:     "hello",
		Stderr:     "warning",
		ExitCode:   2,
		Duration:   20 * time.Millisecond,
	}))

	out := buf.String()
	assert.Contains(t, out, "exit:2")
	assert.Contains(t, out, "hello\n")
	assert.Contains(t, out, "warning\n")
}

func TestTablePresenter_RenderConfig_SortedKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderConfig(&ConfigView{
		Location: "/tmp/config.yaml",
		Values: map[string]interface{}{
			"runner":  map[string]interface{}{"type": "nop"},
			"display": map[string]interface{}{"theme": "github", "colors": "auto"},
		},
	}))

	out := buf.String()
	colors := strings.Index(out, "display.colors")
	theme := strings.Index(out, "display.theme")
	runner := strings.Index(out, "runner.type")
	assert.True(t, colors >= 0 && colors < theme && theme < runner)
}

func TestTablePresenter_WriteError(t *testing.T) {
	p := NewPresenter(FormatTable, PresenterOptions{
		Writer:        &failWriter{},
		TerminalWidth: 80,
	})

	assert.Error(t, p.RenderMessage("hello"))
	assert.Error(t, p.RenderError(errors.New("boom")))
}

func TestJSONPresenter_RenderVersions(t *testing.T) {
	view, versions := testMemberView(t)
	views, err := NewVersionViews(versions, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatJSON, &buf).RenderVersions(view, views))

	var decoded struct {
		Member struct {
			Name         string `json:"name"`
			VersionCount int    `json:"version_count"`
		} `json:"member"`
		Versions []struct {
			Index int    `json:"index"`
			Code  string `json:"code"`
		} `json:"versions"`
	}
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "Ada", decoded.Member.Name)
	assert.Equal(t, 3, decoded.Member.VersionCount)
	require.Len(t, decoded.Versions, 3)
	assert.Equal(t, "x = 1\n", decoded.Versions[0].Code)
}

func TestJSONPresenter_EmptyListIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatJSON, &buf).RenderMembers(nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestJSONLPresenter_RenderMembers(t *testing.T) {
	view, _ := testMemberView(t)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatJSONL, &buf).RenderMembers([]*MemberView{view, view}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestCSVPresenter_RenderMembers(t *testing.T) {
	view, _ := testMemberView(t)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatCSV, &buf).RenderMembers([]*MemberView{view}))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,name,versions,last_version_at,spent_seconds", lines[0])
	assert.Equal(t, "6f1f0f3e-8b7a-4d0e-9c36-2f5f0c1e7a10,Ada,3,2024-03-01T12:00:00Z,3900", lines[1])
}

func TestNewPresenter_DefaultsToTable(t *testing.T) {
	var buf bytes.Buffer
	_, ok := NewPresenter(Format("xml"), PresenterOptions{Writer: &buf, TerminalWidth: 80}).(*TablePresenter)
	assert.True(t, ok)
}

func TestNewDiffView(t *testing.T) {
	_, versions := testMemberView(t)

	first, err := NewDiffView("Ada", nil, versions[0], 1, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, first.LinesAdded)
	assert.Empty(t, first.PreviousID)

	last, err := NewDiffView("Ada", versions[1], versions[2], 3, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, last.LinesAdded)
	assert.Equal(t, 1, last.LinesRemoved)
	assert.Equal(t, versions[1].ID.String(), last.PreviousID)
	assert.Contains(t, last.Content, "-x = 1")
}

func TestTablePresenter_RenderDiff(t *testing.T) {
	_, versions := testMemberView(t)
	view, err := NewDiffView("Ada", versions[0], versions[1], 2, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderDiff(view))

	out := buf.String()
	assert.Contains(t, out, "2/3")
	assert.Contains(t, out, "+1")
	assert.Contains(t, out, "+y = 2")

	buf.Reset()
	same, err := NewDiffView("Ada", versions[0], versions[0], 1, 1)
	require.NoError(t, err)
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderDiff(same))
	assert.Contains(t, buf.String(), "No changes.")
}

func TestPresenters_RenderStatus(t *testing.T) {
	status := &StatusView{
		Version: "1.2.3",
		Database: DatabaseView{
			Location:      "/tmp/rewind.db",
			SizeBytes:     2048,
			SizeHuman:     FormatBytes(2048),
			MemberCount:   2,
			VersionCount:  14,
			OldestVersion: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
			NewestVersion: time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC),
		},
		Config: ConfigStatusView{Location: "/tmp/config.yaml", Runner: "nop", StepDuration: 2 * time.Second, Interval: 30 * time.Minute},
	}

	var buf bytes.Buffer
	require.NoError(t, newTestPresenter(FormatTable, &buf).RenderStatus(status))
	out := buf.String()
	assert.Contains(t, out, "rewind 1.2.3")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "2024-03-01 10:00:00")
	assert.Contains(t, out, "30m0s")

	buf.Reset()
	require.NoError(t, newTestPresenter(FormatJSON, &buf).RenderStatus(status))
	var decoded StatusView
	require.NoError(t, sonic.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 14, decoded.Database.VersionCount)

	buf.Reset()
	require.NoError(t, newTestPresenter(FormatCSV, &buf).RenderStatus(status))
	assert.Contains(t, buf.String(), "database.versions,14")
}

package tui

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// CSVPresenter renders output as CSV.
type CSVPresenter struct {
	w      io.Writer
	writer *csv.Writer
}

// NewCSVPresenter creates a new CSV presenter.
func NewCSVPresenter(opts PresenterOptions) *CSVPresenter {
	return &CSVPresenter{
		w:      opts.Writer,
		writer: csv.NewWriter(opts.Writer),
	}
}

// RenderMembers renders the member list as CSV.
func (p *CSVPresenter) RenderMembers(members []*MemberView) error {
	p.writer.Write([]string{"id", "name", "versions", "last_version_at", "spent_seconds"})

	for _, m := range members {
		p.writer.Write([]string{
			m.ID,
			m.Name,
			strconv.Itoa(m.VersionCount),
			formatCSVTime(m.LastVersionAt),
			strconv.FormatInt(m.SpentSeconds, 10),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderVersions renders a member's versions as CSV.
func (p *CSVPresenter) RenderVersions(member *MemberView, versions []*VersionView) error {
	p.writer.Write([]string{
		"member_id", "index", "id", "created_at", "language",
		"lines", "lines_added", "lines_removed",
	})

	for _, v := range versions {
		p.writer.Write([]string{
			member.ID,
			strconv.Itoa(v.Index),
			v.ID,
			formatCSVTime(v.CreatedAt),
			v.Language,
			strconv.Itoa(v.Lines),
			strconv.Itoa(v.LinesAdded),
			strconv.Itoa(v.LinesRemoved),
		})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderImport renders an import result as CSV.
func (p *CSVPresenter) RenderImport(result *ImportView) error {
	p.writer.Write([]string{"path", "members", "versions", "spent_entries", "duplicates", "skipped", "invalid"})
	p.writer.Write([]string{
		result.Path,
		strconv.Itoa(result.Members),
		strconv.Itoa(result.Versions),
		strconv.Itoa(result.SpentEntries),
		strconv.Itoa(result.Duplicates),
		strconv.Itoa(result.Skipped),
		strconv.Itoa(result.Invalid),
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderConfig renders the configuration as CSV.
func (p *CSVPresenter) RenderConfig(config *ConfigView) error {
	flat := make(map[string]interface{})
	flattenConfig(config.Values, "", flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	p.writer.Write([]string{"key", "value"})
	for _, k := range keys {
		p.writer.Write([]string{k, fmt.Sprintf("%v", flat[k])})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderRun renders a run result as CSV.
func (p *CSVPresenter) RenderRun(run *RunView) error {
	p.writer.Write([]string{"member", "version_id", "runner", "exit_code", "duration_ms", "stdout", "stderr"})
	p.writer.Write([]string{
		run.MemberName,
		run.VersionID,
		run.Runner,
		strconv.Itoa(run.ExitCode),
		strconv.FormatInt(run.Duration.Milliseconds(), 10),
		run.Stdout,
		run.Stderr,
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderStep renders one playback step as CSV.
func (p *CSVPresenter) RenderStep(step *StepView) error {
	p.writer.Write([]string{
		step.MemberName,
		strconv.Itoa(step.Position),
		strconv.Itoa(step.Total),
		formatCSVTime(step.CreatedAt),
		step.Code,
	})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderDiff renders a version diff as CSV, one row per diff line.
func (p *CSVPresenter) RenderDiff(diff *DiffView) error {
	p.writer.Write([]string{"member", "version_id", "position", "line"})
	for _, line := range strings.Split(strings.TrimSuffix(diff.Content, "\n"), "\n") {
		if line == "" {
			continue
		}
		p.writer.Write([]string{diff.MemberName, diff.VersionID, strconv.Itoa(diff.Position), line})
	}

	p.writer.Flush()
	return p.writer.Error()
}

// RenderStatus renders the tool status as CSV.
func (p *CSVPresenter) RenderStatus(status *StatusView) error {
	p.writer.Write([]string{"key", "value"})
	p.writer.Write([]string{"version", status.Version})
	p.writer.Write([]string{"database.location", status.Database.Location})
	p.writer.Write([]string{"database.size_bytes", strconv.FormatInt(status.Database.SizeBytes, 10)})
	p.writer.Write([]string{"database.members", strconv.Itoa(status.Database.MemberCount)})
	p.writer.Write([]string{"database.versions", strconv.Itoa(status.Database.VersionCount)})
	p.writer.Write([]string{"database.oldest_version", formatCSVTime(status.Database.OldestVersion)})
	p.writer.Write([]string{"database.newest_version", formatCSVTime(status.Database.NewestVersion)})
	p.writer.Write([]string{"config.location", status.Config.Location})
	p.writer.Write([]string{"config.runner", status.Config.Runner})

	p.writer.Flush()
	return p.writer.Error()
}

// RenderError renders an error message as CSV.
func (p *CSVPresenter) RenderError(err error) error {
	p.writer.Write([]string{"error", err.Error()})
	p.writer.Flush()
	return p.writer.Error()
}

// RenderMessage renders a simple message as CSV.
func (p *CSVPresenter) RenderMessage(message string) error {
	p.writer.Write([]string{"message", message})
	p.writer.Flush()
	return p.writer.Error()
}

func formatCSVTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// Ensure CSVPresenter implements Presenter
var _ Presenter = (*CSVPresenter)(nil)

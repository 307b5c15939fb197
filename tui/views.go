package tui

import (
	"strings"
	"time"

	"github.com/safedep/rewind/core/member"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/ingest"
)

// MemberView represents a member list entry for display.
type MemberView struct {
	ID            string    `json:"id"`
	ShortID       string    `json:"-"`
	Name          string    `json:"name"`
	VersionCount  int       `json:"version_count"`
	SpentSeconds  int64     `json:"spent_seconds"`
	LastVersionAt time.Time `json:"last_version_at"`
	// Activity is the dense per-interval version count.
	Activity []int         `json:"activity"`
	Interval time.Duration `json:"interval"`
}

// NewMemberView builds a MemberView from a member summary.
func NewMemberView(s *member.Summary) *MemberView {
	return &MemberView{
		ID:            s.Member.ID.String(),
		ShortID:       FormatShortID(s.Member.ID.String()),
		Name:          s.Member.Name,
		VersionCount:  s.VersionCount,
		SpentSeconds:  s.Member.SpentSeconds,
		LastVersionAt: s.LastVersionAt,
		Activity:      s.Buckets.Series(s.Interval),
		Interval:      s.Interval,
	}
}

// VersionView represents a code version for display.
type VersionView struct {
	ID           string    `json:"id"`
	Index        int       `json:"index"`
	CreatedAt    time.Time `json:"created_at"`
	Language     string    `json:"language"`
	Lines        int       `json:"lines"`
	LinesAdded   int       `json:"lines_added"`
	LinesRemoved int       `json:"lines_removed"`
	Code         string    `json:"code,omitempty"`
}

// NewVersionViews builds views for versions in sequence order, with line
// changes against the preceding version. Code is included when withCode is set.
func NewVersionViews(versions []*version.Version, withCode bool) ([]*VersionView, error) {
	views := make([]*VersionView, 0, len(versions))

	var prev *version.Version
	for i, v := range versions {
		unified, err := version.Diff(prev, v)
		if err != nil {
			return nil, err
		}
		stats := version.Stats(unified)

		view := &VersionView{
			ID:           v.ID.String(),
			Index:        i + 1,
			CreatedAt:    v.CreatedAt,
			Language:     v.Language,
			Lines:        CountLines(v.Code),
			LinesAdded:   stats.LinesAdded,
			LinesRemoved: stats.LinesRemoved,
		}
		if withCode {
			view.Code = v.Code
		}

		views = append(views, view)
		prev = v
	}

	return views, nil
}

// ImportView represents an import result.
type ImportView struct {
	Path         string    `json:"path"`
	Members      int       `json:"members"`
	Versions     int       `json:"versions"`
	SpentEntries int       `json:"spent_entries"`
	Duplicates   int       `json:"duplicates"`
	Skipped      int       `json:"skipped"`
	Invalid      int       `json:"invalid"`
	ImportedAt   time.Time `json:"imported_at"`
}

// NewImportView builds an ImportView from an import result.
func NewImportView(r *ingest.Result, at time.Time) *ImportView {
	return &ImportView{
		Path:         r.Path,
		Members:      r.Members,
		Versions:     r.Versions,
		SpentEntries: r.SpentEntries,
		Duplicates:   r.Duplicates,
		Skipped:      r.Skipped,
		Invalid:      r.Invalid,
		ImportedAt:   at,
	}
}

// ConfigView represents configuration for display.
type ConfigView struct {
	Location string                 `json:"location"`
	Values   map[string]interface{} `json:"values"`
}

// RunView represents the output of running a code version.
type RunView struct {
	MemberName string        `json:"member"`
	VersionID  string        `json:"version_id"`
	CreatedAt  time.Time     `json:"created_at"`
	Runner     string        `json:"runner"`
	Stdout     string        `json:"stdout"`
	Stderr     string        `json:"stderr"`
	ExitCode   int           `json:"exit_code"`
	Duration   time.Duration `json:"duration"`
	TimedOut   bool          `json:"timed_out,omitempty"`
}

// NewRunView builds a RunView from a runner result.
func NewRunView(memberName, runner string, v *version.Version, r *corerunner.Result) *RunView {
	return &RunView{
		MemberName: memberName,
		VersionID:  v.ID.String(),
		CreatedAt:  v.CreatedAt,
		Runner:     runner,
		Stdout:     r.Stdout,
		Stderr:     r.Stderr,
		ExitCode:   r.ExitCode,
		Duration:   r.Duration,
		TimedOut:   r.TimedOut,
	}
}

// StepView represents one playback position.
type StepView struct {
	MemberName string    `json:"member"`
	Position   int       `json:"position"`
	Total      int       `json:"total"`
	CreatedAt  time.Time `json:"created_at"`
	Language   string    `json:"language"`
	Code       string    `json:"code"`
}

// CountLines returns the number of lines in code.
func CountLines(code string) int {
	if code == "" {
		return 0
	}
	n := strings.Count(code, "\n")
	if !strings.HasSuffix(code, "\n") {
		n++
	}
	return n
}

// DiffView represents the changes between a version and its predecessor.
type DiffView struct {
	MemberName   string    `json:"member"`
	VersionID    string    `json:"version_id"`
	Position     int       `json:"position"`
	Total        int       `json:"total"`
	CreatedAt    time.Time `json:"created_at"`
	PreviousID   string    `json:"previous_id,omitempty"`
	LinesAdded   int       `json:"lines_added"`
	LinesRemoved int       `json:"lines_removed"`
	Content      string    `json:"content"`
}

// NewDiffView diffs cur against prev. A nil prev shows cur as fully added.
func NewDiffView(memberName string, prev, cur *version.Version, position, total int) (*DiffView, error) {
	unified, err := version.Diff(prev, cur)
	if err != nil {
		return nil, err
	}
	stats := version.Stats(unified)

	view := &DiffView{
		MemberName:   memberName,
		VersionID:    cur.ID.String(),
		Position:     position,
		Total:        total,
		CreatedAt:    cur.CreatedAt,
		LinesAdded:   stats.LinesAdded,
		LinesRemoved: stats.LinesRemoved,
		Content:      unified,
	}
	if prev != nil {
		view.PreviousID = prev.ID.String()
	}
	return view, nil
}

// StatusView represents the tool status.
type StatusView struct {
	Version  string           `json:"version"`
	Database DatabaseView     `json:"database"`
	Config   ConfigStatusView `json:"config"`
}

// DatabaseView represents database information.
type DatabaseView struct {
	Location      string    `json:"location"`
	SizeBytes     int64     `json:"size_bytes"`
	SizeHuman     string    `json:"size_human"`
	MemberCount   int       `json:"member_count"`
	VersionCount  int       `json:"version_count"`
	OldestVersion time.Time `json:"oldest_version,omitempty"`
	NewestVersion time.Time `json:"newest_version,omitempty"`
}

// ConfigStatusView represents the settings that shape playback.
type ConfigStatusView struct {
	Location     string        `json:"location"`
	Runner       string        `json:"runner"`
	StepDuration time.Duration `json:"step_duration"`
	Interval     time.Duration `json:"bucket_interval"`
}

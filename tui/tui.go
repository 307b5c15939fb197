// Package tui provides the presentation layer for terminal output.
package tui

import (
	"io"
	"os"
	"time"
)

// Format represents the output format.
type Format string

const (
	// FormatTable is the default table format.
	FormatTable Format = "table"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
	// FormatJSONL is newline-delimited JSON format.
	FormatJSONL Format = "jsonl"
	// FormatCSV is CSV format.
	FormatCSV Format = "csv"
)

// Presenter defines the interface for output rendering.
type Presenter interface {
	// RenderMembers renders the member list.
	RenderMembers(members []*MemberView) error

	// RenderVersions renders the version history of one member.
	RenderVersions(member *MemberView, versions []*VersionView) error

	// RenderImport renders an import result.
	RenderImport(result *ImportView) error

	// RenderConfig renders the configuration.
	RenderConfig(config *ConfigView) error

	// RenderRun renders the output of a code run.
	RenderRun(run *RunView) error

	// RenderStep renders one playback step.
	RenderStep(step *StepView) error

	// RenderDiff renders the changes a version made to its predecessor.
	RenderDiff(diff *DiffView) error

	// RenderStatus renders database and configuration status.
	RenderStatus(status *StatusView) error

	// RenderError renders an error message.
	RenderError(err error) error

	// RenderMessage renders a simple message.
	RenderMessage(message string) error
}

// PresenterOptions configures presenter behavior.
type PresenterOptions struct {
	// Writer is the output destination.
	Writer io.Writer
	// UseColors indicates if colors should be used.
	UseColors bool
	// Verbose increases output verbosity.
	Verbose bool
	// TerminalWidth is the width of the terminal for table rendering.
	// If 0, the width will be auto-detected.
	TerminalWidth int
	// Location is the timezone for displayed times. Defaults to local time.
	Location *time.Location
	// Theme is the syntax highlighting style for code.
	Theme string
}

func (o PresenterOptions) location() *time.Location {
	if o.Location == nil {
		return time.Local
	}
	return o.Location
}

// NewPresenter creates a new presenter for the given format.
func NewPresenter(format Format, opts PresenterOptions) Presenter {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}

	switch format {
	case FormatJSON:
		return NewJSONPresenter(opts)
	case FormatJSONL:
		return NewJSONLPresenter(opts)
	case FormatCSV:
		return NewCSVPresenter(opts)
	default:
		return NewTablePresenter(opts)
	}
}

// DefaultPresenter returns a presenter with default options.
func DefaultPresenter() Presenter {
	return NewPresenter(FormatTable, PresenterOptions{
		Writer:    os.Stdout,
		UseColors: true,
	})
}

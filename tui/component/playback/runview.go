package playback

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	corerunner "github.com/safedep/rewind/core/runner"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/tui"
)

const maxRunPreviewLines = 8

// runModel is the run surface. The version is frozen when the surface
// opens so playback cannot change what is being run.
type runModel struct {
	visible    bool
	memberName string
	version    *version.Version
	running    bool
	result     *corerunner.Result
	err        error
	loc        *time.Location
}

func newRunModel(loc *time.Location) runModel {
	return runModel{loc: loc}
}

func (r *runModel) open(memberName string, v *version.Version) {
	r.visible = true
	r.memberName = memberName
	r.version = v
	r.running = true
	r.result = nil
	r.err = nil
}

func (r *runModel) close() {
	r.visible = false
	r.running = false
}

// finish records a runner result. Results for a version other than the
// frozen one, or arriving after close, are dropped.
func (r *runModel) finish(msg runFinishedMsg) bool {
	if !r.visible || r.version == nil || r.version.ID != msg.versionID {
		return false
	}
	r.running = false
	r.result = msg.result
	r.err = msg.err
	return true
}

func (r runModel) view(width, height int) string {
	if !r.visible || r.version == nil {
		return ""
	}

	inner := max(width-10, 20)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(colorWhite).Bold(true).Render(
		fmt.Sprintf("Run · %s · %s", r.memberName, tui.FormatTime(r.version.CreatedAt, r.loc))))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(previewCode(r.version.Code, inner)))
	b.WriteString("\n\n")

	switch {
	case r.running:
		b.WriteString(pauseIndicatorStyle.Render("Running..."))
	case r.err != nil:
		b.WriteString(errorStyle.Render("Error: " + r.err.Error()))
	case r.result != nil:
		b.WriteString(r.renderResult(inner, height))
	}

	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("esc close"))

	overlay := overlayStyle.Width(min(width-4, inner+6)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
}

func (r runModel) renderResult(width, height int) string {
	res := r.result

	status := playIndicatorStyle.Render("OK")
	switch {
	case res.TimedOut:
		status = errorStyle.Render("TIMED OUT")
	case !res.Success():
		status = errorStyle.Render("FAILED")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s  %s %s",
		status,
		valueStyle.Render(tui.FormatExitCode(res.ExitCode)),
		labelStyle.Render("took"), valueStyle.Render(tui.FormatDuration(res.Duration))))

	budget := max(height-maxRunPreviewLines-12, 3)
	if res.Stdout != "" {
		b.WriteString("\n\n" + labelStyle.Render("stdout") + "\n")
		b.WriteString(clipLines(res.Stdout, width, budget))
	}
	if res.Stderr != "" {
		b.WriteString("\n\n" + labelStyle.Render("stderr") + "\n")
		b.WriteString(errorStyle.Render(clipLines(res.Stderr, width, budget)))
	}
	return b.String()
}

func previewCode(code string, width int) string {
	if code == "" {
		return "(empty)"
	}
	return clipLines(code, width, maxRunPreviewLines)
}

func clipLines(text string, width, maxLines int) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	more := 0
	if len(lines) > maxLines {
		more = len(lines) - maxLines
		lines = lines[:maxLines]
	}
	for i, line := range lines {
		lines[i] = tui.TruncateString(line, width)
	}
	if more > 0 {
		lines = append(lines, fmt.Sprintf("… %d more lines", more))
	}
	return strings.Join(lines, "\n")
}

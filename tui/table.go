package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"
)

// TablePresenter renders output in table format.
type TablePresenter struct {
	w         io.Writer
	color     *Colorizer
	termWidth int
	loc       *time.Location
	theme     string
}

// NewTablePresenter creates a new table presenter.
func NewTablePresenter(opts PresenterOptions) *TablePresenter {
	termWidth := opts.TerminalWidth
	if termWidth == 0 {
		termWidth = GetTerminalWidth()
	}
	return &TablePresenter{
		w:         opts.Writer,
		color:     NewColorizer(opts.UseColors),
		termWidth: termWidth,
		loc:       opts.location(),
		theme:     opts.Theme,
	}
}

// membersColumnWidths holds the calculated widths for the member table.
type membersColumnWidths struct {
	name     int
	versions int
	last     int
	spent    int
	activity int
	total    int
}

// calculateMembersColumnWidths computes column widths based on terminal width.
// Fixed columns: Versions(8), Last Version(17), Time Spent(11)
// Flexible columns: Name and Activity share the remaining space.
func (p *TablePresenter) calculateMembersColumnWidths() membersColumnWidths {
	const (
		versionsWidth = 8
		lastWidth     = 17
		spentWidth    = 11
		minNameWidth  = 12
		maxNameWidth  = 30
		minActivity   = 8
		maxActivity   = 48
		spacing       = 4
	)

	fixed := versionsWidth + lastWidth + spentWidth + spacing
	available := p.termWidth - fixed

	nameWidth := available / 2
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}

	activity := available - nameWidth
	if activity < minActivity {
		activity = minActivity
	}
	if activity > maxActivity {
		activity = maxActivity
	}

	return membersColumnWidths{
		name:     nameWidth,
		versions: versionsWidth,
		last:     lastWidth,
		spent:    spentWidth,
		activity: activity,
		total:    fixed + nameWidth + activity,
	}
}

// RenderMembers renders the member list.
func (p *TablePresenter) RenderMembers(members []*MemberView) error {
	tw := &tableWriter{w: p.w}

	if len(members) == 0 {
		tw.println("No members found. Run 'rewind import FILE' first.")
		return tw.Err()
	}

	cols := p.calculateMembersColumnWidths()

	tw.printf("Members (%d)\n", len(members))
	tw.println(HorizontalLine(cols.total))

	rowFmt := fmt.Sprintf("%%-%ds %%%ds %%-%ds %%-%ds %%s\n",
		cols.name, cols.versions, cols.last, cols.spent)
	tw.printf(rowFmt, "Name", "Versions", "Last Version", "Time Spent", "Activity")
	tw.println(HorizontalLine(cols.total))

	for _, m := range members {
		hm := FormatSeconds(m.SpentSeconds)
		name := PadRight(TruncateString(m.Name, cols.name), cols.name)

		tw.printf("%s %*s %-*s %-*s %s\n",
			p.color.Member(name),
			cols.versions, FormatNumber(m.VersionCount),
			cols.last, FormatLastVersion(m.LastVersionAt, p.loc),
			cols.spent, fmt.Sprintf("%dh %02dm", hm.Hours, hm.Minutes),
			p.color.Spark(RenderSparkline(m.Activity, cols.activity)))
	}

	tw.println(HorizontalLine(cols.total))
	tw.printf("%d members\n", len(members))

	return tw.Err()
}

// RenderVersions renders the version history of one member.
func (p *TablePresenter) RenderVersions(member *MemberView, versions []*VersionView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s  %s\n", p.color.Header(member.Name), p.color.Dim(member.ShortID))
	tw.printf("Time spent: %s\n", FormatSpentTime(member.SpentSeconds))
	if !member.LastVersionAt.IsZero() {
		tw.printf("Last version: %s (%s)\n",
			FormatLastVersion(member.LastVersionAt, p.loc), FormatRelative(member.LastVersionAt))
	}
	tw.println(HorizontalLine(p.termWidth))

	if len(versions) == 0 {
		tw.println("No versions found.")
		return tw.Err()
	}

	tw.printf("%-5s %-14s %-10s %6s  %s\n", "#", "Created", "Language", "Lines", "Changes")
	for _, v := range versions {
		tw.printf("%-5d %-14s %-10s %6d  %s\n",
			v.Index,
			FormatMarkLabel(v.CreatedAt, p.loc),
			v.Language,
			v.Lines,
			p.color.DiffLine(FormatLineChanges(v.LinesAdded, v.LinesRemoved)))

		if v.Code != "" {
			tw.println()
			tw.println(indent(Highlight(v.Code, v.Language, p.theme, p.color.Enabled()), "      "))
			tw.println()
		}
	}

	tw.println(HorizontalLine(p.termWidth))
	tw.printf("%d versions\n", len(versions))

	return tw.Err()
}

// RenderImport renders an import result.
func (p *TablePresenter) RenderImport(result *ImportView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s %s\n", p.color.Success("Imported"), p.color.Path(result.Path))
	tw.printf("  %-14s %s\n", "Members", p.color.Number(FormatNumber(result.Members)))
	tw.printf("  %-14s %s\n", "Versions", p.color.Number(FormatNumber(result.Versions)))
	tw.printf("  %-14s %s\n", "Time entries", p.color.Number(FormatNumber(result.SpentEntries)))
	if result.Duplicates > 0 {
		tw.printf("  %-14s %s\n", "Already known", p.color.Dim(FormatNumber(result.Duplicates)))
	}
	if result.Skipped > 0 {
		tw.printf("  %-14s %s\n", "Skipped", p.color.Dim(FormatNumber(result.Skipped)))
	}
	if result.Invalid > 0 {
		tw.printf("  %-14s %s\n", "Invalid", p.color.Warning(FormatNumber(result.Invalid)))
	}

	return tw.Err()
}

// RenderConfig renders the configuration.
func (p *TablePresenter) RenderConfig(config *ConfigView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n", p.color.Header("Configuration"))
	tw.printf("Location: %s\n", p.color.Path(config.Location))
	tw.println(HorizontalLine(p.termWidth))
	tw.println()

	flat := make(map[string]interface{})
	flattenConfig(config.Values, "", flat)

	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		tw.printf("  %-30s %v\n", k, flat[k])
	}

	return tw.Err()
}

// RenderRun renders the output of a code run.
func (p *TablePresenter) RenderRun(run *RunView) error {
	tw := &tableWriter{w: p.w}

	status := p.color.Success(FormatExitCode(run.ExitCode))
	switch {
	case run.TimedOut:
		status = p.color.Error("timed out")
	case run.ExitCode != 0:
		status = p.color.Error(FormatExitCode(run.ExitCode))
	}

	tw.printf("%s  %s  %s  %s  %s\n",
		p.color.Member(run.MemberName),
		FormatTime(run.CreatedAt, p.loc),
		p.color.Dim(run.Runner),
		status,
		p.color.Dim(FormatDuration(run.Duration)))
	tw.println(HorizontalLine(p.termWidth))

	if run.Stdout != "" {
		tw.printf("%s", ensureNewline(run.Stdout))
	}
	if run.Stderr != "" {
		tw.printf("%s", p.color.Error(ensureNewline(run.Stderr)))
	}

	return tw.Err()
}

// RenderStep renders one playback step.
func (p *TablePresenter) RenderStep(step *StepView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s  %s  %s\n",
		p.color.Member(step.MemberName),
		p.color.Number(fmt.Sprintf("%d/%d", step.Position, step.Total)),
		FormatMarkLabel(step.CreatedAt, p.loc))
	tw.println(HorizontalLine(p.termWidth))
	tw.printf("%s", ensureNewline(Highlight(step.Code, step.Language, p.theme, p.color.Enabled())))
	tw.println()

	return tw.Err()
}

// RenderDiff renders a version diff.
func (p *TablePresenter) RenderDiff(diff *DiffView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s  %s  %s  %s\n",
		p.color.Member(diff.MemberName),
		p.color.Number(fmt.Sprintf("%d/%d", diff.Position, diff.Total)),
		FormatTime(diff.CreatedAt, p.loc),
		FormatLineChanges(diff.LinesAdded, diff.LinesRemoved))
	tw.println(HorizontalLine(p.termWidth))

	if diff.Content == "" {
		tw.println("No changes.")
		return tw.Err()
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff.Content, "\n"), "\n") {
		tw.println(p.color.DiffLine(line))
	}

	return tw.Err()
}

// RenderStatus renders the tool status.
func (p *TablePresenter) RenderStatus(status *StatusView) error {
	tw := &tableWriter{w: p.w}

	tw.printf("%s\n\n", p.color.Header("rewind "+status.Version))

	tw.printf("%s\n", p.color.Header("Database"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Database.Location))
	tw.printf("  %-14s %s\n", "Size", status.Database.SizeHuman)
	tw.printf("  %-14s %s\n", "Members", p.color.Number(FormatNumber(status.Database.MemberCount)))
	tw.printf("  %-14s %s\n", "Versions", p.color.Number(FormatNumber(status.Database.VersionCount)))
	if !status.Database.OldestVersion.IsZero() {
		tw.printf("  %-14s %s\n", "Oldest", FormatTime(status.Database.OldestVersion, p.loc))
		tw.printf("  %-14s %s\n", "Newest", FormatTime(status.Database.NewestVersion, p.loc))
	}
	tw.println()

	tw.printf("%s\n", p.color.Header("Config"))
	tw.printf("  %-14s %s\n", "Location", p.color.Path(status.Config.Location))
	tw.printf("  %-14s %s\n", "Runner", status.Config.Runner)
	tw.printf("  %-14s %s\n", "Step", status.Config.StepDuration)
	tw.printf("  %-14s %s\n", "Buckets", status.Config.Interval)

	return tw.Err()
}

// RenderError renders an error message.
func (p *TablePresenter) RenderError(err error) error {
	tw := &tableWriter{w: p.w}
	tw.printf("%s %s\n", p.color.Error("Error:"), err.Error())
	return tw.Err()
}

// RenderMessage renders a simple message.
func (p *TablePresenter) RenderMessage(message string) error {
	tw := &tableWriter{w: p.w}
	tw.println(message)
	return tw.Err()
}

func flattenConfig(m map[string]interface{}, prefix string, out map[string]interface{}) {
	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]interface{}); ok {
			flattenConfig(nested, fullKey, out)
			continue
		}
		out[fullKey] = value
	}
}

// PadRight pads a string to the right to the given width in runes.
func PadRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Ensure TablePresenter implements Presenter
var _ Presenter = (*TablePresenter)(nil)

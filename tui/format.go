package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	markLabelLayout   = "Jan/02 15:04"
	lastVersionLayout = "Jan/02/2006 15:04"
)

// HoursMinutes is a time span split for display.
type HoursMinutes struct {
	Hours   int64
	Minutes int64
}

// FormatSeconds splits seconds into whole hours and remaining minutes.
// Negative input is treated as zero.
func FormatSeconds(seconds int64) HoursMinutes {
	if seconds < 0 {
		seconds = 0
	}
	return HoursMinutes{
		Hours:   seconds / 3600,
		Minutes: (seconds % 3600) / 60,
	}
}

// FormatSpentTime formats seconds as "H hours, M minutes".
func FormatSpentTime(seconds int64) string {
	hm := FormatSeconds(seconds)
	return fmt.Sprintf("%d hours, %d minutes", hm.Hours, hm.Minutes)
}

// FormatMarkLabel formats a timeline mark label in loc.
func FormatMarkLabel(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(markLabelLayout)
}

// FormatLastVersion formats a member's last version time in loc.
func FormatLastVersion(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(lastVersionLayout)
}

// FormatRelative formats t relative to now, e.g. "3 hours ago".
func FormatRelative(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return humanize.Time(t)
}

// FormatDuration formats a duration as a human-readable string.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	if d < time.Hour {
		mins := int(d.Minutes())
		secs := int(d.Seconds()) % 60
		return fmt.Sprintf("%dm %ds", mins, secs)
	}
	hours := int(d.Hours())
	mins := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", hours, mins)
}

// FormatTime formats a time for display in loc.
func FormatTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format("2006-01-02 15:04:05")
}

// FormatBytes formats a size as a human-readable string.
func FormatBytes(n int64) string {
	if n < 0 {
		n = 0
	}
	return humanize.IBytes(uint64(n))
}

// FormatNumber formats a number with thousand separators.
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatShortID returns the first 8 characters of an ID.
func FormatShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// FormatLineChanges formats line changes as "+N -M".
func FormatLineChanges(added, removed int) string {
	if added == 0 && removed == 0 {
		return ""
	}
	if removed == 0 {
		return fmt.Sprintf("+%d", added)
	}
	if added == 0 {
		return fmt.Sprintf("-%d", removed)
	}
	return fmt.Sprintf("+%d -%d", added, removed)
}

// FormatExitCode formats an exit code.
func FormatExitCode(code int) string {
	return fmt.Sprintf("exit:%d", code)
}

// TruncateString truncates a string to the given length in runes.
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// HorizontalLine returns a horizontal line of the given width.
func HorizontalLine(width int) string {
	return strings.Repeat("─", width)
}

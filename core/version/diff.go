package version

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DiffStats summarises a line diff between two versions.
type DiffStats struct {
	LinesAdded   int
	LinesRemoved int
}

// Diff returns a unified diff from prev to cur. A nil prev diffs against an
// empty file, so the first version shows as fully added.
func Diff(prev, cur *Version) (string, error) {
	if cur == nil {
		return "", nil
	}

	var before, fromName string
	if prev != nil {
		before = prev.Code
		fromName = label(prev)
	} else {
		fromName = "empty"
	}

	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(cur.Code),
		FromFile: fromName,
		ToFile:   label(cur),
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to compute diff: %w", err)
	}
	return text, nil
}

// Stats counts added and removed lines in a unified diff.
func Stats(unified string) DiffStats {
	var stats DiffStats
	for _, line := range strings.Split(unified, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
		case strings.HasPrefix(line, "+"):
			stats.LinesAdded++
		case strings.HasPrefix(line, "-"):
			stats.LinesRemoved++
		}
	}
	return stats
}

func label(v *Version) string {
	return v.CreatedAt.Format("2006-01-02T15:04:05.000Z07:00")
}

package playback

import (
	"strings"
	"time"

	coreplayback "github.com/safedep/rewind/core/playback"
	"github.com/safedep/rewind/tui"
)

// sliderHeight is the number of lines renderSlider produces.
const sliderHeight = 2

// renderSlider draws one tick per version mark along a track of the given
// width, with the current position highlighted. The line below carries the
// first and last labels and, when it fits between them, the current one.
func renderSlider(snap coreplayback.Snapshot, width int, loc *time.Location) string {
	if snap.Sequence == nil || snap.Len == 0 || width < 4 {
		return strings.Repeat("\n", sliderHeight-1)
	}

	marks := snap.Sequence.Marks(func(t time.Time) string {
		return tui.FormatMarkLabel(t, loc)
	})

	var track strings.Builder
	ticks := make(map[int]bool, len(marks))
	for i := range marks {
		ticks[markColumn(i, len(marks), width)] = true
	}
	cur := markColumn(snap.Position, len(marks), width)
	for col := 0; col < width; col++ {
		switch {
		case col == cur:
			track.WriteString(markCurrentStyle.Render("●"))
		case ticks[col]:
			track.WriteString(markStyle.Render("┼"))
		default:
			track.WriteString(trackStyle.Render("─"))
		}
	}

	return track.String() + "\n" + sliderLabels(marks[0].Label, marks[snap.Position].Label,
		marks[len(marks)-1].Label, snap.Position, len(marks), cur, width)
}

func sliderLabels(first, current, last string, pos, count, cur, width int) string {
	line := []rune(strings.Repeat(" ", width))
	put := func(col int, text string) {
		for i, r := range []rune(text) {
			if col+i >= 0 && col+i < width {
				line[col+i] = r
			}
		}
	}

	put(0, first)
	lastCol := width - len([]rune(last))
	if count > 1 {
		put(lastCol, last)
	}

	if pos == 0 || pos == count-1 {
		return labelStyle.Render(string(line))
	}

	n := len([]rune(current))
	col := cur - n/2
	if col <= len([]rune(first)) || col+n >= lastCol {
		return labelStyle.Render(string(line))
	}

	return labelStyle.Render(string(line[:col])) +
		markCurrentStyle.Render(current) +
		labelStyle.Render(string(line[col+n:]))
}

// markColumn spreads count marks evenly across width columns.
func markColumn(i, count, width int) int {
	if count <= 1 {
		return 0
	}
	return i * (width - 1) / (count - 1)
}

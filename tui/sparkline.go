package tui

import "strings"

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// RenderSparkline draws one block character per column, scaling values to
// the largest one. Series longer than width are sampled down; shorter ones
// keep their own length. A zero width keeps the series length.
func RenderSparkline(values []int, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width <= 0 || width > len(values) {
		width = len(values)
	}

	cols := make([]int, width)
	for i := range cols {
		// take the peak of the values folded into this column
		from := i * len(values) / width
		to := (i + 1) * len(values) / width
		for _, v := range values[from:to] {
			if v > cols[i] {
				cols[i] = v
			}
		}
	}

	max := 0
	for _, v := range cols {
		if v > max {
			max = v
		}
	}

	var out strings.Builder
	for _, v := range cols {
		if max == 0 || v <= 0 {
			out.WriteRune(' ')
			continue
		}
		level := v * (len(sparkBlocks) - 1) / max
		out.WriteRune(sparkBlocks[level])
	}
	return out.String()
}

package tui

import (
	"fmt"
	"io"
)

const (
	clearLine       = "\033[2K"
	carriageReturn  = "\r"
	clearLineReturn = clearLine + carriageReturn
)

// StatusLine rewrites a single terminal line, e.g. the watch status of
// `rewind import --watch`. On non-terminal writers every update is printed
// on its own line instead.
type StatusLine struct {
	w          io.Writer
	color      *Colorizer
	isTerminal bool
}

// NewStatusLine creates a new StatusLine.
func NewStatusLine(w io.Writer, useColors bool) *StatusLine {
	return &StatusLine{
		w:          w,
		color:      NewColorizer(useColors),
		isTerminal: IsWriterTerminal(w),
	}
}

// Update replaces the line with new text.
func (s *StatusLine) Update(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !s.isTerminal {
		fmt.Fprintln(s.w, msg)
		return
	}
	fmt.Fprint(s.w, clearLineReturn+s.color.Dim(msg))
}

// Clear clears the line.
func (s *StatusLine) Clear() {
	if !s.isTerminal {
		return
	}
	fmt.Fprint(s.w, clearLineReturn)
}

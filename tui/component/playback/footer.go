package playback

import (
	"fmt"

	coreplayback "github.com/safedep/rewind/core/playback"
)

type footerModel struct {
	diffMode  bool
	lastError string
}

func newFooterModel() footerModel {
	return footerModel{}
}

func (f footerModel) view(width int, snap coreplayback.Snapshot) string {
	hints := " q quit  ? help  enter play  ←/→ step  p pause  d diff  r run"

	var indicators string
	switch {
	case snap.Len == 0:
	case snap.Paused:
		indicators += "  " + pauseIndicatorStyle.Render("PAUSED")
	case snap.Advancing:
		indicators += "  " + playIndicatorStyle.Render("PLAYING")
	default:
		indicators += "  " + pauseIndicatorStyle.Render("END")
	}
	if f.diffMode {
		indicators += "  " + diffModeStyle.Render("DIFF")
	}
	if f.lastError != "" {
		indicators += "  " + errorStyle.Render(fmt.Sprintf("err: %s", f.lastError))
	}

	return footerStyle.Width(width).Render(hints + indicators)
}

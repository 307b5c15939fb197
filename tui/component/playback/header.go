package playback

import (
	"fmt"
	"time"

	coreplayback "github.com/safedep/rewind/core/playback"
	"github.com/safedep/rewind/tui"
)

type headerModel struct {
	memberName string
	loc        *time.Location
}

func newHeaderModel(loc *time.Location) headerModel {
	return headerModel{loc: loc}
}

func (h headerModel) view(width int, snap coreplayback.Snapshot) string {
	title := "rewind play"

	name := "no member"
	if h.memberName != "" {
		name = h.memberName
	}

	content := fmt.Sprintf(" %s | %s", title, name)
	if snap.Len > 0 {
		content += fmt.Sprintf(" | %d/%d", snap.Position+1, snap.Len)
	}
	if snap.Current != nil {
		content += " | " + tui.FormatTime(snap.Current.CreatedAt, h.loc)
	}
	return headerStyle.Width(width).Render(content)
}

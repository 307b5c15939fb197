package playback

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/safedep/rewind/core/member"
	"github.com/safedep/rewind/tui"
)

const (
	sidebarWidth = 34
	// name, details and sparkline plus a spacer
	sidebarItemHeight = 4
)

type sidebarModel struct {
	items    []*member.Summary
	selected int
	playing  uuid.UUID
	loc      *time.Location
}

func newSidebarModel(loc *time.Location) sidebarModel {
	return sidebarModel{loc: loc}
}

func (s *sidebarModel) setItems(items []*member.Summary) {
	var keep uuid.UUID
	if cur := s.selectedMember(); cur != nil {
		keep = cur.ID
	}

	s.items = items
	s.selected = 0
	for i, it := range items {
		if it.Member.ID == keep {
			s.selected = i
			break
		}
	}
}

func (s *sidebarModel) moveUp() {
	if s.selected > 0 {
		s.selected--
	}
}

func (s *sidebarModel) moveDown() {
	if s.selected < len(s.items)-1 {
		s.selected++
	}
}

// selectMember selects the member whose name or ID matches ref. Names match
// case-insensitively.
func (s *sidebarModel) selectMember(ref string) bool {
	for i, it := range s.items {
		if strings.EqualFold(it.Member.Name, ref) || it.Member.ID.String() == ref {
			s.selected = i
			return true
		}
	}
	return false
}

func (s sidebarModel) selectedMember() *member.Member {
	if s.selected < 0 || s.selected >= len(s.items) {
		return nil
	}
	return s.items[s.selected].Member
}

func (s sidebarModel) view(height int) string {
	inner := sidebarWidth - 3

	var b strings.Builder
	b.WriteString(valueStyle.Render(fmt.Sprintf("Members (%d)", len(s.items))))
	b.WriteString("\n\n")

	if len(s.items) == 0 {
		b.WriteString(labelStyle.Render("No members.\nRun 'rewind import'."))
		return sidebarStyle.Width(sidebarWidth).Height(height).Render(b.String())
	}

	visible := (height - 2) / sidebarItemHeight
	if visible < 1 {
		visible = 1
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.items))

	for i := start; i < end; i++ {
		b.WriteString(s.renderItem(s.items[i], i == s.selected, inner))
		b.WriteString("\n\n")
	}

	return sidebarStyle.Width(sidebarWidth).Height(height).Render(strings.TrimSuffix(b.String(), "\n\n"))
}

func (s sidebarModel) renderItem(item *member.Summary, selected bool, width int) string {
	view := tui.NewMemberView(item)

	nameStyle := memberNameStyle
	marker := "  "
	if item.Member.ID == s.playing {
		nameStyle = memberPlayingStyle
		marker = "▶ "
	}
	if selected {
		nameStyle = memberSelectedStyle
	}

	name := nameStyle.Render(marker + tui.TruncateString(view.Name, width-2))
	details := labelStyle.Render(fmt.Sprintf("  %d versions · %s",
		view.VersionCount, tui.FormatLastVersion(view.LastVersionAt, s.loc)))

	spark := tui.RenderSparkline(view.Activity, width-2)
	if spark == "" {
		spark = labelStyle.Render("no activity")
	} else {
		spark = sparkStyle.Render(spark)
	}

	return lipgloss.JoinVertical(lipgloss.Left, name, details, "  "+spark)
}

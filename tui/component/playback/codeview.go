package playback

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	coreplayback "github.com/safedep/rewind/core/playback"
	"github.com/safedep/rewind/core/version"
	"github.com/safedep/rewind/tui"
)

type codeViewModel struct {
	viewport viewport.Model
	theme    string
	colors   bool
	diffMode bool

	// shownID and shownDiff identify the rendered content so the scroll
	// offset survives unrelated refreshes.
	shownID   uuid.UUID
	shownDiff bool
}

func newCodeViewModel(theme string, colors bool) codeViewModel {
	return codeViewModel{
		viewport: viewport.New(0, 0),
		theme:    theme,
		colors:   colors,
	}
}

func (c *codeViewModel) resize(width, height int) {
	c.viewport.Width = max(width, 0)
	c.viewport.Height = max(height, 0)
}

func (c *codeViewModel) toggleDiff() {
	c.diffMode = !c.diffMode
}

// refresh renders the current version of snap. The scroll position resets
// when the version or mode changes.
func (c *codeViewModel) refresh(snap coreplayback.Snapshot) error {
	cur := snap.Current
	if cur == nil {
		c.shownID = uuid.Nil
		c.viewport.SetContent(labelStyle.Render("Select a member and press enter to play."))
		return nil
	}

	if cur.ID == c.shownID && c.diffMode == c.shownDiff {
		return nil
	}

	content, err := c.render(snap.Previous, cur)
	if err != nil {
		return err
	}

	c.viewport.SetContent(content)
	c.viewport.GotoTop()
	c.shownID = cur.ID
	c.shownDiff = c.diffMode
	return nil
}

func (c *codeViewModel) render(prev, cur *version.Version) (string, error) {
	if !c.diffMode {
		if cur.Code == "" {
			return labelStyle.Render("(empty)"), nil
		}
		return numberLines(tui.Highlight(cur.Code, cur.Language, c.theme, c.colors)), nil
	}

	unified, err := version.Diff(prev, cur)
	if err != nil {
		return "", err
	}
	if unified == "" {
		return labelStyle.Render("(no changes)"), nil
	}
	return colorDiff(unified, c.colors), nil
}

func (c *codeViewModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return cmd
}

func (c codeViewModel) view() string {
	return c.viewport.View()
}

func numberLines(code string) string {
	lines := strings.Split(strings.TrimSuffix(code, "\n"), "\n")
	width := len(fmt.Sprint(len(lines)))

	var b strings.Builder
	for i, line := range lines {
		b.WriteString(labelStyle.Render(fmt.Sprintf("%*d ", width, i+1)))
		b.WriteString(line)
		if i < len(lines)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func colorDiff(unified string, colors bool) string {
	if !colors {
		return strings.TrimSuffix(unified, "\n")
	}

	lines := strings.Split(strings.TrimSuffix(unified, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = labelStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = diffHunkStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = diffAddStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = diffRemoveStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// Package playback is the interactive version player: a member list, the
// replayed code and a timeline of versions driven by an AutoPlayer.
package playback

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/safedep/dry/log"
	"github.com/safedep/rewind/core/member"
	coreplayback "github.com/safedep/rewind/core/playback"
	"github.com/safedep/rewind/tui"
)

const minSidebarTotalWidth = 70

type Model struct {
	opts   Options
	player *coreplayback.AutoPlayer
	width  int
	height int

	header  headerModel
	footer  footerModel
	help    helpModel
	sidebar sidebarModel
	code    codeViewModel
	run     runModel

	playing     *member.Member
	initialRef  string
	pendingSeek time.Time
	ready       bool
}

func New(opts Options) Model {
	loc := opts.location()
	return Model{
		opts:        opts,
		player:      opts.player(),
		header:      newHeaderModel(loc),
		footer:      newFooterModel(),
		help:        newHelpModel(),
		sidebar:     newSidebarModel(loc),
		code:        newCodeViewModel(opts.theme(), opts.Colors),
		run:         newRunModel(loc),
		initialRef:  opts.Member,
		pendingSeek: opts.SeekTo,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadMembers(m.opts.Store, m.opts.interval()),
		waitForAdvance(m.player),
	)
}

// Close stops automatic playback. It is safe to call more than once.
func (m Model) Close() {
	m.player.Close()
}

// Snapshot returns the player state.
func (m Model) Snapshot() coreplayback.Snapshot {
	return m.player.Snapshot()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.code.resize(m.mainWidth(), m.codeHeight())
		return m, nil

	case membersLoadedMsg:
		m.sidebar.setItems(msg.summaries)
		m.footer.lastError = ""
		if m.initialRef == "" {
			return m, nil
		}

		ref := m.initialRef
		m.initialRef = ""
		if !m.sidebar.selectMember(ref) {
			m.footer.lastError = fmt.Sprintf("member %q not found", ref)
			return m, nil
		}
		return m, loadVersions(m.opts.Store, m.sidebar.selectedMember())

	case versionsLoadedMsg:
		m.playing = msg.member
		m.header.memberName = msg.member.Name
		m.sidebar.playing = msg.member.ID

		m.player.Load(msg.seq)
		if m.opts.Paused {
			m.player.Pause()
		}
		if !m.pendingSeek.IsZero() {
			at := m.pendingSeek
			m.pendingSeek = time.Time{}
			if !m.player.Seek(at.UnixMilli()) {
				m.footer.lastError = "no version at " + tui.FormatTime(at, m.opts.location())
			}
		}
		log.Debugf("playback: playing %s (%d versions)", msg.member.Name, msg.seq.Len())
		m.refresh()
		return m, nil

	case advancedMsg:
		m.refresh()
		return m, waitForAdvance(m.player)

	case runFinishedMsg:
		m.run.finish(msg)
		return m, nil

	case loadErrorMsg:
		m.footer.lastError = msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, keys.Quit) {
		m.player.Close()
		return m, tea.Quit
	}

	if m.run.visible {
		if key.Matches(msg, keys.Escape) {
			m.run.close()
		}
		return m, nil
	}

	if m.help.visible {
		if key.Matches(msg, keys.Help, keys.Escape) {
			m.help.toggle()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Help):
		m.help.toggle()

	case key.Matches(msg, keys.Up):
		m.sidebar.moveUp()

	case key.Matches(msg, keys.Down):
		m.sidebar.moveDown()

	case key.Matches(msg, keys.Select):
		if sel := m.sidebar.selectedMember(); sel != nil {
			return m, loadVersions(m.opts.Store, sel)
		}

	case key.Matches(msg, keys.Back):
		m.player.StepBackward()

	case key.Matches(msg, keys.Forward):
		m.player.StepForward()

	case key.Matches(msg, keys.First):
		m.seekMark(0)

	case key.Matches(msg, keys.Last):
		m.seekMark(-1)

	case key.Matches(msg, keys.Pause):
		m.player.TogglePause()

	case key.Matches(msg, keys.Diff):
		m.code.toggleDiff()
		m.footer.diffMode = m.code.diffMode

	case key.Matches(msg, keys.Run):
		return m.startRun()

	case key.Matches(msg, keys.PageUp, keys.PageDown):
		return m, m.code.update(msg)
	}

	m.refresh()
	return m, nil
}

// seekMark seeks to the value of the mark at index i; a negative index
// counts from the end.
func (m *Model) seekMark(i int) {
	seq := m.player.Snapshot().Sequence
	if seq == nil || seq.Len() == 0 {
		return
	}
	if i < 0 {
		i = seq.Len() + i
	}
	m.player.Seek(seq.At(i).Millis())
}

func (m Model) startRun() (Model, tea.Cmd) {
	snap := m.player.Snapshot()
	if snap.Current == nil {
		return m, nil
	}
	if m.opts.Runner == nil {
		m.footer.lastError = "no runner configured"
		return m, nil
	}

	m.player.Pause()
	m.run.open(m.header.memberName, snap.Current)
	return m, runCode(m.opts.Runner, snap.Current)
}

func (m *Model) refresh() {
	if err := m.code.refresh(m.player.Snapshot()); err != nil {
		m.footer.lastError = err.Error()
	}
}

func (m Model) sidebarVisible() bool {
	return m.width >= minSidebarTotalWidth
}

func (m Model) mainWidth() int {
	if m.sidebarVisible() {
		// content plus the right border
		return m.width - sidebarWidth - 1
	}
	return m.width
}

func (m Model) contentHeight() int {
	return m.height - 2 // header + footer
}

func (m Model) codeHeight() int {
	return m.contentHeight() - 1 - sliderHeight // caption + slider
}

func (m Model) caption(snap coreplayback.Snapshot) string {
	if m.playing == nil {
		return captionStyle.Render("No member playing")
	}
	return captionStyle.Render(fmt.Sprintf("%s versions · %s spent",
		tui.FormatNumber(snap.Len), tui.FormatSpentTime(m.playing.SpentSeconds)))
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	snap := m.player.Snapshot()
	header := m.header.view(m.width, snap)
	footer := m.footer.view(m.width, snap)
	contentHeight := m.contentHeight()

	if m.help.visible {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.help.view(m.width, contentHeight), footer)
	}
	if m.run.visible {
		return lipgloss.JoinVertical(lipgloss.Left, header, m.run.view(m.width, contentHeight), footer)
	}

	mainW := m.mainWidth()
	main := lipgloss.JoinVertical(lipgloss.Left,
		m.caption(snap),
		lipgloss.NewStyle().Width(mainW).Height(max(m.codeHeight(), 0)).Render(m.code.view()),
		lipgloss.NewStyle().PaddingLeft(1).Render(renderSlider(snap, mainW-2, m.opts.location())),
	)

	content := main
	if m.sidebarVisible() {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.view(contentHeight), main)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

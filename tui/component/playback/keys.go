package playback

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Escape   key.Binding
	Up       key.Binding
	Down     key.Binding
	Select   key.Binding
	Back     key.Binding
	Forward  key.Binding
	First    key.Binding
	Last     key.Binding
	Pause    key.Binding
	Diff     key.Binding
	Run      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q / Ctrl+C", "Quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	Escape:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Close overlay")),
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("Up / k", "Previous member")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("Down / j", "Next member")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Play selected member")),
	Back:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("Left / h", "Previous version")),
	Forward:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("Right / l", "Next version")),
	First:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("Home / g", "First version")),
	Last:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("End / G", "Last version")),
	Pause:    key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("p / Space", "Toggle pause")),
	Diff:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "Toggle code / diff")),
	Run:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "Run current version")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp/PgDn", "Scroll code")),
	PageDown: key.NewBinding(key.WithKeys("pgdown")),
}

func (k keyMap) helpBindings() []key.Binding {
	return []key.Binding{
		k.Quit, k.Pause, k.Help, k.Up, k.Down, k.Select,
		k.Back, k.Forward, k.First, k.Last, k.Diff, k.Run, k.PageUp, k.Escape,
	}
}

package playback

import "github.com/charmbracelet/lipgloss"

var (
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorRed    = lipgloss.Color("#E74C3C")
	colorAmber  = lipgloss.Color("#F0AD4E")
	colorViolet = lipgloss.Color("#9B59B6")
	colorTeal   = lipgloss.Color("#1ABC9C")
	colorWhite  = lipgloss.Color("#ECF0F1")
	colorDim    = lipgloss.Color("#7F8C8D")
	colorBg     = lipgloss.Color("#1E1E2E")
	colorBgSel  = lipgloss.Color("#2E2E3E")

	headerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorWhite).
			Bold(true).
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Background(colorBg).
			Foreground(colorDim).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(colorDim).
			Padding(0, 1)

	memberNameStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	memberSelectedStyle = lipgloss.NewStyle().
				Background(colorBgSel).
				Foreground(colorBlue).
				Bold(true)

	memberPlayingStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Bold(true)

	sparkStyle = lipgloss.NewStyle().
			Foreground(colorTeal)

	captionStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Padding(0, 1)

	markStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	markCurrentStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	trackStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	pauseIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorAmber).
				Bold(true)

	playIndicatorStyle = lipgloss.NewStyle().
				Foreground(colorGreen).
				Bold(true)

	diffModeStyle = lipgloss.NewStyle().
			Foreground(colorViolet).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	diffAddStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	diffRemoveStyle = lipgloss.NewStyle().Foreground(colorRed)
	diffHunkStyle   = lipgloss.NewStyle().Foreground(colorBlue)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorViolet).
			Padding(1, 2).
			Foreground(colorWhite)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(colorAmber).
			Bold(true).
			Width(12)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(colorWhite)
)

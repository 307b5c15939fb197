package tui

// ANSI color codes
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"

	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	Gray    = "\033[90m"

	BoldWhite = "\033[1;37m"
)

// Colorizer wraps text with ANSI color codes if colors are enabled.
type Colorizer struct {
	enabled bool
}

// NewColorizer creates a new Colorizer.
func NewColorizer(enabled bool) *Colorizer {
	return &Colorizer{enabled: enabled}
}

// Enabled reports whether colors are applied.
func (c *Colorizer) Enabled() bool {
	return c.enabled
}

// Apply applies the given color to the text.
func (c *Colorizer) Apply(color, text string) string {
	if !c.enabled {
		return text
	}
	return color + text + Reset
}

// Header formats text as a header.
func (c *Colorizer) Header(text string) string {
	return c.Apply(BoldWhite, text)
}

// Member formats a member name.
func (c *Colorizer) Member(text string) string {
	return c.Apply(Cyan, text)
}

// Path formats a file path.
func (c *Colorizer) Path(text string) string {
	return c.Apply(Blue, text)
}

// Success formats success text.
func (c *Colorizer) Success(text string) string {
	return c.Apply(Green, text)
}

// Error formats error text.
func (c *Colorizer) Error(text string) string {
	return c.Apply(Red, text)
}

// Warning formats warning text.
func (c *Colorizer) Warning(text string) string {
	return c.Apply(Yellow, text)
}

// Dim formats secondary/dim text.
func (c *Colorizer) Dim(text string) string {
	return c.Apply(Gray, text)
}

// Number formats numbers/stats.
func (c *Colorizer) Number(text string) string {
	return c.Apply(Yellow, text)
}

// Spark formats a sparkline.
func (c *Colorizer) Spark(text string) string {
	return c.Apply(Magenta, text)
}

// DiffLine colors one line of a unified diff.
func (c *Colorizer) DiffLine(line string) string {
	switch {
	case len(line) >= 3 && (line[:3] == "+++" || line[:3] == "---"):
		return c.Apply(Cyan, line)
	case len(line) >= 2 && line[:2] == "@@":
		return c.Apply(Cyan, line)
	case len(line) >= 1 && line[0] == '+':
		return c.Apply(Green, line)
	case len(line) >= 1 && line[0] == '-':
		return c.Apply(Red, line)
	}
	return line
}

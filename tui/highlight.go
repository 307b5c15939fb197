package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/safedep/dry/log"
)

// DefaultTheme is the highlighting style used when none is configured.
const DefaultTheme = "github"

// Highlight renders code with ANSI syntax colors for language using the
// named chroma style. It returns code unchanged when colors are disabled or
// highlighting fails.
func Highlight(code, language, theme string, colors bool) string {
	if !colors || code == "" {
		return code
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Get(DefaultTheme)
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		log.Debugf("Highlighting failed for %s: %v", language, err)
		return code
	}

	var out strings.Builder
	if err := formatters.TTY256.Format(&out, style, iterator); err != nil {
		log.Debugf("Highlighting failed for %s: %v", language, err)
		return code
	}
	return out.String()
}

// ThemeNames returns the available highlighting styles.
func ThemeNames() []string {
	return styles.Names()
}

package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// DefaultWrap is the column at which sentences wrap.
const DefaultWrap = 72

// Problem renders a problem text with its blank token highlighted.
func Problem(text, blank string) string {
	toks := strings.Fields(text)
	for i, tok := range toks {
		if tok == blank {
			toks[i] = Blank.Render(tok)
		}
	}
	return strings.Join(toks, " ")
}

// Numbered prefixes s with a dimmed "n." and indents continuation lines to
// match.
func Numbered(n int, s string) string {
	prefix := fmt.Sprintf("%2d. ", n)
	indent := strings.Repeat(" ", len(prefix))
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = indent + lines[i]
	}
	return Index.Render(prefix) + strings.Join(lines, "\n")
}

// Sentence word-wraps s at width columns (DefaultWrap when width <= 0) and
// highlights it when match is set.
func Sentence(s string, width int, match bool) string {
	if width <= 0 {
		width = DefaultWrap
	}
	wrapped := ansi.Wordwrap(s, width, "")
	if match {
		return Match.Render(wrapped)
	}
	return wrapped
}

// Plain strips styling from s.
func Plain(s string) string {
	return ansi.Strip(s)
}

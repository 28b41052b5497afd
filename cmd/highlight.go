package cmd

import (
	"strings"

	"github.com/fatih/color"

	"github.com/libmatcha/matcha/pattern"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	matchStyle = color.New(color.FgGreen, color.Bold)
	spanStyle  = color.New(color.FgHiBlue, color.Bold)
	headStyle  = color.New(color.FgCyan, color.Bold)
)

// highlightMatches rebuilds text with every matched span wrapped in the match
// color. Spans are non-overlapping and ordered, so a single left-to-right
// pass suffices.
func highlightMatches(text string, matches []pattern.Match) string {
	runes := []rune(text)
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(string(runes[last:m.Start]))
		b.WriteString(matchStyle.Sprint(m.Value))
		last = m.End
	}
	b.WriteString(string(runes[last:]))
	return b.String()
}

package cmd

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/libmatcha/matcha"
)

func TestHighlightMatches(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	p := matcha.MustCompile("[dec::]")
	text := "a1b22c"
	matches := p.FindAllMatches(text)

	// with colors disabled the highlighted text is the input unchanged
	assert.Equal(t, text, highlightMatches(text, matches))
}

func TestHighlightMatchesEmpty(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	assert.Equal(t, "plain", highlightMatches("plain", nil))
}

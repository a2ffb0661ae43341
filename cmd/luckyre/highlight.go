package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/luckyre/luckyre"
)

// matchStyle paints matched runs on a terminal.
var matchStyle = lipgloss.NewStyle().Reverse(true).Bold(true)

func terminalHighlighter(style lipgloss.Style) luckyre.Highlighter {
	return luckyre.Highlighter{Mark: func(run string) string {
		return style.Render(run)
	}}
}

// highlighterFor picks the markers for -format.
func highlighterFor(format string) (luckyre.Highlighter, error) {
	switch format {
	case "html":
		return luckyre.DefaultHighlighter, nil
	case "term":
		return terminalHighlighter(matchStyle), nil
	}
	return luckyre.Highlighter{}, fmt.Errorf("unknown format %q, want html or term", format)
}

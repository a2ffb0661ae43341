package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/luckyre/luckyre"
	"github.com/stretchr/testify/require"
)

func TestHighlighterFor(t *testing.T) {
	h, err := highlighterFor("html")
	require.NoError(t, err)
	require.Equal(t, "<mark>", h.Open)

	h, err = highlighterFor("term")
	require.NoError(t, err)
	require.NotNil(t, h.Mark)

	_, err = highlighterFor("pdf")
	require.Error(t, err)
}

func TestTerminalHighlighter_MarksOnlyMatchedRuns(t *testing.T) {
	style := lipgloss.NewStyle()
	var marked []string
	h := terminalHighlighter(style)
	wrapped := h.Mark
	h.Mark = func(run string) string {
		marked = append(marked, run)
		return wrapped(run)
	}

	q := luckyre.NewQuery("abc", "b")
	verdicts := make([]luckyre.Verdict, len(q.Substrings))
	for i, s := range q.Substrings {
		verdicts[i] = luckyre.Verdict{Match: s.Text == "b", Span: s.Span}
	}

	got, err := h.Render("abc", verdicts)
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, marked)
	require.True(t, strings.HasPrefix(got, "a"))
	require.True(t, strings.HasSuffix(got, "c"))
	require.Contains(t, got, "b")
	require.NotContains(t, got, "<mark>")
}

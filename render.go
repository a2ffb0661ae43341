package luckyre

import (
	"bytes"
	"unicode/utf8"
)

// Highlighter wraps matched runs in Open and Close, or passes them through
// Mark when it is set.
type Highlighter struct {
	Open  string
	Close string
	Mark  func(run string) string
}

// DefaultHighlighter marks runs with an HTML <mark> element.
var DefaultHighlighter = Highlighter{Open: "<mark>", Close: "</mark>"}

// Render highlights text with DefaultHighlighter.
func Render(text string, verdicts []Verdict) (string, error) {
	return DefaultHighlighter.Render(text, verdicts)
}

// Render wraps every maximal run of covered positions in h.Open and h.Close.
// Uncovered runs are copied verbatim, no escaping is done, so removing the
// markers gives back text. Adjacent matched verdicts share one marker.
func (h Highlighter) Render(text string, verdicts []Verdict) (string, error) {
	vec, err := Coverage(utf8.RuneCountInString(text), verdicts)
	if err != nil {
		return "", err
	}
	runs, err := Runs(text, vec)
	if err != nil {
		return "", err
	}
	return h.Write(runs), nil
}

// Write joins runs, wrapping the matched ones.
func (h Highlighter) Write(runs []Run) string {
	buf := &bytes.Buffer{}
	for _, r := range runs {
		if r.Match && h.Mark != nil {
			buf.WriteString(h.Mark(r.Text))
		} else if r.Match {
			buf.WriteString(h.Open)
			buf.WriteString(r.Text)
			buf.WriteString(h.Close)
		} else {
			buf.WriteString(r.Text)
		}
	}
	return buf.String()
}

package luckyre

import (
	"errors"
	"fmt"

	"github.com/luckyre/luckyre/syntax"
)

// ErrNoReverser is returned by Tester.Reverse when the oracle cannot reverse patterns.
var ErrNoReverser = errors.New("luckyre: oracle does not support reversal")

// OKMessage is shown in State.Errors while the pattern is accepted.
const OKMessage = "Life's good."

// State is what a tester displays.
type State struct {
	Text    string
	Pattern string

	// Valid is false when the oracle rejected the pattern.
	Valid  bool
	Errors string

	// Highlight is Text with matched runs marked, from the last accepted pattern.
	Highlight string
}

// Tester keeps the text and pattern of one tester session and re-evaluates
// them against an oracle on every change. Calls are synchronous.
type Tester struct {
	oracle      Oracle
	gen         *syntax.Generator
	highlighter Highlighter
	state       State
}

// NewTester returns a Tester backed by oracle. A nil gen uses a Generator
// with default arguments for Lucky.
func NewTester(oracle Oracle, gen *syntax.Generator) *Tester {
	if gen == nil {
		gen = syntax.NewGenerator(nil)
	}
	return &Tester{
		oracle:      oracle,
		gen:         gen,
		highlighter: DefaultHighlighter,
		state:       State{Valid: true},
	}
}

// SetHighlighter changes the markers used for the following renders.
func (t *Tester) SetHighlighter(h Highlighter) {
	t.highlighter = h
}

// State returns the current display state.
func (t *Tester) State() State {
	return t.state
}

func (t *Tester) SetText(text string) (State, error) {
	t.state.Text = text
	return t.refresh()
}

func (t *Tester) SetPattern(pattern string) (State, error) {
	t.state.Pattern = pattern
	return t.refresh()
}

// InsertEpsilon appends the ε token to the pattern.
func (t *Tester) InsertEpsilon() (State, error) {
	return t.SetPattern(t.state.Pattern + syntax.EpsilonToken)
}

// InsertPhi appends the ∅ token to the pattern.
func (t *Tester) InsertPhi() (State, error) {
	return t.SetPattern(t.state.Pattern + syntax.PhiToken)
}

// Lucky replaces the pattern with a synthesized one.
func (t *Tester) Lucky() (State, error) {
	expr, err := t.gen.Generate()
	if err != nil {
		return t.state, err
	}
	return t.SetPattern(expr)
}

// Reverse asks the oracle for the reversed pattern and, if it is accepted,
// makes it the current pattern.
func (t *Tester) Reverse() (State, error) {
	r, ok := t.oracle.(Reverser)
	if !ok {
		return t.state, ErrNoReverser
	}

	res, err := r.Reverse(t.state.Pattern)
	if err != nil {
		return t.state, fmt.Errorf("luckyre: reversing %s: %w", quote(t.state.Pattern), err)
	}
	if !res.OK {
		t.reject(res.Errors)
		return t.state, nil
	}
	return t.SetPattern(res.Result)
}

func (t *Tester) refresh() (State, error) {
	q := NewQuery(t.state.Text, t.state.Pattern)
	res, err := t.oracle.Match(q)
	if err != nil {
		return t.state, fmt.Errorf("luckyre: matching %s: %w", quote(t.state.Pattern), err)
	}
	if !res.OK {
		t.reject(res.Errors)
		return t.state, nil
	}
	if len(res.Result) != len(q.Substrings) {
		return t.state, fmt.Errorf("%w: %d verdicts for %d substrings", ErrMismatchedLength, len(res.Result), len(q.Substrings))
	}

	ht, err := t.highlighter.Render(t.state.Text, res.Result)
	if err != nil {
		return t.state, err
	}
	t.state.Valid = true
	t.state.Errors = OKMessage
	t.state.Highlight = ht
	return t.state, nil
}

// reject keeps the previous highlight, like the page does when a pattern
// stops parsing.
func (t *Tester) reject(errs string) {
	t.state.Valid = false
	t.state.Errors = errs
}

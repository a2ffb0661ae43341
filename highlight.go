package luckyre

import (
	"errors"
	"fmt"

	"github.com/luckyre/luckyre/runecacher"
)

// ErrMismatchedLength is returned when a verdict's span does not fit in the
// subject text.
var ErrMismatchedLength = errors.New("luckyre: mismatched length")

// Span is a half-open interval [Start, End) of rune positions.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Substring is one entry of a match request: a piece of the subject text and
// where it came from.
type Substring struct {
	Text string
	Span Span
}

// Verdict is the oracle's answer for one Substring.
type Verdict struct {
	Match bool
	Span  Span
}

// Enumerate returns every non-empty substring of text, ordered by start then
// by end. A text of n runes gives n(n+1)/2 entries; "" gives none.
func Enumerate(text string) []Substring {
	rc := runecacher.NewFromString(text)
	n := rc.Len()

	result := make([]Substring, 0, n*(n+1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			result = append(result, Substring{
				Text: rc.Slice(i, j),
				Span: Span{i, j},
			})
		}
	}
	return result
}

// Coverage marks, for a text of n runes, every position inside at least one
// matching verdict. Positions are never unset once covered.
func Coverage(n int, verdicts []Verdict) ([]bool, error) {
	vec := make([]bool, n)

	for _, v := range verdicts {
		if v.Span.Start < 0 || v.Span.End > n || v.Span.Start > v.Span.End {
			return nil, fmt.Errorf("%w: span %v outside text of length %d", ErrMismatchedLength, v.Span, n)
		}
		if !v.Match {
			continue
		}
		for t := v.Span.Start; t < v.Span.End; t++ {
			vec[t] = true
		}
	}
	return vec, nil
}

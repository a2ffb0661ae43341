package luckyre

import (
	"fmt"

	"github.com/luckyre/luckyre/runecacher"
)

// Run is a maximal piece of the text whose positions share one coverage value.
type Run struct {
	Text  string
	Span  Span
	Match bool
}

// Runs splits text into maximal runs of equal coverage, in order.
// Concatenating the runs' Text gives back text. coverage must hold one
// entry per rune of text.
func Runs(text string, coverage []bool) ([]Run, error) {
	rc := runecacher.NewFromString(text)
	n := rc.Len()
	if len(coverage) != n {
		return nil, fmt.Errorf("%w: coverage of length %d for text of length %d", ErrMismatchedLength, len(coverage), n)
	}
	if n == 0 {
		return nil, nil
	}

	var retVal []Run
	priorIndex := 0
	for i := 1; i < n; i++ {
		if coverage[i] == coverage[priorIndex] {
			continue
		}
		retVal = append(retVal, Run{
			Text:  rc.Slice(priorIndex, i),
			Span:  Span{priorIndex, i},
			Match: coverage[priorIndex],
		})
		priorIndex = i
	}

	// flush the final run
	retVal = append(retVal, Run{
		Text:  rc.Slice(priorIndex, n),
		Span:  Span{priorIndex, n},
		Match: coverage[priorIndex],
	})

	return retVal, nil
}

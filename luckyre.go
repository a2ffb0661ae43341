/*
Package luckyre holds the support logic of an interactive regular expression tester.

Matching itself is left to an Oracle. This package builds the request for it
(every substring of the subject text, see Enumerate) and turns the verdicts that
come back into highlighted text (see Render). It can also synthesize random
expressions over a small grammar of ε, ∅, ., literals, |, &, concatenation,
~ and * for the "I'm feeling lucky" action (see Generate and package syntax).

Positions and intervals are rune indices into the subject text, not byte offsets.
*/
package luckyre

import (
	"math"
	"strconv"
	"time"

	"github.com/luckyre/luckyre/syntax"
)

// Default timeout used when a built-in engine runs a match -- "forever"
var DefaultMatchTimeout = time.Duration(math.MaxInt64)

// Options configure a built-in engine.
type Options struct {
	// Engine name as passed to NewEngine, "ecmascript" if empty.
	Engine string

	// timeout for a single substring match, DefaultMatchTimeout if zero.
	// Only the regexp2 based engines honor it.
	MatchTimeout time.Duration
}

func (o Options) matchTimeout() time.Duration {
	if o.MatchTimeout <= 0 {
		return DefaultMatchTimeout
	}
	return o.MatchTimeout
}

// Generate synthesizes a random expression with the shared default generator.
func Generate() (string, error) {
	return syntax.Generate()
}

// MustGenerate is like Generate but panics if the expression cannot be synthesized.
func MustGenerate() string {
	expr, err := Generate()
	if err != nil {
		panic(`luckyre: Generate(): ` + err.Error())
	}
	return expr
}

func quote(s string) string {
	if strconv.CanBackquote(s) {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

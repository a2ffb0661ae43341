package syntax

import (
	"strings"

	"github.com/luckyre/luckyre/helpers"
)

// Alphabet holds the characters a Char node may carry.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// operators are the runes the writer emits besides alphabet characters
const operators = EpsilonToken + PhiToken + AnyToken + "()|&~*"

// InAlphabet reports whether r may appear as a Char node.
func InAlphabet(r rune) bool {
	return helpers.IsAlnum(r)
}

// Valid reports whether expr only uses alphabet characters and the
// tokens produced by Write. It does not check that expr is well formed.
func Valid(expr string) bool {
	for _, r := range expr {
		if !InAlphabet(r) && !strings.ContainsRune(operators, r) {
			return false
		}
	}
	return true
}

package runecacher

import (
	"unicode/utf8"
)

const cachePrimeSize = 10

// RuneCacher indexes a string by rune (character) position. Runes are
// decoded on demand and their byte offsets cached, so that substrings by
// character interval can be sliced from the input without copying.
type RuneCacher struct {
	// byte offset of each decoded rune in inpStr
	offsets []int
	inpStr  string

	// start of uncached position in our input
	inpUncachedPos int
	// length of the input in bytes
	inpLen int

	// number of runes in the input
	runesLen int
}

func NewFromString(str string) *RuneCacher {
	r := &RuneCacher{
		offsets:  make([]int, 0, len(str)),
		inpStr:   str,
		inpLen:   len(str),
		runesLen: utf8.RuneCountInString(str),
	}
	// prime cache with some runes
	r.cachedNext(cachePrimeSize)
	return r
}

// Len is the number of runes in the input.
func (r *RuneCacher) Len() int {
	return r.runesLen
}

func (r *RuneCacher) String() string {
	return r.inpStr
}

// Slice returns the input between rune positions textPos and textEnd.
// It panics if the interval is outside [0, Len()] like slicing would.
func (r *RuneCacher) Slice(textPos, textEnd int) string {
	return r.inpStr[r.offset(textPos):r.offset(textEnd)]
}

// offset is the byte offset of rune position textPos, Len() maps to the end
// of the input.
func (r *RuneCacher) offset(textPos int) int {
	if textPos == r.runesLen {
		return r.inpLen
	}
	if textPos >= len(r.offsets) {
		// not in our cache - populate cache
		r.cachedNext(textPos - len(r.offsets) + 1)
	}
	return r.offsets[textPos]
}

func (r *RuneCacher) hasUncached() bool {
	// if we're not passed the end then we have more to cache
	return r.inpUncachedPos < r.inpLen
}

func (r *RuneCacher) cachedNext(count int) {
	// decode the next count runes, or whatever is left of the input
	for r.hasUncached() && count > 0 {
		_, newLen := utf8.DecodeRuneInString(r.inpStr[r.inpUncachedPos:])
		r.offsets = append(r.offsets, r.inpUncachedPos)
		r.inpUncachedPos += newLen
		count--
	}
}

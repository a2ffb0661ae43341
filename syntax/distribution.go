package syntax

import "errors"

// ErrInvalidDistribution is returned when a draw is not covered by the
// cumulative weights of a Distribution.
var ErrInvalidDistribution = errors.New("syntax: invalid distribution")

// Weight is the probability of sampling one symbol.
type Weight struct {
	Sym Symbol
	P   float64
}

// Distribution is a cumulative-sum sampling table. Order matters: ties
// between a draw and a running sum go to the earliest entry.
type Distribution []Weight

// Phi stays in the table with a zero weight: it can never be drawn,
// but the table still spans the whole symbol space.
var defaultWeights = [...]Weight{
	{Epsilon, 0.15},
	{Phi, 0.0},
	{Any, 0.15},
	{Char, 0.20},
	{Or, 0.10},
	{And, 0.10},
	{Concat, 0.10},
	{Not, 0.10},
	{Star, 0.10},
}

// DefaultDistribution returns a copy of the built-in synthesis weights.
func DefaultDistribution() Distribution {
	w := defaultWeights
	return w[:]
}

// Sample returns the first symbol whose running sum of weights is >= r.
// r is expected in [0, 1).
func (d Distribution) Sample(r float64) (Symbol, error) {
	acc := 0.0
	for _, w := range d {
		acc += w.P
		if acc >= r {
			return w.Sym, nil
		}
	}
	return 0, ErrInvalidDistribution
}

// Sum is the total weight of the table.
func (d Distribution) Sum() float64 {
	s := 0.0
	for _, w := range d {
		s += w.P
	}
	return s
}

// Terminals keeps only the non-recursive symbols, rescaled to sum to 1.
// Relative order and zero weights are preserved. If the terminal weights
// sum to zero the result is empty, so sampling from it always fails.
func (d Distribution) Terminals() Distribution {
	var (
		out Distribution
		sum float64
	)
	for _, w := range d {
		if w.Sym.IsTerminal() {
			out = append(out, w)
			sum += w.P
		}
	}
	if sum <= 0 {
		return Distribution{}
	}
	for i := range out {
		out[i].P /= sum
	}
	return out
}

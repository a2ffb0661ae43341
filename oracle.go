package luckyre

// Query asks an oracle which substrings match Pattern as a whole.
type Query struct {
	Substrings []Substring
	Pattern    string
}

// NewQuery builds the query for every substring of text.
func NewQuery(text, pattern string) Query {
	return Query{Substrings: Enumerate(text), Pattern: pattern}
}

// MatchResponse is an oracle's answer to a Query. When OK is false the
// pattern was rejected, Errors says why and Result is empty.
// Result is parallel to the query's Substrings.
type MatchResponse struct {
	OK     bool      `json:"ok"`
	Errors string    `json:"errors"`
	Result []Verdict `json:"result"`
}

// ReverseResponse is an oracle's answer to a reversal request.
type ReverseResponse struct {
	OK     bool   `json:"ok"`
	Errors string `json:"errors"`
	Result string `json:"result"`
}

// Oracle parses and evaluates patterns on behalf of the tester.
// A non-nil error means the oracle could not be reached or answered
// garbage; a bad pattern is reported in the response instead.
type Oracle interface {
	Match(q Query) (*MatchResponse, error)
}

// Reverser is implemented by oracles that can turn a pattern into the
// pattern of its reversed language.
type Reverser interface {
	Reverse(pattern string) (*ReverseResponse, error)
}

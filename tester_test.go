package luckyre

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/luckyre/luckyre/syntax"
	"github.com/stretchr/testify/require"
)

// literalOracle matches substrings equal to the pattern and rejects
// patterns containing '('.
type literalOracle struct {
	queries []Query
	fail    error
}

func (o *literalOracle) Match(q Query) (*MatchResponse, error) {
	o.queries = append(o.queries, q)
	if o.fail != nil {
		return nil, o.fail
	}
	if strings.Contains(q.Pattern, "(") {
		return &MatchResponse{Errors: "unbalanced parenthesis"}, nil
	}
	res := &MatchResponse{OK: true}
	for _, s := range q.Substrings {
		res.Result = append(res.Result, Verdict{Match: s.Text == q.Pattern, Span: s.Span})
	}
	return res, nil
}

type reversingOracle struct {
	literalOracle
}

func (o *reversingOracle) Reverse(pattern string) (*ReverseResponse, error) {
	if pattern == "" {
		return &ReverseResponse{Errors: "nothing to reverse"}, nil
	}
	r := []rune(pattern)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return &ReverseResponse{OK: true, Result: string(r)}, nil
}

func TestTester_TextAndPattern(t *testing.T) {
	o := &literalOracle{}
	tr := NewTester(o, nil)

	st, err := tr.SetText("abcab")
	require.NoError(t, err)
	require.True(t, st.Valid)
	require.Equal(t, "abcab", st.Highlight)

	st, err = tr.SetPattern("ab")
	require.NoError(t, err)
	require.True(t, st.Valid)
	require.Equal(t, OKMessage, st.Errors)
	require.Equal(t, "<mark>ab</mark>c<mark>ab</mark>", st.Highlight)

	require.Len(t, o.queries, 2)
	require.Equal(t, "ab", o.queries[1].Pattern)
	require.Len(t, o.queries[1].Substrings, 15)
	require.Equal(t, st, tr.State())
}

func TestTester_RejectedPatternKeepsHighlight(t *testing.T) {
	tr := NewTester(&literalOracle{}, nil)
	_, err := tr.SetText("abc")
	require.NoError(t, err)
	_, err = tr.SetPattern("b")
	require.NoError(t, err)

	st, err := tr.SetPattern("(b")
	require.NoError(t, err)
	require.False(t, st.Valid)
	require.Equal(t, "unbalanced parenthesis", st.Errors)
	require.Equal(t, "a<mark>b</mark>c", st.Highlight)

	st, err = tr.SetPattern("c")
	require.NoError(t, err)
	require.True(t, st.Valid)
	require.Equal(t, "ab<mark>c</mark>", st.Highlight)
}

func TestTester_OracleFailure(t *testing.T) {
	boom := errors.New("channel closed")
	tr := NewTester(&literalOracle{fail: boom}, nil)
	_, err := tr.SetText("abc")
	require.ErrorIs(t, err, boom)
}

type shortOracle struct{}

func (shortOracle) Match(q Query) (*MatchResponse, error) {
	return &MatchResponse{OK: true, Result: []Verdict{{Match: true, Span: Span{0, 1}}}}, nil
}

func TestTester_VerdictCountMismatch(t *testing.T) {
	tr := NewTester(shortOracle{}, nil)
	_, err := tr.SetText("abc")
	require.ErrorIs(t, err, ErrMismatchedLength)
}

func TestTester_Lucky(t *testing.T) {
	o := &literalOracle{}
	gen := syntax.NewGenerator(&syntax.GeneratorArgs{RngSource: rand.NewSource(11)})
	want, err := syntax.NewGenerator(&syntax.GeneratorArgs{RngSource: rand.NewSource(11)}).Generate()
	require.NoError(t, err)

	tr := NewTester(o, gen)
	st, err := tr.Lucky()
	require.NoError(t, err)
	require.Equal(t, want, st.Pattern)
	require.Equal(t, want, o.queries[len(o.queries)-1].Pattern)
}

func TestTester_InsertTokens(t *testing.T) {
	tr := NewTester(&literalOracle{}, nil)
	_, err := tr.SetPattern("a")
	require.NoError(t, err)
	_, err = tr.InsertEpsilon()
	require.NoError(t, err)
	st, err := tr.InsertPhi()
	require.NoError(t, err)
	require.Equal(t, "aε∅", st.Pattern)
}

func TestTester_Reverse(t *testing.T) {
	o := &reversingOracle{}
	tr := NewTester(o, nil)
	_, err := tr.SetText("abba cd")
	require.NoError(t, err)
	_, err = tr.SetPattern("dc")
	require.NoError(t, err)

	st, err := tr.Reverse()
	require.NoError(t, err)
	require.Equal(t, "cd", st.Pattern)
	require.Equal(t, "abba <mark>cd</mark>", st.Highlight)

	_, err = tr.SetPattern("")
	require.NoError(t, err)
	st, err = tr.Reverse()
	require.NoError(t, err)
	require.False(t, st.Valid)
	require.Equal(t, "nothing to reverse", st.Errors)
}

func TestTester_ReverseUnsupported(t *testing.T) {
	tr := NewTester(&literalOracle{}, nil)
	_, err := tr.Reverse()
	require.ErrorIs(t, err, ErrNoReverser)
}

func TestTester_Highlighter(t *testing.T) {
	tr := NewTester(&literalOracle{}, nil)
	tr.SetHighlighter(Highlighter{Open: "*", Close: "*"})
	_, err := tr.SetText("xyz")
	require.NoError(t, err)
	st, err := tr.SetPattern("y")
	require.NoError(t, err)
	require.Equal(t, "x*y*z", st.Highlight)
}

package luckyre

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuery_WireFormat(t *testing.T) {
	q := NewQuery("ab", "a*")
	data, err := json.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t, `[[["a",[0,1]],["ab",[0,2]],["b",[1,2]]],"a*"]`, string(data))

	var back Query
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, q, back)
}

func TestQuery_WireFormatEmptyText(t *testing.T) {
	data, err := json.Marshal(NewQuery("", "ε"))
	require.NoError(t, err)
	require.JSONEq(t, `[[],"ε"]`, string(data))
}

func TestMatchResponse_Decode(t *testing.T) {
	var res MatchResponse
	err := json.Unmarshal([]byte(`{"ok":true,"errors":"","result":[[false,[0,1]],[true,[0,2]],[true,[1,2]]]}`), &res)
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, []Verdict{
		{Match: false, Span: Span{0, 1}},
		{Match: true, Span: Span{0, 2}},
		{Match: true, Span: Span{1, 2}},
	}, res.Result)

	got, err := Render("ab", res.Result)
	require.NoError(t, err)
	require.Equal(t, "<mark>ab</mark>", got)
}

func TestVerdict_DecodeErrors(t *testing.T) {
	tests := map[string]string{
		"not-array":   `{"match":true}`,
		"short":       `[true]`,
		"bad-flag":    `["yes",[0,1]]`,
		"bad-span":    `[true,[0,"x"]]`,
		"span-string": `[true,"0-1"]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var v Verdict
			require.Error(t, json.Unmarshal([]byte(data), &v))
		})
	}
}

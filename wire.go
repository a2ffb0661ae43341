package luckyre

import (
	"encoding/json"
	"fmt"
)

// The oracle channel carries tuples rather than objects:
//
//	span      [start, end]
//	substring ["text", [start, end]]
//	verdict   [true, [start, end]]
//	query     [[substring...], "pattern"]

func (s Span) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{s.Start, s.End})
}

func (s *Span) UnmarshalJSON(data []byte) error {
	var v [2]int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("luckyre: decoding span: %w", err)
	}
	s.Start, s.End = v[0], v[1]
	return nil
}

func (s Substring) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Text, s.Span})
}

func (s *Substring) UnmarshalJSON(data []byte) error {
	parts, err := splitPair(data, "substring")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(parts[0], &s.Text); err != nil {
		return fmt.Errorf("luckyre: decoding substring text: %w", err)
	}
	return json.Unmarshal(parts[1], &s.Span)
}

func (v Verdict) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{v.Match, v.Span})
}

func (v *Verdict) UnmarshalJSON(data []byte) error {
	parts, err := splitPair(data, "verdict")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(parts[0], &v.Match); err != nil {
		return fmt.Errorf("luckyre: decoding verdict flag: %w", err)
	}
	return json.Unmarshal(parts[1], &v.Span)
}

func (q Query) MarshalJSON() ([]byte, error) {
	subs := q.Substrings
	if subs == nil {
		subs = []Substring{}
	}
	return json.Marshal([2]any{subs, q.Pattern})
}

func (q *Query) UnmarshalJSON(data []byte) error {
	parts, err := splitPair(data, "query")
	if err != nil {
		return err
	}
	if err := json.Unmarshal(parts[0], &q.Substrings); err != nil {
		return err
	}
	if err := json.Unmarshal(parts[1], &q.Pattern); err != nil {
		return fmt.Errorf("luckyre: decoding query pattern: %w", err)
	}
	return nil
}

func splitPair(data []byte, what string) ([]json.RawMessage, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return nil, fmt.Errorf("luckyre: decoding %s: %w", what, err)
	}
	if len(parts) != 2 {
		return nil, fmt.Errorf("luckyre: decoding %s: want 2 elements, got %d", what, len(parts))
	}
	return parts, nil
}

package syntax

import (
	"bytes"
	"errors"
	"fmt"
)

// Fixed tokens for the nullary symbols.
const (
	EpsilonToken = "ε"
	PhiToken     = "∅"
	AnyToken     = "."
)

// Write renders a synthesized tree to its textual expression form.
//
//	Or(a,b)     = (a|b)
//	And(a,b)    = (a&b)
//	Concat(a,b) = (ab)
//	Not(a)      = ~a*
//	Star(a)     = a*
func Write(n *Node) (string, error) {
	buf := &bytes.Buffer{}
	if err := writeNode(buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNode(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		return errors.New("syntax: nil node")
	}
	if want := n.T.Arity(); want >= 0 && want != len(n.Children) {
		return fmt.Errorf("syntax: %v node has %d children, want %d", n.T, len(n.Children), want)
	}

	switch n.T {
	case Epsilon:
		buf.WriteString(EpsilonToken)
	case Phi:
		buf.WriteString(PhiToken)
	case Any:
		buf.WriteString(AnyToken)
	case Char:
		buf.WriteRune(n.Ch)
	case Or:
		return writeBinary(buf, n, '|')
	case And:
		return writeBinary(buf, n, '&')
	case Concat:
		return writeBinary(buf, n, 0)
	case Not:
		buf.WriteRune('~')
		if err := writeNode(buf, n.Children[0]); err != nil {
			return err
		}
		buf.WriteRune('*')
	case Star:
		if err := writeNode(buf, n.Children[0]); err != nil {
			return err
		}
		buf.WriteRune('*')
	default:
		return fmt.Errorf("syntax: unexpected symbol in expression generation: %v", n.T)
	}
	return nil
}

// writeBinary emits (a<op>b); op 0 means plain concatenation.
func writeBinary(buf *bytes.Buffer, n *Node, op rune) error {
	buf.WriteRune('(')
	if err := writeNode(buf, n.Children[0]); err != nil {
		return err
	}
	if op != 0 {
		buf.WriteRune(op)
	}
	if err := writeNode(buf, n.Children[1]); err != nil {
		return err
	}
	buf.WriteRune(')')
	return nil
}

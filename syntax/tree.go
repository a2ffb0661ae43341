package syntax

import (
	"bytes"
	"strconv"
)

// Symbol is the type of a node in a synthesized expression tree.
type Symbol int32

const (
	// The following are leaves and render to a fixed token or a single character
	Epsilon Symbol = 0 //          ε
	Phi     Symbol = 1 //          ∅
	Any     Symbol = 2 //          .
	Char    Symbol = 3 // ch       a

	// Interior nodes wrap the rendering of their children

	Or     Symbol = 4 // a,b      (a|b)
	And    Symbol = 5 // a,b      (a&b)
	Concat Symbol = 6 // a,b      (ab)
	Not    Symbol = 7 // a        ~a*
	Star   Symbol = 8 // a        a*
)

var symbolStr = []string{
	"Epsilon", "Phi", "Any", "Char",
	"Or", "And", "Concat", "Not", "Star",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolStr) {
		return "Unknown(" + strconv.Itoa(int(s)) + ")"
	}
	return symbolStr[s]
}

// Arity is the number of children a node of this type owns.
// It returns -1 for values outside the grammar.
func (s Symbol) Arity() int {
	switch s {
	case Epsilon, Phi, Any, Char:
		return 0
	case Not, Star:
		return 1
	case Or, And, Concat:
		return 2
	}
	return -1
}

// IsTerminal reports whether nodes of this type never recurse.
func (s Symbol) IsTerminal() bool {
	return s.Arity() == 0
}

// Node is one element of a synthesized expression tree.
//
// The tree is built top-down by a Generator, each node owned by its parent,
// and is normally discarded once it has been rendered with Write.
// Ch is only meaningful for Char nodes; Children holds exactly
// T.Arity() entries.
type Node struct {
	T        Symbol
	Ch       rune
	Children []*Node
}

// Description is a single line describing the node without its children.
func (n *Node) Description() string {
	if n.T == Char {
		return n.T.String() + "(Ch = " + strconv.QuoteRune(n.Ch) + ")"
	}
	return n.T.String()
}

// Size counts the nodes of the tree rooted at n.
func (n *Node) Size() int {
	size := 1
	for _, c := range n.Children {
		size += c.Size()
	}
	return size
}

// Depth is the length of the longest path from n to a leaf, 0 for a leaf.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Children {
		if cd := c.Depth() + 1; cd > d {
			d = cd
		}
	}
	return d
}

var padSpace = []byte("                                ")

// Dump writes the tree one node per line, children indented under their parent.
func (n *Node) Dump() string {
	buf := &bytes.Buffer{}
	n.dump(buf, 0)
	return buf.String()
}

func (n *Node) dump(buf *bytes.Buffer, depth int) {
	pad := depth
	if pad > len(padSpace) {
		pad = len(padSpace)
	}
	buf.Write(padSpace[:pad])
	buf.WriteString(n.Description())
	buf.WriteRune('\n')

	for _, c := range n.Children {
		c.dump(buf, depth+1)
	}
}

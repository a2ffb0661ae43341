package syntax

import (
	"fmt"
	"math/rand"
	"sync"
)

// GeneratorArgs control how a Generator samples trees.
// A nil *GeneratorArgs is the same as the zero value.
type GeneratorArgs struct {
	// Seeds the generator's own RNG. If nil the process-wide source is used
	// to pick a seed.
	RngSource rand.Source

	// Sampling table, DefaultDistribution() if empty.
	Distribution Distribution

	// When positive, nodes at this depth are drawn from
	// Distribution.Terminals() so no tree is deeper than MaxDepth.
	// Zero leaves recursion unbounded; it still ends with probability 1
	// as long as terminal symbols carry weight.
	MaxDepth int
}

// Generator synthesizes random expressions. It is not safe for concurrent use.
type Generator struct {
	rng       *rand.Rand
	dist      Distribution
	terminals Distribution
	maxDepth  int
}

// NewGenerator returns a Generator configured by args.
func NewGenerator(args *GeneratorArgs) *Generator {
	if args == nil {
		args = &GeneratorArgs{}
	}

	var seed int64
	if args.RngSource == nil {
		seed = rand.Int63()
	} else {
		seed = args.RngSource.Int63()
	}

	dist := args.Distribution
	if len(dist) == 0 {
		dist = DefaultDistribution()
	} else {
		dist = append(Distribution(nil), dist...)
	}

	g := &Generator{
		rng:      rand.New(rand.NewSource(seed)),
		dist:     dist,
		maxDepth: args.MaxDepth,
	}
	if g.maxDepth > 0 {
		g.terminals = dist.Terminals()
	}
	return g
}

// Generate synthesizes one expression. On error nothing is returned,
// there is no partial output.
func (g *Generator) Generate() (string, error) {
	n, err := g.Tree()
	if err != nil {
		return "", err
	}
	return Write(n)
}

// Tree samples one expression tree.
func (g *Generator) Tree() (*Node, error) {
	return g.rand(0)
}

func (g *Generator) rand(depth int) (*Node, error) {
	dist := g.dist
	if g.maxDepth > 0 && depth >= g.maxDepth {
		dist = g.terminals
	}

	sym, err := dist.Sample(g.rng.Float64())
	if err != nil {
		return nil, err
	}
	return g.build(sym, depth)
}

// build makes a node of type sym, sampling each child before building it.
func (g *Generator) build(sym Symbol, depth int) (*Node, error) {
	n := &Node{T: sym}

	switch sym {
	case Epsilon, Phi, Any:
	case Char:
		n.Ch = rune(Alphabet[g.rng.Intn(len(Alphabet))])
	case Or, And, Concat, Not, Star:
		n.Children = make([]*Node, 0, sym.Arity())
		for i := 0; i < sym.Arity(); i++ {
			child, err := g.rand(depth + 1)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		}
	default:
		return nil, fmt.Errorf("syntax: invalid symbol %v", sym)
	}

	return n, nil
}

var (
	defaultMu  sync.Mutex
	defaultGen *Generator
)

// Generate synthesizes one expression with a shared default Generator.
func Generate() (string, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultGen == nil {
		defaultGen = NewGenerator(nil)
	}
	return defaultGen.Generate()
}

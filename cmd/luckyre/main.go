package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/luckyre/luckyre"
	"github.com/luckyre/luckyre/syntax"
)

var (
	text     = flag.String("text", "", "subject text, read from stdin if empty")
	pattern  = flag.String("re", "", "pattern to highlight with")
	engine   = flag.String("engine", "ecmascript", "matching engine: "+strings.Join(luckyre.Engines(), ", "))
	timeout  = flag.Duration("timeout", 0, "per substring match timeout, 0 for none")
	lucky    = flag.Bool("lucky", false, "synthesize random expressions instead of matching")
	number   = flag.Int("n", 1, "number of expressions to synthesize with -lucky")
	seed     = flag.Int64("seed", 0, "seed for -lucky, 0 picks one")
	maxDepth = flag.Int("max-depth", 0, "depth cap for synthesized trees, 0 for none")
	format   = flag.String("format", "html", "highlight markers: html for <mark>, term for terminal styling")
	dump     = flag.Bool("dump", false, "print the tree of each synthesized expression")
	request  = flag.Bool("request", false, "print the oracle request for -text and -re as JSON and exit")
	check    = flag.String("check", "", "report whether an expression only uses the synthesis grammar's characters")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("luckyre: ")
	flag.Parse()

	switch {
	case *check != "":
		if !syntax.Valid(*check) {
			log.Fatalf("%q uses characters outside the grammar", *check)
		}
		fmt.Println("ok")
	case *lucky:
		synthesize()
	default:
		highlight()
	}
}

func synthesize() {
	args := &syntax.GeneratorArgs{MaxDepth: *maxDepth}
	if *seed != 0 {
		args.RngSource = rand.NewSource(*seed)
	}
	gen := syntax.NewGenerator(args)

	for i := 0; i < *number; i++ {
		tree, err := gen.Tree()
		if err != nil {
			log.Fatalf("synthesizing expression: %v", err)
		}
		expr, err := syntax.Write(tree)
		if err != nil {
			log.Fatalf("writing expression: %v", err)
		}
		fmt.Println(expr)
		if *dump {
			fmt.Print(tree.Dump())
		}
	}
}

func highlight() {
	subject := *text
	if subject == "" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("reading text: %v", err)
		}
		subject = strings.TrimSuffix(string(b), "\n")
	}

	if *request {
		out, err := json.Marshal(luckyre.NewQuery(subject, *pattern))
		if err != nil {
			log.Fatalf("encoding request: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	oracle, err := luckyre.NewEngine(luckyre.Options{Engine: *engine, MatchTimeout: *timeout})
	if err != nil {
		log.Fatal(err)
	}

	h, err := highlighterFor(*format)
	if err != nil {
		log.Fatal(err)
	}

	start := time.Now()
	t := luckyre.NewTester(oracle, nil)
	t.SetHighlighter(h)
	if _, err := t.SetText(subject); err != nil {
		log.Fatal(err)
	}
	st, err := t.SetPattern(*pattern)
	if err != nil {
		log.Fatal(err)
	}
	if !st.Valid {
		log.Fatalf("pattern %q rejected: %s", *pattern, st.Errors)
	}

	fmt.Println(st.Highlight)
	log.Printf("%s, %d substrings in %v", st.Errors, substrings(subject), time.Since(start))
}

func substrings(s string) int {
	n := utf8.RuneCountInString(s)
	return n * (n + 1) / 2
}

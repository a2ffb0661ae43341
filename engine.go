package luckyre

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// ErrUnknownEngine is returned by NewEngine for names nobody registered.
var ErrUnknownEngine = errors.New("luckyre: unknown engine")

// EngineFunc builds a local oracle from options.
type EngineFunc func(opt Options) (Oracle, error)

var (
	enginesMu sync.RWMutex
	engines   = map[string]EngineFunc{}
)

// RegisterEngine makes an oracle available to NewEngine under name,
// replacing any previous registration.
func RegisterEngine(name string, fn EngineFunc) {
	enginesMu.Lock()
	defer enginesMu.Unlock()
	engines[name] = fn
}

// NewEngine builds the oracle registered under opt.Engine.
func NewEngine(opt Options) (Oracle, error) {
	name := opt.Engine
	if name == "" {
		name = "ecmascript"
	}

	enginesMu.RLock()
	fn, ok := engines[name]
	enginesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %s", ErrUnknownEngine, quote(name))
	}
	return fn(opt)
}

// Engines lists the registered engine names, sorted.
func Engines() []string {
	enginesMu.RLock()
	defer enginesMu.RUnlock()
	return slices.Sorted(maps.Keys(engines))
}

func init() {
	RegisterEngine("ecmascript", func(opt Options) (Oracle, error) {
		return &regexp2Engine{options: regexp2.ECMAScript, end: "$", timeout: opt.matchTimeout()}, nil
	})
	RegisterEngine("dotnet", func(opt Options) (Oracle, error) {
		// .NET's $ also matches before a final newline
		return &regexp2Engine{options: regexp2.None, end: `\z`, timeout: opt.matchTimeout()}, nil
	})
	RegisterEngine("re2", func(opt Options) (Oracle, error) {
		return &coregexEngine{}, nil
	})
}

// anchor makes pattern match a whole substring or nothing, end is the
// engine's end-of-text assertion.
func anchor(pattern, end string) string {
	return "^(?:" + pattern + ")" + end
}

// regexp2Engine matches with the backtracking regexp2 engine.
type regexp2Engine struct {
	options regexp2.RegexOptions
	end     string
	timeout time.Duration
}

func (e *regexp2Engine) Match(q Query) (*MatchResponse, error) {
	re, err := regexp2.Compile(anchor(q.Pattern, e.end), e.options)
	if err != nil {
		return &MatchResponse{Errors: err.Error()}, nil
	}
	re.MatchTimeout = e.timeout

	result := make([]Verdict, len(q.Substrings))
	for i, s := range q.Substrings {
		ok, err := re.MatchString(s.Text)
		if err != nil {
			// timeouts are the only expected error
			return &MatchResponse{Errors: err.Error()}, nil
		}
		result[i] = Verdict{Match: ok, Span: s.Span}
	}
	return &MatchResponse{OK: true, Result: result}, nil
}

// coregexEngine matches with coregex, RE2 syntax and linear time.
type coregexEngine struct{}

func (e *coregexEngine) Match(q Query) (*MatchResponse, error) {
	re, err := coregex.Compile(anchor(q.Pattern, "$"))
	if err != nil {
		return &MatchResponse{Errors: err.Error()}, nil
	}

	result := make([]Verdict, len(q.Substrings))
	for i, s := range q.Substrings {
		result[i] = Verdict{Match: re.MatchString(s.Text), Span: s.Span}
	}
	return &MatchResponse{OK: true, Result: result}, nil
}

// Package driver wires together the lexer, parser, evaluator and
// built-in registry into the two ways Hazel source gets run: an
// interactive REPL and batch loading of files from the command line.
// Grounded on the teacher's cmd/repl.go (bracket-tracking multiline
// continuation, github.com/c-bata/go-prompt) and cmd/cli.go (batch
// driver shape).
package driver

import (
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/hazellang/hazel/internal/builtin"
	"github.com/hazellang/hazel/internal/eval"
	"github.com/hazellang/hazel/internal/parser"
	"github.com/hazellang/hazel/internal/value"
)

const (
	replPrefix   = "hazel> "
	contPrefix   = "...... "
	sessionLabel = "<repl>"
	version      = "0.1.0"
	banner       = "Hazel version " + version + "\nEnter exit or :quit for closing repl"
)

// matching maps each opening Hazel delimiter to its closer.
var matching = map[rune]rune{'(': ')', '{': '}'}

// bracketStack tracks open delimiters across REPL lines so a form
// spanning multiple lines can be recognised as still-incomplete rather
// than handed to the parser (and rejected) one line at a time.
type bracketStack []rune

func (s *bracketStack) empty() bool { return len(*s) == 0 }
func (s *bracketStack) push(r rune) { *s = append(*s, r) }
func (s *bracketStack) pop() rune {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

type lineStatus int

const (
	complete lineStatus = iota // no open brackets remain
	pending                    // brackets still open, need more input
	mismatch                   // a closer didn't match the expected opener
)

// scan updates the stack with in's delimiters and classifies the result.
func (s *bracketStack) scan(in string) lineStatus {
	for _, r := range in {
		switch r {
		case '(', '{':
			s.push(r)
		case ')', '}':
			if s.empty() {
				return mismatch
			}
			if want := matching[s.pop()]; want != r {
				return mismatch
			}
		}
	}
	if s.empty() {
		return complete
	}
	return pending
}

// REPL is an interactive Hazel session over package value's global
// environment.
type REPL struct {
	env      *value.Env
	brackets bracketStack
	buf      string
	live     string
	liveOn   bool
}

// NewREPL creates a REPL sharing env (pass builtin.NewGlobalEnv() for a
// fresh session).
func NewREPL(env *value.Env) *REPL {
	return &REPL{env: env}
}

// Run starts the interactive prompt loop; it returns only on `exit`
// (which terminates the process directly) or on EOF/interrupt from
// go-prompt itself.
func (r *REPL) Run() {
	fmt.Println(banner)
	p := prompt.New(
		r.executor,
		r.completer,
		prompt.OptionPrefix(replPrefix),
		prompt.OptionLivePrefix(r.changeLivePrefix),
		prompt.OptionTitle("hazel"),
	)
	p.Run()
}

func (r *REPL) changeLivePrefix() (string, bool) {
	return r.live, r.liveOn
}

func (r *REPL) executor(in string) {
	if r.brackets.empty() {
		if trimmed := strings.TrimSpace(in); strings.HasPrefix(trimmed, ":") {
			r.runMeta(trimmed)
			return
		}
	}

	status := r.brackets.scan(in)
	r.buf += in + "\n"

	switch status {
	case pending:
		r.live = contPrefix
		r.liveOn = true
		return
	case mismatch:
		r.brackets = nil
	}

	r.liveOn = false
	source := r.buf
	r.buf = ""
	r.evalAndPrint(source)
}

func (r *REPL) evalAndPrint(source string) {
	root := parser.Parse(sessionLabel, source)
	if errNode := root.FindError(); errNode != nil {
		printParseError(errNode)
		return
	}
	for _, form := range root.Children {
		result := eval.Eval(r.env, value.FromAST(form))
		if result == nil {
			continue
		}
		printValue(result)
	}
}

// runMeta dispatches a REPL meta-command (spec_full.md §3/§4.9): a
// leading ':' outside of any open bracket never reaches the parser.
func (r *REPL) runMeta(cmd string) {
	name, arg, _ := strings.Cut(cmd, " ")
	switch name {
	case ":quit":
		os.Exit(0)
	case ":env":
		for _, n := range r.env.Names() {
			v := r.env.Get(value.NewSymbol(n, nil))
			fmt.Printf("%s = %s\n", n, v.String())
		}
	case ":funcs":
		fmt.Println(strings.Join(builtin.Names(), " "))
	case ":ast":
		root := parser.Parse(sessionLabel, strings.TrimSpace(arg))
		fmt.Println(root.String())
	default:
		fmt.Printf("Unknown meta-command %q. Try :quit, :env, :funcs or :ast.\n", name)
	}
}

func (r *REPL) completer(in prompt.Document) []prompt.Suggest {
	word := in.GetWordBeforeCursor()
	if word == "" {
		return nil
	}
	var suggestions []prompt.Suggest
	for _, name := range r.env.Names() {
		suggestions = append(suggestions, prompt.Suggest{Text: name})
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}

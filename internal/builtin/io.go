package builtin

import (
	"fmt"
	"os"

	"github.com/hazellang/hazel/internal/parser"
	"github.com/hazellang/hazel/internal/token"
	"github.com/hazellang/hazel/internal/value"
)

// Color controls whether errors surfaced while loading a file get ANSI
// red highlighting. Set once at startup from the CLI's --no-color flag
// (spec_full.md §4.10); off by default (and left off whenever stdout
// isn't a terminal, per the CLI layer's own TTY check).
var Color bool

func printError(v *value.Value) {
	s := v.String()
	if Color {
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	fmt.Println(s)
}

// Print writes each argument separated by a space, then a newline
// (original builtin_print).
func Print(env *value.Env, args []*value.Value) *value.Value {
	for i, a := range args {
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Print(a.String())
	}
	fmt.Println()
	return value.NewSExpr(ctxOf(args))
}

// MakeError turns its single String argument into a first-class Error
// value carrying the call's context (original builtin_error).
func MakeError(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("error", args, 1); e != nil {
		return e
	}
	if e := assertType("error", args, 0, value.String); e != nil {
		return e
	}
	return value.NewError(ctxOf(args), "%s", args[0].Str)
}

// Exit terminates the process immediately (original builtin_exit).
func Exit(env *value.Env, args []*value.Value) *value.Value {
	os.Exit(0)
	return nil // unreachable
}

// Load reads, tokenizes, parses and evaluates every top-level form in
// the named file in order. Any Error result from evaluating a form is
// printed rather than propagated, and the remaining forms still run
// (original builtin_load_file). A file that cannot be read, or that
// fails to parse, becomes a single propagated Error instead.
func Load(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("load", args, 1); e != nil {
		return e
	}
	if e := assertType("load", args, 0, value.String); e != nil {
		return e
	}
	return LoadFile(env, args[0].Str, ctxOf(args))
}

// LoadFile is the shared implementation behind the `load` builtin and
// the CLI's batch-mode file loading, wrapping the OS-level read error
// with the path and operation before converting it to a language Error
// (spec_full.md §7).
func LoadFile(env *value.Env, path string, ctx *token.SourceContext) *value.Value {
	content, err := os.ReadFile(path)
	if err != nil {
		return value.NewError(ctx, "Could not load '%s': %s", path, describeReadErr(err))
	}

	root := parser.Parse(path, string(content))
	if errNode := root.FindError(); errNode != nil {
		return value.NewError(ctx, "Could not load %s: \n%s", path, errNode.Text)
	}

	for _, form := range root.Children {
		result := evalFn(env, value.FromAST(form))
		if result.IsError() {
			printError(result)
		}
	}
	return value.NewSExpr(ctx)
}

func describeReadErr(err error) string {
	if os.IsNotExist(err) {
		return "Failed to load file: no such file"
	}
	if os.IsPermission(err) {
		return "Failed to load file: permission denied"
	}
	return "Failed to load file: " + err.Error()
}

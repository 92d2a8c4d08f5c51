package driver

import (
	"fmt"

	"github.com/hazellang/hazel/internal/ast"
	"github.com/hazellang/hazel/internal/builtin"
	"github.com/hazellang/hazel/internal/eval"
	"github.com/hazellang/hazel/internal/parser"
	"github.com/hazellang/hazel/internal/token"
	"github.com/hazellang/hazel/internal/value"
)

// LoadFiles loads each path into env in order, via the same LoadFile
// used by the `load` builtin, printing any resulting Error rather than
// aborting the remaining files (spec.md §9 batch-mode resolution:
// "process them and exit").
func LoadFiles(env *value.Env, paths []string) {
	for _, path := range paths {
		result := builtin.LoadFile(env, path, nil)
		if result.IsError() {
			printValue(result)
		}
	}
}

// Eval parses and evaluates a single inline source string (the CLI's
// `-c/--eval` mode), printing every top-level result.
func Eval(env *value.Env, source string) {
	root := parser.Parse(sessionLabel, source)
	if errNode := root.FindError(); errNode != nil {
		printParseError(errNode)
		return
	}
	for _, form := range root.Children {
		result := eval.Eval(env, value.FromAST(form))
		printValue(result)
	}
}

// printValue shows a Value result, applying spec.md §6's location-aware
// error format and, when builtin.Color is on, ANSI highlighting for
// errors.
func printValue(v *value.Value) {
	s := v.String()
	if v.IsError() && builtin.Color {
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	fmt.Println(s)
}

// printParseError shows a lex/parse Error node using the same
// presentation format as runtime errors (spec.md §6).
func printParseError(errNode *ast.Node) {
	s := token.FormatError(errNode.Ctx, errNode.Text)
	if builtin.Color {
		s = "\x1b[31m" + s + "\x1b[0m"
	}
	fmt.Println(s)
}

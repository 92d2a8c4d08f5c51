package builtin

import "github.com/hazellang/hazel/internal/value"

// entry pairs a registered name with its host callable, used to build
// both the global environment and the REPL's `:funcs` introspection
// listing (spec_full.md §3 — grounded on the decorator-DSL example
// repo's registry-of-callables pattern).
type entry struct {
	Name string
	Fn   value.BuiltinFunc
}

// Registry lists every built-in Hazel ships with, in the same grouping
// as the original interpreter's lenv_add_builtins.
var Registry = []entry{
	// List functions.
	{"list", List},
	{"head", Head},
	{"tail", Tail},
	{"eval", Eval},
	{"join", Join},

	// Arithmetic.
	{"+", Add},
	{"-", Sub},
	{"*", Mul},
	{"/", Div},

	// Variable definition.
	{"def", Def},
	{"=", Put},

	// Process control.
	{"exit", Exit},

	// User-defined functions.
	{"lambda", Lambda},
	{"fun", Fun},

	// Conditionals and comparison.
	{"if", If},
	{"==", Eq},
	{"!=", Ne},
	{"<", Lt},
	{"<=", Le},
	{">", Gt},
	{">=", Ge},
	{"||", Or},
	{"&&", And},
	{"!", Not},

	// I/O.
	{"load", Load},
	{"error", MakeError},
	{"print", Print},
}

// NewGlobalEnv builds a root Env with every builtin and the `true`/
// `false` preloaded bindings registered (original lenv_add_builtins).
func NewGlobalEnv() *value.Env {
	env := value.NewEnv(nil)
	for _, e := range Registry {
		env.Put(e.Name, value.NewBuiltin(e.Name, e.Fn))
	}
	env.Put("true", value.NewInteger(1, nil))
	env.Put("false", value.NewInteger(0, nil))
	return env
}

// Names returns every registered builtin name, in registration order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, e := range Registry {
		names[i] = e.Name
	}
	return names
}

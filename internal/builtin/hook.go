package builtin

import "github.com/hazellang/hazel/internal/value"

// evalFn performs a full Eval of v in env. It is supplied by package eval
// via SetEvaluator at program startup, so this package never imports
// package eval; the builtins that evaluate Hazel values themselves
// (eval, if, load) call it.
var evalFn func(env *value.Env, v *value.Value) *value.Value

// SetEvaluator installs the tree-walking evaluator used by builtins that
// need to evaluate a Hazel value themselves. Called once, from package
// eval's init.
func SetEvaluator(fn func(env *value.Env, v *value.Value) *value.Value) {
	evalFn = fn
}

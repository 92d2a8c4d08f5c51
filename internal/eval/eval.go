// Package eval implements Hazel's tree-walking evaluator: Eval reduces a
// read Value to normal form, and Call applies a Function (builtin or
// user-defined) to already-evaluated arguments. Grounded on the original
// interpreter's lval_eval/lval_eval_sexpr/lval_call (original_source/builtins.c).
package eval

import (
	"github.com/hazellang/hazel/internal/value"
)

// Eval reduces v in env to normal form (spec.md §4.6):
//   - a Symbol resolves against env, becoming its bound value (or an
//     Unbound Symbol Error);
//   - an SExpr evaluates every child left to right, short-circuiting on
//     the first Error; an empty SExpr evaluates to itself; a
//     single-child SExpr unwraps to that child; otherwise the first
//     child must be a Function, applied to the rest via Call;
//   - every other Kind (Integer, String, QExpr, Function, Error)
//     evaluates to itself.
func Eval(env *value.Env, v *value.Value) *value.Value {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case value.Symbol:
		return env.Get(v)
	case value.SExpr:
		return evalSExpr(env, v)
	default:
		return v
	}
}

func evalSExpr(env *value.Env, v *value.Value) *value.Value {
	children := make([]*value.Value, len(v.Children))
	copy(children, v.Children)

	for i, c := range children {
		evaluated := Eval(env, c)
		if evaluated.IsError() {
			return evaluated
		}
		children[i] = evaluated
	}

	switch len(children) {
	case 0:
		return value.NewSExpr(v.Ctx)
	case 1:
		return children[0]
	}

	f := children[0]
	if f.Kind != value.Function {
		return value.NewError(f.Ctx, "S-Expression starts with incorrect type, "+
			"expected %s, got %s", value.Function, f.Kind)
	}
	return Call(env, f, children[1:])
}

// Call applies f to args, already-evaluated values (spec.md §4.6):
//   - a Builtin function simply invokes its host callable;
//   - a UserDefined function binds formals to args one at a time,
//     supporting a trailing `& rest` formal that captures every
//     remaining argument as a QExpr (variadic binding, spec.md §4.6/§9);
//     supplying more arguments than formals allow (with no variadic
//     formal to absorb them) is an error;
//   - once every formal is bound, the call is complete: the captured
//     environment's parent is reassigned to env (the call-site scope)
//     and the body is evaluated as an SExpr in that environment;
//   - supplying fewer arguments than formals leaves a partially
//     applied function, returned as a fresh copy (closures capture by
//     value at this point, not by reference to the caller's env).
func Call(env *value.Env, f *value.Value, args []*value.Value) *value.Value {
	if f.FnKind == value.Builtin {
		return f.BuiltinFn(env, args)
	}
	return callLambda(env, f, args)
}

func callLambda(env *value.Env, f *value.Value, args []*value.Value) *value.Value {
	fn := f.Copy()
	formals := fn.Formals.Children
	totalArgs := len(args)

	for len(args) > 0 {
		if len(formals) == 0 {
			return value.NewError(f.Ctx,
				"Function passed too many arguments. Got %d, Expected %d.",
				totalArgs, len(f.Formals.Children))
		}

		sym := formals[0]
		formals = formals[1:]

		if sym.Str == "&" {
			if len(formals) != 1 {
				return value.NewError(f.Ctx,
					"Function format invalid. Symbol '&' not followed by single symbol.")
			}
			rest := formals[0]
			fn.Env.Put(rest.Str, value.NewQExpr(f.Ctx, args...))
			args = nil
			formals = nil
			break
		}

		fn.Env.Put(sym.Str, args[0])
		args = args[1:]
	}

	if len(formals) > 0 && formals[0].Str == "&" {
		if len(formals) != 2 {
			return value.NewError(f.Ctx,
				"Function format invalid. Symbol '&' not followed by single symbol.")
		}
		fn.Env.Put(formals[1].Str, value.NewQExpr(f.Ctx))
		formals = nil
	}

	fn.Formals.Children = formals
	if len(formals) > 0 {
		return fn
	}

	fn.Env.SetParent(env)
	body := fn.Body.Copy()
	body.Kind = value.SExpr
	return Eval(fn.Env, body)
}

package builtin

import "github.com/hazellang/hazel/internal/value"

// List wraps args as a QExpr, unevaluated (spec.md §4.7 list).
func List(env *value.Env, args []*value.Value) *value.Value {
	return value.NewQExpr(ctxOf(args), args...)
}

// Head returns a QExpr containing only the first element of its single
// QExpr argument.
func Head(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("head", args, 1); e != nil {
		return e
	}
	if e := assertType("head", args, 0, value.QExpr); e != nil {
		return e
	}
	if e := assertNotEmpty("head", args, 0); e != nil {
		return e
	}
	return value.NewQExpr(args[0].Ctx, args[0].Children[0])
}

// Tail returns a QExpr containing every element but the first of its
// single QExpr argument.
func Tail(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("tail", args, 1); e != nil {
		return e
	}
	if e := assertType("tail", args, 0, value.QExpr); e != nil {
		return e
	}
	if e := assertNotEmpty("tail", args, 0); e != nil {
		return e
	}
	rest := append([]*value.Value(nil), args[0].Children[1:]...)
	return value.NewQExpr(args[0].Ctx, rest...)
}

// Join concatenates any number of QExpr arguments into one.
func Join(env *value.Env, args []*value.Value) *value.Value {
	var out []*value.Value
	for i, a := range args {
		if e := assertType("join", args, i, value.QExpr); e != nil {
			return e
		}
		out = append(out, a.Children...)
	}
	return value.NewQExpr(ctxOf(args), out...)
}

// Eval re-evaluates its single QExpr argument's contents as an SExpr,
// i.e. as if it had been a literal s-expression form in source.
func Eval(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("eval", args, 1); e != nil {
		return e
	}
	if e := assertType("eval", args, 0, value.QExpr); e != nil {
		return e
	}
	return evalFn(env, value.NewSExpr(args[0].Ctx, args[0].Children...))
}

package builtin

import "github.com/hazellang/hazel/internal/value"

// If evaluates its second argument if the first (an Integer condition)
// is non-zero, otherwise its third; both branches are QExprs reread as
// SExprs before evaluation (original builtin_if).
func If(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("if", args, 3); e != nil {
		return e
	}
	if e := assertType("if", args, 0, value.Integer); e != nil {
		return e
	}
	if e := assertType("if", args, 1, value.QExpr); e != nil {
		return e
	}
	if e := assertType("if", args, 2, value.QExpr); e != nil {
		return e
	}

	branch := args[2]
	if args[0].Int != 0 {
		branch = args[1]
	}
	return evalFn(env, value.NewSExpr(branch.Ctx, branch.Children...))
}

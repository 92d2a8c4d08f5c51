package builtin

import "github.com/hazellang/hazel/internal/value"

// Add, Sub, Mul and Div all dispatch through op, which folds over
// already-typechecked Integer arguments (spec.md §4.7, original
// builtin_op). Sub with a single argument performs unary negation.
func Add(env *value.Env, args []*value.Value) *value.Value { return op("+", args) }
func Sub(env *value.Env, args []*value.Value) *value.Value { return op("-", args) }
func Mul(env *value.Env, args []*value.Value) *value.Value { return op("*", args) }
func Div(env *value.Env, args []*value.Value) *value.Value { return op("/", args) }

func op(sym string, args []*value.Value) *value.Value {
	for i := range args {
		if e := assertType(sym, args, i, value.Integer); e != nil {
			return e
		}
	}
	if len(args) == 0 {
		return errf(args, "Function '%s' passed incorrect number of arguments. Got 0, Expected at least 1.", sym)
	}

	acc := args[0].Int
	ctx := args[0].Ctx

	if sym == "-" && len(args) == 1 {
		return value.NewInteger(-acc, ctx)
	}

	for _, y := range args[1:] {
		switch sym {
		case "+":
			acc += y.Int
		case "-":
			acc -= y.Int
		case "*":
			acc *= y.Int
		case "/":
			if y.Int == 0 {
				return value.NewError(y.Ctx, "Division By Zero!")
			}
			acc /= y.Int
		}
	}
	return value.NewInteger(acc, ctx)
}

// Gt, Lt, Ge and Le compare two Integers. Unlike the original
// interpreter (which has `<` and `>` swapped — a known bug), these
// implement mathematically correct semantics (spec_full.md §9).
func Gt(env *value.Env, args []*value.Value) *value.Value { return ord(">", args) }
func Lt(env *value.Env, args []*value.Value) *value.Value { return ord("<", args) }
func Ge(env *value.Env, args []*value.Value) *value.Value { return ord(">=", args) }
func Le(env *value.Env, args []*value.Value) *value.Value { return ord("<=", args) }

func ord(sym string, args []*value.Value) *value.Value {
	if e := assertNum(sym, args, 2); e != nil {
		return e
	}
	if e := assertType(sym, args, 0, value.Integer); e != nil {
		return e
	}
	if e := assertType(sym, args, 1, value.Integer); e != nil {
		return e
	}
	a, b := args[0].Int, args[1].Int
	var r bool
	switch sym {
	case ">":
		r = a > b
	case "<":
		r = a < b
	case ">=":
		r = a >= b
	case "<=":
		r = a <= b
	}
	return value.NewInteger(boolInt(r), args[0].Ctx)
}

// Eq and Ne compare any two values structurally (value.Equal).
func Eq(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("==", args, 2); e != nil {
		return e
	}
	return value.NewInteger(boolInt(value.Equal(args[0], args[1])), ctxOf(args))
}

func Ne(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("!=", args, 2); e != nil {
		return e
	}
	return value.NewInteger(boolInt(!value.Equal(args[0], args[1])), ctxOf(args))
}

// Or, And and Not are logical operators over Integers, where 0 is false
// and any other value is true.
func Or(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("||", args, 2); e != nil {
		return e
	}
	if e := assertType("||", args, 0, value.Integer); e != nil {
		return e
	}
	if e := assertType("||", args, 1, value.Integer); e != nil {
		return e
	}
	return value.NewInteger(boolInt(args[0].Int != 0 || args[1].Int != 0), ctxOf(args))
}

func And(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("&&", args, 2); e != nil {
		return e
	}
	if e := assertType("&&", args, 0, value.Integer); e != nil {
		return e
	}
	if e := assertType("&&", args, 1, value.Integer); e != nil {
		return e
	}
	return value.NewInteger(boolInt(args[0].Int != 0 && args[1].Int != 0), ctxOf(args))
}

func Not(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("!", args, 1); e != nil {
		return e
	}
	if e := assertType("!", args, 0, value.Integer); e != nil {
		return e
	}
	return value.NewInteger(boolInt(args[0].Int == 0), ctxOf(args))
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

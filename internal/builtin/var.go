package builtin

import "github.com/hazellang/hazel/internal/value"

// Def binds each symbol in its first (QExpr) argument to the
// corresponding remaining argument, in the root environment — visible
// everywhere after it runs (original builtin_var / "def").
func Def(env *value.Env, args []*value.Value) *value.Value {
	return varBind(env, args, "def", (*value.Env).Def)
}

// Put binds each symbol in its first (QExpr) argument to the
// corresponding remaining argument, in the current environment only
// (original builtin_var / "=").
func Put(env *value.Env, args []*value.Value) *value.Value {
	return varBind(env, args, "=", (*value.Env).Put)
}

func varBind(env *value.Env, args []*value.Value, name string, bind func(*value.Env, string, *value.Value)) *value.Value {
	if e := assertMinNum(name, args, 1); e != nil {
		return e
	}
	if e := assertType(name, args, 0, value.QExpr); e != nil {
		return e
	}
	syms := args[0].Children
	for _, s := range syms {
		if s.Kind != value.Symbol {
			return errf(args, "Function %s cannot define non-symbol. Got %s, Expected %s.",
				name, s.Kind, value.Symbol)
		}
	}
	if len(syms) != len(args)-1 {
		return errf(args, "Function %s should define equal no of values and symbols. %d symbols, %d values.",
			name, len(syms), len(args)-1)
	}
	for i, s := range syms {
		bind(env, s.Str, args[i+1])
	}
	return value.NewSExpr(ctxOf(args))
}

// Lambda builds an anonymous user-defined Function from a formals
// QExpr and a body QExpr (original builtin_lambda).
func Lambda(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("lambda", args, 2); e != nil {
		return e
	}
	if e := assertType("lambda", args, 0, value.QExpr); e != nil {
		return e
	}
	if e := assertType("lambda", args, 1, value.QExpr); e != nil {
		return e
	}
	for _, s := range args[0].Children {
		if s.Kind != value.Symbol {
			return errf(args, "Cannot define non-symbol. Got %s, Expected %s.", s.Kind, value.Symbol)
		}
	}
	return value.NewLambda(args[0], args[1], env, ctxOf(args))
}

// Fun is sugar for named function definition: `(fun {name p1 p2} body)`
// pops the name out of the formals list and defines it in one step
// (original builtin_fun).
func Fun(env *value.Env, args []*value.Value) *value.Value {
	if e := assertNum("fun", args, 2); e != nil {
		return e
	}
	if e := assertType("fun", args, 0, value.QExpr); e != nil {
		return e
	}
	if e := assertType("fun", args, 1, value.QExpr); e != nil {
		return e
	}
	if e := assertNotEmpty("fun", args, 0); e != nil {
		return e
	}
	for _, s := range args[0].Children {
		if s.Kind != value.Symbol {
			return errf(args, "Cannot define non-symbol. Got %s, Expected %s.", s.Kind, value.Symbol)
		}
	}

	name := args[0].Children[0]
	formals := value.NewQExpr(args[0].Ctx, args[0].Children[1:]...)
	fn := value.NewLambda(formals, args[1], env, ctxOf(args))

	names := value.NewQExpr(name.Ctx, name)
	return Def(env, []*value.Value{names, fn})
}

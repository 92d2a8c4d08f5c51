// Package builtin implements Hazel's standard library of host functions:
// list operations, arithmetic, ordering/equality, logical operators,
// variable and function definition, control flow, and I/O. Grounded on
// the original interpreter's builtin_* family and their LASSERT macros
// (original_source/builtins.c).
package builtin

import (
	"github.com/hazellang/hazel/internal/token"
	"github.com/hazellang/hazel/internal/value"
)

// assertNum reports an arity error unless len(args) == want.
func assertNum(name string, args []*value.Value, want int) *value.Value {
	if len(args) != want {
		return errf(args, "Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, len(args), want)
	}
	return nil
}

// assertMinNum reports an arity error unless len(args) >= want.
func assertMinNum(name string, args []*value.Value, want int) *value.Value {
	if len(args) < want {
		return errf(args, "Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.",
			name, len(args), want)
	}
	return nil
}

// assertType reports a type error unless args[index] has the given kind.
func assertType(name string, args []*value.Value, index int, kind value.Kind) *value.Value {
	if args[index].Kind != kind {
		return errf(args, "Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, index, args[index].Kind, kind)
	}
	return nil
}

// assertNotEmpty reports an error unless args[index] (a QExpr) has children.
func assertNotEmpty(name string, args []*value.Value, index int) *value.Value {
	if len(args[index].Children) == 0 {
		return errf(args, "Function '%s' passed {} for argument %d.", name, index)
	}
	return nil
}

func errf(args []*value.Value, format string, a ...interface{}) *value.Value {
	return value.NewError(ctxOf(args), format, a...)
}

func ctxOf(args []*value.Value) *token.SourceContext {
	if len(args) > 0 {
		return args[0].Ctx
	}
	return nil
}

package value

import "reflect"

// Equal implements Hazel's structural `eq`: reflexive, symmetric and
// transitive across every Kind (spec.md §8). Functions compare equal only
// when both are builtins pointing at the same host callable, or both are
// user-defined with structurally equal formals and bodies (the captured
// environment is NOT part of function identity).
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Integer:
		return a.Int == b.Int
	case String, Symbol, Error:
		return a.Str == b.Str
	case SExpr, QExpr:
		return equalChildren(a.Children, b.Children)
	case Function:
		return equalFunc(a, b)
	default:
		return false
	}
}

func equalChildren(a, b []*Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFunc(a, b *Value) bool {
	if a.FnKind != b.FnKind {
		return false
	}
	if a.FnKind == Builtin {
		return reflect.ValueOf(a.BuiltinFn).Pointer() == reflect.ValueOf(b.BuiltinFn).Pointer()
	}
	return Equal(a.Formals, b.Formals) && Equal(a.Body, b.Body)
}

package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualIntegers(t *testing.T) {
	assert.True(t, Equal(NewInteger(1, nil), NewInteger(1, nil)))
	assert.False(t, Equal(NewInteger(1, nil), NewInteger(2, nil)))
}

func TestEqualAcrossDifferentKinds(t *testing.T) {
	assert.False(t, Equal(NewInteger(1, nil), NewString("1", nil)))
}

func TestEqualQExprStructural(t *testing.T) {
	a := NewQExpr(nil, NewInteger(1, nil), NewSymbol("x", nil))
	b := NewQExpr(nil, NewInteger(1, nil), NewSymbol("x", nil))
	c := NewQExpr(nil, NewInteger(1, nil), NewSymbol("y", nil))

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqualBuiltinsBySameCallable(t *testing.T) {
	fn := func(env *Env, args []*Value) *Value { return nil }
	a := NewBuiltin("f", fn)
	b := NewBuiltin("f", fn)
	other := NewBuiltin("g", func(env *Env, args []*Value) *Value { return nil })

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, other))
}

func TestEqualLambdasByFormalsAndBody(t *testing.T) {
	parent := NewEnv(nil)
	a := NewLambda(NewQExpr(nil, NewSymbol("x", nil)), NewQExpr(nil, NewSymbol("x", nil)), parent, nil)
	b := NewLambda(NewQExpr(nil, NewSymbol("x", nil)), NewQExpr(nil, NewSymbol("x", nil)), parent, nil)

	assert.True(t, Equal(a, b))
}

func TestEqualNilHandling(t *testing.T) {
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(NewInteger(1, nil), nil))
}

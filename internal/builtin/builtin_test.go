package builtin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazellang/hazel/internal/builtin"
	_ "github.com/hazellang/hazel/internal/eval" // registers the evaluator hook
	"github.com/hazellang/hazel/internal/value"
)

func call(t *testing.T, name string, args ...*value.Value) *value.Value {
	t.Helper()
	env := builtin.NewGlobalEnv()
	fn := env.Get(value.NewSymbol(name, nil))
	require.False(t, fn.IsError(), "builtin %q not registered", name)
	require.Equal(t, value.Function, fn.Kind)
	return fn.BuiltinFn(env, args)
}

func TestHeadAndTail(t *testing.T) {
	list := value.NewQExpr(nil, value.NewInteger(1, nil), value.NewInteger(2, nil), value.NewInteger(3, nil))

	head := call(t, "head", list)
	require.Len(t, head.Children, 1)
	assert.Equal(t, int64(1), head.Children[0].Int)

	tail := call(t, "tail", list)
	require.Len(t, tail.Children, 2)
	assert.Equal(t, int64(2), tail.Children[0].Int)
}

func TestHeadOnEmptyListIsError(t *testing.T) {
	got := call(t, "head", value.NewQExpr(nil))
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "passed {} for argument 0")
}

func TestJoinConcatenatesQExprs(t *testing.T) {
	a := value.NewQExpr(nil, value.NewInteger(1, nil))
	b := value.NewQExpr(nil, value.NewInteger(2, nil), value.NewInteger(3, nil))
	got := call(t, "join", a, b)
	require.Len(t, got.Children, 3)
}

func TestJoinRejectsNonQExpr(t *testing.T) {
	got := call(t, "join", value.NewInteger(1, nil))
	require.True(t, got.IsError())
}

func TestListWrapsArgsUnevaluated(t *testing.T) {
	got := call(t, "list", value.NewInteger(1, nil), value.NewInteger(2, nil))
	assert.Equal(t, value.QExpr, got.Kind)
	require.Len(t, got.Children, 2)
}

func TestArithmeticTypeError(t *testing.T) {
	got := call(t, "+", value.NewInteger(1, nil), value.NewString("x", nil))
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "incorrect type")
}

func TestDefRequiresEqualSymbolsAndValues(t *testing.T) {
	syms := value.NewQExpr(nil, value.NewSymbol("a", nil), value.NewSymbol("b", nil))
	got := call(t, "def", syms, value.NewInteger(1, nil))
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "should define equal no of values and symbols")
}

func TestMakeErrorProducesErrorValue(t *testing.T) {
	got := call(t, "error", value.NewString("custom failure", nil))
	require.True(t, got.IsError())
	assert.Equal(t, "custom failure", got.Str)
}

func TestLambdaRejectsNonSymbolFormal(t *testing.T) {
	formals := value.NewQExpr(nil, value.NewInteger(1, nil))
	body := value.NewQExpr(nil)
	got := call(t, "lambda", formals, body)
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "Cannot define non-symbol")
}

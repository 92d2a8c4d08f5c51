package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazellang/hazel/internal/builtin"
	"github.com/hazellang/hazel/internal/eval"
	"github.com/hazellang/hazel/internal/parser"
	"github.com/hazellang/hazel/internal/value"
)

// run parses and evaluates every top-level form of src in a fresh
// global environment, returning the final form's result (spec.md §6
// worked examples are all single-form sources).
func run(t *testing.T, src string) *value.Value {
	t.Helper()
	env := builtin.NewGlobalEnv()
	root := parser.Parse("t", src)
	require.False(t, root.IsError(), "parse error: %s", root.Text)

	var result *value.Value
	for _, form := range root.Children {
		result = eval.Eval(env, value.FromAST(form))
	}
	return result
}

func TestEvalArithmetic(t *testing.T) {
	got := run(t, "(+ 1 2 3)")
	require.Equal(t, value.Integer, got.Kind)
	assert.Equal(t, int64(6), got.Int)
}

func TestEvalUnaryNegation(t *testing.T) {
	got := run(t, "(- 5)")
	assert.Equal(t, int64(-5), got.Int)
}

func TestEvalDivisionByZero(t *testing.T) {
	got := run(t, "(/ 1 0)")
	require.True(t, got.IsError())
	assert.Equal(t, "Division By Zero!", got.Str)
}

func TestEvalNestedSExprs(t *testing.T) {
	got := run(t, "(* (+ 1 2) (- 10 4))")
	assert.Equal(t, int64(18), got.Int)
}

func TestEvalDefAndSymbolLookup(t *testing.T) {
	got := run(t, "(def {x} 10) (+ x 5)")
	assert.Equal(t, int64(15), got.Int)
}

func TestEvalUnboundSymbol(t *testing.T) {
	got := run(t, "undefined-name")
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "Unbound Symbol 'undefined-name'")
}

func TestEvalLambdaApplication(t *testing.T) {
	got := run(t, "((lambda {x y} {+ x y}) 3 4)")
	assert.Equal(t, int64(7), got.Int)
}

func TestEvalPartialApplication(t *testing.T) {
	got := run(t, "(def {add} (lambda {x y} {+ x y})) (def {add5} (add 5)) (add5 10)")
	assert.Equal(t, int64(15), got.Int)
}

// A fully applied call reparents the function's environment to the call
// site, so the inner lambda no longer sees the outer call's `n`.
func TestEvalFullApplicationReparentsToCallSite(t *testing.T) {
	got := run(t, `
		(def {make-adder} (lambda {n} {lambda {x} {+ x n}}))
		(def {add10} (make-adder 10))
		(add10 5)
	`)
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "Unbound Symbol 'n'")
}

func TestEvalVariadicPack(t *testing.T) {
	got := run(t, "(def {pack} (lambda {& xs} {xs})) (pack 1 2 3)")
	require.Equal(t, value.QExpr, got.Kind)
	require.Len(t, got.Children, 3)
	assert.Equal(t, int64(1), got.Children[0].Int)
	assert.Equal(t, int64(3), got.Children[2].Int)
}

func TestEvalTooManyArguments(t *testing.T) {
	got := run(t, "(def {f} (lambda {x} {x})) (f 1 2)")
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "too many arguments")
}

func TestEvalFunRecursionListLength(t *testing.T) {
	got := run(t, `
		(fun {len l} {if (== l {}) {0} {+ 1 (len (tail l))}})
		(len {1 2 3 4 5})
	`)
	assert.Equal(t, int64(5), got.Int)
}

func TestEvalErrorShortCircuitsEnclosingSExpr(t *testing.T) {
	got := run(t, "(+ 1 (error \"boom\") 2)")
	require.True(t, got.IsError())
	assert.Equal(t, "boom", got.Str)
}

func TestEvalComparisonSemanticsAreNotInverted(t *testing.T) {
	assert.Equal(t, int64(1), run(t, "(< 1 2)").Int)
	assert.Equal(t, int64(0), run(t, "(< 2 1)").Int)
	assert.Equal(t, int64(1), run(t, "(> 2 1)").Int)
	assert.Equal(t, int64(0), run(t, "(> 1 2)").Int)
}

func TestEvalEmptySExprEvaluatesToItself(t *testing.T) {
	got := run(t, "()")
	require.Equal(t, value.SExpr, got.Kind)
	assert.Empty(t, got.Children)
}

func TestEvalSingletonSExprUnwraps(t *testing.T) {
	got := run(t, "(5)")
	assert.Equal(t, int64(5), got.Int)
}

func TestEvalNonFunctionHeadIsError(t *testing.T) {
	got := run(t, "(1 2 3)")
	require.True(t, got.IsError())
	assert.Contains(t, got.Str, "S-Expression starts with incorrect type")
}

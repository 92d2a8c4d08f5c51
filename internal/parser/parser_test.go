package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hazellang/hazel/internal/ast"
)

func TestParseSimpleSExpr(t *testing.T) {
	root := Parse("t", "(+ 1 2)")
	require.False(t, root.IsError())
	require.Len(t, root.Children, 1)

	form := root.Children[0]
	assert.Equal(t, ast.SExpr, form.Kind)
	require.Len(t, form.Children, 3)
	assert.Equal(t, ast.Symbol, form.Children[0].Kind)
	assert.Equal(t, "+", form.Children[0].Text)
	assert.Equal(t, "1", form.Children[1].Text)
	assert.Equal(t, "2", form.Children[2].Text)
}

func TestParseNestedQExpr(t *testing.T) {
	root := Parse("t", "{1 {2 3} a}")
	require.False(t, root.IsError())
	require.Len(t, root.Children, 1)

	q := root.Children[0]
	assert.Equal(t, ast.QExpr, q.Kind)
	require.Len(t, q.Children, 3)
	assert.Equal(t, ast.QExpr, q.Children[1].Kind)
}

func TestParseMultipleTopLevelForms(t *testing.T) {
	root := Parse("t", "1 2 (+ 1 2)")
	require.False(t, root.IsError())
	assert.Len(t, root.Children, 3)
}

func TestParseUnbalancedOpenParen(t *testing.T) {
	root := Parse("t", "(+ 1 2")
	assert.True(t, root.IsError())
	assert.Contains(t, root.Text, "missing s-expression closing brace")
}

func TestParseExtraClosingParen(t *testing.T) {
	root := Parse("t", "(+ 1 2))")
	assert.True(t, root.IsError())
	assert.Contains(t, root.Text, "encountered extra")
}

func TestParseMismatchedBraceKind(t *testing.T) {
	root := Parse("t", "(1 2}")
	assert.True(t, root.IsError())
}

func TestParseEmptyInput(t *testing.T) {
	root := Parse("t", "")
	require.False(t, root.IsError())
	assert.Empty(t, root.Children)
}

func TestParsePropagatesTokenizerError(t *testing.T) {
	root := Parse("t", `"unterminated`)
	assert.True(t, root.IsError())
	assert.Contains(t, root.Text, "missing string delimiter")
}

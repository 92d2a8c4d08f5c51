package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceContextCopyIsNilSafe(t *testing.T) {
	var ctx *SourceContext
	assert.Nil(t, ctx.Copy())
}

func TestSourceContextCopyIsIndependent(t *testing.T) {
	ctx := &SourceContext{Name: "t", Row: 1, Column: 2, Trace: "line"}
	cp := ctx.Copy()
	cp.Row = 99
	assert.Equal(t, 1, ctx.Row)
}

func TestErrorFormatsLocatedMessage(t *testing.T) {
	ctx := &SourceContext{Name: "t", Row: 3, Column: 5, Trace: "(+ 1 2"}
	err := NewError(ctx, "missing s-expression closing brace, expected '%s'", ")")

	assert.Contains(t, err.Error(), "Error on row 3 column 5")
	assert.Contains(t, err.Error(), "missing s-expression closing brace")
	assert.Contains(t, err.Error(), "(+ 1 2")
}

func TestErrorWithNilContext(t *testing.T) {
	err := NewError(nil, "boom")
	assert.Equal(t, "boom", err.Error())
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "NUMBER", NUMBER.String())
	assert.Equal(t, "EOF", EOF.String())
}

package value

import (
	"strconv"

	"github.com/hazellang/hazel/internal/ast"
)

// FromAST converts a parsed ast.Node into a runtime Value, the "read"
// half of Hazel's read-eval-print loop (spec.md §4.4). A Number leaf is
// read with a base-10 signed 64-bit parse; since the lexer's numeric
// class also accepts '.', a decimal literal like "3.14" lexes as one
// NUMBER token but fails this parse, yielding Error("invalid number")
// rather than silently truncating (spec_full.md §9) — same for
// magnitude overflow.
func FromAST(n *ast.Node) *Value {
	switch n.Kind {
	case ast.Number:
		i, err := strconv.ParseInt(n.Text, 10, 64)
		if err != nil {
			return NewError(n.Ctx, "invalid number")
		}
		return NewInteger(i, n.Ctx)
	case ast.String:
		return NewString(n.Text, n.Ctx)
	case ast.Symbol:
		return NewSymbol(n.Text, n.Ctx)
	case ast.Error:
		return NewError(n.Ctx, "%s", n.Text)
	case ast.SExpr:
		return NewSExpr(n.Ctx, readChildren(n.Children)...)
	case ast.QExpr:
		return NewQExpr(n.Ctx, readChildren(n.Children)...)
	default:
		return NewError(n.Ctx, "cannot read node of kind %s", n.Kind)
	}
}

func readChildren(nodes []*ast.Node) []*Value {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Value, len(nodes))
	for i, c := range nodes {
		out[i] = FromAST(c)
	}
	return out
}

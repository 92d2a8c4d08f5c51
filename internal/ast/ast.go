// Package ast defines the parse tree produced by package parser: a tagged
// union of Number/String/Symbol leaves, SExpr/QExpr compound forms, and
// Error diagnostic nodes, every one carrying a source context.
package ast

import (
	"strings"

	"github.com/hazellang/hazel/internal/token"
)

// Kind tags a Node's variant.
type Kind int

const (
	Number Kind = iota
	String
	Symbol
	SExpr
	QExpr
	Error
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "Number"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case SExpr:
		return "SExpr"
	case QExpr:
		return "QExpr"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// Node is a single AST node. Leaves (Number, String, Symbol, Error) carry
// Text; compound forms (SExpr, QExpr) carry Children. Every node carries
// Ctx, possibly nil for a synthetic node (e.g. an empty root with no
// tokens).
type Node struct {
	Kind     Kind
	Text     string // literal text for Number/String/Symbol; the message for Error
	Children []*Node
	Ctx      *token.SourceContext
}

// NewLeaf builds a leaf node (Number, String or Symbol).
func NewLeaf(kind Kind, text string, ctx *token.SourceContext) *Node {
	return &Node{Kind: kind, Text: text, Ctx: ctx}
}

// NewCompound builds an SExpr or QExpr node from already-parsed children.
func NewCompound(kind Kind, ctx *token.SourceContext, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children, Ctx: ctx}
}

// NewError builds a parser/tokenizer diagnostic node.
func NewError(message string, ctx *token.SourceContext) *Node {
	return &Node{Kind: Error, Text: message, Ctx: ctx}
}

// IsError reports whether n is an Error node, or nil (treated as no node,
// never an error) — callers should check n != nil before calling IsError
// if they need to distinguish "no node" from "a valid, non-error node".
func (n *Node) IsError() bool { return n != nil && n.Kind == Error }

// FindError performs a depth-first search for the first Error node in the
// tree rooted at n (including n itself), mirroring the parser's "any
// child recurses to an Error, it propagates upward" rule.
func (n *Node) FindError() *Node {
	if n == nil {
		return nil
	}
	if n.Kind == Error {
		return n
	}
	for _, c := range n.Children {
		if e := c.FindError(); e != nil {
			return e
		}
	}
	return nil
}

// String renders the node back to Hazel surface syntax, useful for
// debugging and for the REPL's `:ast` meta-command.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case Number, Symbol:
		return n.Text
	case String:
		return `"` + n.Text + `"`
	case Error:
		return "<error: " + n.Text + ">"
	case SExpr:
		return wrap("(", ")", n.Children)
	case QExpr:
		return wrap("{", "}", n.Children)
	default:
		return "<unknown>"
	}
}

func wrap(open, close string, children []*Node) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, c := range children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(close)
	return sb.String()
}

// Package parser implements Hazel's recursive-descent reader: it consumes
// a token.Token stream from package lexer and produces a single root
// ast.Node (an SExpr whose children are the source's top-level forms), or
// an ast.Node of Kind Error on the first malformed input encountered.
package parser

import (
	"fmt"

	"github.com/hazellang/hazel/internal/ast"
	"github.com/hazellang/hazel/internal/lexer"
	"github.com/hazellang/hazel/internal/token"
)

// Parser reads a single source string into an AST.
type Parser struct {
	name string
	lx   *lexer.Lexer

	sawFirst  bool
	firstCtx  *token.SourceContext
	drainedOK bool
}

// New creates a Parser over input. name is the logical input name threaded
// into every SourceContext (a filename, or a REPL session label).
func New(name, input string) *Parser {
	return &Parser{name: name, lx: lexer.Tokenize(name, input)}
}

// Parse runs the parser to completion, returning the root SExpr node (one
// child per top-level form) or a single Error node on the first syntax
// problem. Parse always drains the underlying lexer so its goroutine can
// exit, even on an early error return.
func (p *Parser) Parse() *ast.Node {
	children, errNode, _ := p.parseForms("", nil)
	if !p.drainedOK {
		p.lx.Drain()
	}
	if errNode != nil {
		return errNode
	}
	return ast.NewCompound(ast.SExpr, p.firstCtx, children...)
}

// next pulls the next token from the lexer, recording the very first
// token's context as the eventual root node's context.
func (p *Parser) next() token.Token {
	tok := p.lx.Next()
	if !p.sawFirst {
		p.sawFirst = true
		if tok.Type != token.EOF {
			p.firstCtx = tok.Ctx
		}
	}
	return tok
}

// parseForms reads forms until it sees the token matching closing (")" or
// "}"), or EOF. closing == "" means "top level": any stray closing
// delimiter there is itself an error. openCtx is the context of the
// delimiter that opened this scan (used as the fallback location for a
// "missing closing brace" diagnostic when the form has no children yet);
// it is nil at top level.
//
// On success it returns the parsed children and the context of whichever
// token ended the scan (the matching closer, or the last top-level token).
// On failure it returns a single ast.Node of Kind Error.
func (p *Parser) parseForms(closing string, openCtx *token.SourceContext) ([]*ast.Node, *ast.Node, *token.SourceContext) {
	var children []*ast.Node
	lastCtx := openCtx

	for {
		tok := p.next()
		switch tok.Type {
		case token.EOF:
			if closing != "" {
				return nil, ast.NewError(
					fmt.Sprintf("missing s-expression closing brace, expected '%s'", closing),
					lastCtx), nil
			}
			p.drainedOK = true
			return children, nil, lastCtx

		case token.ILLEGAL:
			le := p.lx.Err()
			p.drainedOK = true
			return nil, ast.NewError(le.Message, le.Ctx), nil

		case token.NUMBER:
			children = append(children, ast.NewLeaf(ast.Number, tok.Text, tok.Ctx))
			lastCtx = tok.Ctx

		case token.STRING:
			children = append(children, ast.NewLeaf(ast.String, tok.Text, tok.Ctx))
			lastCtx = tok.Ctx

		case token.SYMBOL:
			children = append(children, ast.NewLeaf(ast.Symbol, tok.Text, tok.Ctx))
			lastCtx = tok.Ctx

		case token.RESERVED:
			switch tok.Text {
			case token.LParen, token.LBrace:
				want, kind := token.RParen, ast.SExpr
				if tok.Text == token.LBrace {
					want, kind = token.RBrace, ast.QExpr
				}
				sub, errNode, closedCtx := p.parseForms(want, tok.Ctx)
				if errNode != nil {
					return nil, errNode, nil
				}
				children = append(children, ast.NewCompound(kind, tok.Ctx, sub...))
				lastCtx = closedCtx

			case token.RParen, token.RBrace:
				if tok.Text == closing {
					return children, nil, tok.Ctx
				}
				return nil, ast.NewError(
					fmt.Sprintf("encountered extra '%s'", tok.Text), tok.Ctx), nil
			}

		default:
			return nil, ast.NewError(fmt.Sprintf("unexpected token %q", tok.Text), tok.Ctx), nil
		}
	}
}

// Parse is a convenience one-shot entry point equivalent to
// New(name, input).Parse().
func Parse(name, input string) *ast.Node {
	return New(name, input).Parse()
}

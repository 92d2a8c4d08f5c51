// Package token defines the lexical tokens of Hazel and the source-location
// bookkeeping threaded through every later stage of the pipeline.
package token

import "fmt"

// SourceContext is a tiny located-source value: the row/column the token,
// AST node or runtime value started at, and the raw text of that source
// line. Nothing mutates one after the lexer creates it: tokens, AST nodes
// and read values share the same pointer, and Value.Copy duplicates it
// with Copy. A nil *SourceContext stands for the spec's "ctx == None" case
// (synthetic, startup-created values).
type SourceContext struct {
	Name   string // logical input name: a filename or a REPL session label
	Row    int    // 1-based
	Column int    // 1-based, byte offset from start of line + 1
	Trace  string // raw text of the source line this context points into
}

// Copy returns a copy of ctx, or nil if ctx is nil.
func (ctx *SourceContext) Copy() *SourceContext {
	if ctx == nil {
		return nil
	}
	cp := *ctx
	return &cp
}

// String renders "<name>:row:column" for debug/log output; an absent name
// is omitted.
func (ctx *SourceContext) String() string {
	if ctx == nil {
		return "<none>"
	}
	if ctx.Name == "" {
		return fmt.Sprintf("%d:%d", ctx.Row, ctx.Column)
	}
	return fmt.Sprintf("%s:%d:%d", ctx.Name, ctx.Row, ctx.Column)
}

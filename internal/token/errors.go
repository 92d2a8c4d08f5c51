package token

import "fmt"

// Error is a located diagnostic produced by the tokenizer or parser. It is
// a plain Go error (used for the "reject a malformed string" and "detect
// unbalanced/extra delimiters" failure paths of spec.md §4.2/§4.3) and is
// distinct from the language's own first-class runtime Error value, which
// lives in package value.
type Error struct {
	Ctx     *SourceContext
	Message string
}

// NewError builds a located Error, formatting Message the way fmt.Sprintf does.
func NewError(ctx *SourceContext, format string, args ...interface{}) *Error {
	return &Error{Ctx: ctx, Message: fmt.Sprintf(format, args...)}
}

// Error implements the standard library error interface using the
// presentation format mandated by spec.md §6.
func (e *Error) Error() string {
	return FormatError(e.Ctx, e.Message)
}

// FormatError renders message in the presentation format mandated by
// spec.md §6:
//
//	Error on row R column C: <message>
//	Stack Trace:
//	<source line>
//
// ctx == nil (a synthetic, startup-created location) falls back to the
// bare message. Shared by package token's own parser/tokenizer Error and
// package value's runtime Error values, which carry the same
// *SourceContext shape but aren't token.Error instances.
func FormatError(ctx *SourceContext, message string) string {
	if ctx == nil {
		return message
	}
	return fmt.Sprintf("Error on row %d column %d: %s\nStack Trace:\n%s",
		ctx.Row, ctx.Column, message, ctx.Trace)
}

// Package lexer turns Hazel source text into a token stream.
//
// The scanner is a hand-written state machine that runs in its own
// goroutine and emits token.Token values over a channel, in the style of
// Go's text/template/parse lexer (and this project's own teacher package,
// went/lang/token). The channel plumbing is an implementation detail of
// the lexer/parser boundary: everything downstream still consumes tokens
// strictly in order and synchronously.
package lexer

import (
	"fmt"
	"strings"

	"github.com/hazellang/hazel/internal/token"
)

const eof = -1

// stateFunc is one step of the scanner's state machine; it returns the
// next step, or nil when scanning is finished.
type stateFunc func(*Lexer) stateFunc

// Lexer scans a single source string into a stream of tokens.
type Lexer struct {
	name  string
	input string
	lines []string // input split on '\n', index = row-1, used to fill SourceContext.Trace

	pos       int // byte offset of the next unread byte
	start     int // byte offset where the current token began
	row       int // 1-based
	lineStart int // byte offset of the start of the current row

	tokens chan token.Token
	err    *token.Error
}

// Tokenize starts scanning input in its own goroutine and returns a Lexer
// that the caller drives with Next. name is the logical input name (a
// filename, or a REPL session label) used in SourceContexts and errors.
func Tokenize(name, input string) *Lexer {
	l := &Lexer{
		name:   name,
		input:  input,
		lines:  strings.Split(input, "\n"),
		row:    1,
		tokens: make(chan token.Token),
	}
	go l.run()
	return l
}

// Next returns the next token produced by the scanner. An ILLEGAL token or
// EOF ends the stream and closes the channel; calls after that return the
// zero Token (Type ILLEGAL, empty Text, nil Ctx).
func (l *Lexer) Next() token.Token { return <-l.tokens }

// Drain exhausts the token channel so the scanning goroutine can exit; it
// must be called on every code path that stops consuming tokens before EOF
// (e.g. a parser that bails out early on an ILLEGAL token).
func (l *Lexer) Drain() {
	for range l.tokens {
	}
}

// Err returns the tokenizer error, if scanning ended in one.
func (l *Lexer) Err() *token.Error { return l.err }

func (l *Lexer) run() {
	for state := lexAny; state != nil; {
		state = state(l)
	}
	close(l.tokens)
}

func (l *Lexer) ctx() *token.SourceContext {
	col := l.start - l.lineStart + 1
	row := l.row
	trace := ""
	if row-1 < len(l.lines) {
		trace = l.lines[row-1]
	}
	return &token.SourceContext{Name: l.name, Row: row, Column: col, Trace: trace}
}

// peek returns the byte at the read cursor without consuming it, or eof.
func (l *Lexer) peek() int {
	if l.pos >= len(l.input) {
		return eof
	}
	return int(l.input[l.pos])
}

// peekAt returns the byte n positions ahead of the read cursor.
func (l *Lexer) peekAt(n int) int {
	if l.pos+n >= len(l.input) {
		return eof
	}
	return int(l.input[l.pos+n])
}

// advance consumes and returns the next byte, tracking row/lineStart as it
// crosses newlines.
func (l *Lexer) advance() int {
	if l.pos >= len(l.input) {
		return eof
	}
	b := int(l.input[l.pos])
	l.pos++
	if b == '\n' {
		l.row++
		l.lineStart = l.pos
	}
	return b
}

func (l *Lexer) emit(typ token.Type) {
	l.tokens <- token.Token{Type: typ, Text: l.input[l.start:l.pos], Ctx: l.ctx()}
	l.start = l.pos
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	return l.errorAt(l.ctx(), format, args...)
}

func (l *Lexer) errorAt(ctx *token.SourceContext, format string, args ...interface{}) stateFunc {
	l.err = token.NewError(ctx, format, args...)
	l.tokens <- token.Token{Type: token.ILLEGAL, Text: l.err.Message, Ctx: l.err.Ctx}
	return nil
}

func isSpace(b int) bool { return b == ' ' || b == '\t' }

func isNewline(b int) bool { return b == '\n' || b == '\r' }

func isNumberByte(b int) bool { return (b >= '0' && b <= '9') || b == '.' }

func isReserved(b int) bool { return b == '(' || b == ')' || b == '{' || b == '}' }

// isSymbolByte reports whether b may appear in a SYMBOL token: anything
// that isn't whitespace, newline, a quote, a comment marker, an escape
// character or a reserved bracket (spec.md §4.2, lexical class 7).
func isSymbolByte(b int) bool {
	if b == eof {
		return false
	}
	switch b {
	case ' ', '\t', '\n', '\r', '"', ';', '\\', '(', ')', '{', '}':
		return false
	}
	return true
}

// lexAny is the scanner's main dispatch state.
func lexAny(l *Lexer) stateFunc {
	switch b := l.peek(); {
	case b == eof:
		l.emit(token.EOF)
		return nil
	case isSpace(b):
		l.advance()
		l.start = l.pos
		return lexAny
	case isNewline(b):
		l.advance()
		l.start = l.pos
		return lexAny
	case b == ';':
		return lexComment
	case b == '"':
		return lexString
	case isReserved(b):
		l.advance()
		l.emit(token.RESERVED)
		return lexAny
	case isNumberByte(b):
		return lexNumber
	default:
		if isSymbolByte(b) {
			return lexSymbol
		}
		l.advance()
		return l.errorf("Failed to tokenize")
	}
}

// lexComment discards a ';' comment through end-of-line (excluding the
// newline itself, which lexAny handles on the next pass).
func lexComment(l *Lexer) stateFunc {
	for {
		b := l.peek()
		if b == eof || isNewline(b) {
			break
		}
		l.advance()
	}
	l.start = l.pos
	return lexAny
}

// lexNumber scans a contiguous run of [0-9.]; the grammar accepts '.' here
// even though the reader will later reject anything but a bare integer.
func lexNumber(l *Lexer) stateFunc {
	for isNumberByte(l.peek()) {
		l.advance()
	}
	l.emit(token.NUMBER)
	return lexAny
}

// lexSymbol scans a run of non-delimiter characters.
func lexSymbol(l *Lexer) stateFunc {
	for isSymbolByte(l.peek()) {
		l.advance()
	}
	l.emit(token.SYMBOL)
	return lexAny
}

// lexString scans a double-quoted string body. The opening quote is
// consumed and excluded from the emitted token's Text; a '\' defers the
// closing-quote check by one character so `\"` doesn't end the string.
// Reaching EOF inside the body is a located error.
func lexString(l *Lexer) stateFunc {
	openCtx := l.ctx()
	l.advance() // consume opening '"'
	l.start = l.pos
	for {
		b := l.peek()
		switch {
		case b == eof:
			return l.errorAt(openCtx, `missing string delimiter, expected '"'`)
		case b == '\\':
			l.advance() // the backslash
			if l.peek() == eof {
				return l.errorAt(openCtx, `missing string delimiter, expected '"'`)
			}
			l.advance() // the escaped character
		case b == '"':
			text := l.input[l.start:l.pos]
			l.tokens <- token.Token{Type: token.STRING, Text: text, Ctx: openCtx}
			l.advance() // consume closing '"'
			l.start = l.pos
			return lexAny
		default:
			l.advance()
		}
	}
}

// Scan runs the tokenizer to completion and returns the full token sequence
// (sans EOF), or the first error encountered. It's a synchronous
// convenience entry point; the Parser itself drives a *Lexer
// incrementally instead, see package parser.
func Scan(name, input string) ([]token.Token, *token.Error) {
	l := Tokenize(name, input)
	var toks []token.Token
	for {
		tok := l.Next()
		switch tok.Type {
		case token.EOF:
			return toks, nil
		case token.ILLEGAL:
			return nil, l.Err()
		default:
			toks = append(toks, tok)
		}
	}
}

// String joins the Text of each token in toks with single spaces, for
// debug printing of a scanned stream.
func String(toks []token.Token) string {
	var sb strings.Builder
	for i, t := range toks {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, t.Text)
	}
	return sb.String()
}

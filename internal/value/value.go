// Package value implements Hazel's runtime value model: the Value sum
// type (Integer, String, Symbol, Error, SExpr, QExpr, Function) and the
// lexically-scoped Env that binds symbols to values.
package value

import (
	"fmt"

	"github.com/hazellang/hazel/internal/token"
)

// Kind tags a Value's variant.
type Kind int

const (
	Integer Kind = iota
	String
	Symbol
	Error
	SExpr
	QExpr
	Function
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case String:
		return "String"
	case Symbol:
		return "Symbol"
	case Error:
		return "Error"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	case Function:
		return "Function"
	default:
		return "Unknown"
	}
}

// FuncKind distinguishes the two shapes of Function values.
type FuncKind int

const (
	Builtin FuncKind = iota
	UserDefined
)

// BuiltinFunc is a host-implemented Hazel function. Builtins never mutate
// their args slice's backing values in place; they return fresh Values.
type BuiltinFunc func(env *Env, args []*Value) *Value

// Value is Hazel's runtime tagged union. Every field set is determined by
// Kind; see the Kind constants above for which fields are meaningful.
type Value struct {
	Kind Kind
	Ctx  *token.SourceContext

	Int int64  // Integer
	Str string // String, Symbol (name), Error (message)

	Children []*Value // SExpr, QExpr elements, in order

	// Function fields.
	FnKind      FuncKind
	BuiltinName string // name the builtin was registered under
	BuiltinFn   BuiltinFunc
	Formals     *Value // QExpr of Symbols (UserDefined only)
	Body        *Value // QExpr (UserDefined only)
	Env         *Env   // captured environment (UserDefined only)
}

// NewInteger builds an Integer value.
func NewInteger(n int64, ctx *token.SourceContext) *Value {
	return &Value{Kind: Integer, Int: n, Ctx: ctx}
}

// NewString builds a String value.
func NewString(s string, ctx *token.SourceContext) *Value {
	return &Value{Kind: String, Str: s, Ctx: ctx}
}

// NewSymbol builds a Symbol value.
func NewSymbol(name string, ctx *token.SourceContext) *Value {
	return &Value{Kind: Symbol, Str: name, Ctx: ctx}
}

// NewError builds a first-class runtime Error value.
func NewError(ctx *token.SourceContext, format string, args ...interface{}) *Value {
	return &Value{Kind: Error, Str: fmt.Sprintf(format, args...), Ctx: ctx}
}

// NewSExpr builds an (initially unevaluated) call form.
func NewSExpr(ctx *token.SourceContext, children ...*Value) *Value {
	return &Value{Kind: SExpr, Children: children, Ctx: ctx}
}

// NewQExpr builds a quoted data list.
func NewQExpr(ctx *token.SourceContext, children ...*Value) *Value {
	return &Value{Kind: QExpr, Children: children, Ctx: ctx}
}

// NewBuiltin wraps a host callable as a Function value.
func NewBuiltin(name string, fn BuiltinFunc) *Value {
	return &Value{Kind: Function, FnKind: Builtin, BuiltinName: name, BuiltinFn: fn}
}

// NewLambda builds a user-defined closure: formals and body are deep
// copied, and env is a fresh child of the defining scope that will receive
// parameter bindings as arguments are applied.
func NewLambda(formals, body *Value, capturing *Env, ctx *token.SourceContext) *Value {
	return &Value{
		Kind:    Function,
		FnKind:  UserDefined,
		Formals: formals.Copy(),
		Body:    body.Copy(),
		Env:     NewEnv(capturing),
		Ctx:     ctx,
	}
}

// IsError reports whether v is a non-nil Error value.
func (v *Value) IsError() bool { return v != nil && v.Kind == Error }

// Pop removes and returns the child at index i, shifting later children
// down (spec.md §3: "pop(i) moves a child out by index").
func (v *Value) Pop(i int) *Value {
	child := v.Children[i]
	v.Children = append(v.Children[:i], v.Children[i+1:]...)
	return child
}

// Copy performs a deep copy of v, the ownership mechanism used everywhere
// the spec calls for "a deep copy" (environment inserts, partial
// application, argument binding). A nil receiver copies to nil.
func (v *Value) Copy() *Value {
	if v == nil {
		return nil
	}
	cp := &Value{Kind: v.Kind, Ctx: v.Ctx.Copy(), Int: v.Int, Str: v.Str}
	if v.Children != nil {
		cp.Children = make([]*Value, len(v.Children))
		for i, c := range v.Children {
			cp.Children[i] = c.Copy()
		}
	}
	if v.Kind == Function {
		cp.FnKind = v.FnKind
		cp.BuiltinName = v.BuiltinName
		cp.BuiltinFn = v.BuiltinFn
		cp.Formals = v.Formals.Copy()
		cp.Body = v.Body.Copy()
		if v.Env != nil {
			cp.Env = v.Env.Copy()
		}
	}
	return cp
}

package value

import (
	"strconv"
	"strings"

	"github.com/hazellang/hazel/internal/token"
)

// String renders v back to Hazel surface syntax, the "print" half of the
// read-eval-print loop (spec.md §4.7 print/§6 worked examples). An Error
// value renders using the same located-diagnostic format as
// token.Error.Error() (spec.md §6), via the shared token.FormatError.
func (v *Value) String() string {
	if v == nil {
		return ""
	}
	switch v.Kind {
	case Integer:
		return strconv.FormatInt(v.Int, 10)
	case String:
		return `"` + v.Str + `"`
	case Symbol:
		return v.Str
	case Error:
		return token.FormatError(v.Ctx, v.Str)
	case SExpr:
		return wrap("(", ")", v.Children)
	case QExpr:
		return wrap("{", "}", v.Children)
	case Function:
		return v.funcString()
	default:
		return "<unknown>"
	}
}

func (v *Value) funcString() string {
	if v.FnKind == Builtin {
		return "<builtin>"
	}
	return "(lambda " + v.Formals.String() + " " + v.Body.String() + ")"
}

func wrap(open, close string, children []*Value) string {
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

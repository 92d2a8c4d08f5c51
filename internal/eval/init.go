package eval

import "github.com/hazellang/hazel/internal/builtin"

func init() {
	builtin.SetEvaluator(Eval)
}

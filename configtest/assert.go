package configtest

import (
	"fmt"

	"github.com/nextflow-checks/propdiff/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// AssertFailure records an assert expression that did not evaluate to
// true against the actual tree.
type AssertFailure struct {
	Expr string
	Err  error
}

func (f *AssertFailure) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Expr, f.Err)
	}
	return f.Expr
}

func evalAssert(src string, actual *ir.Node) *AssertFailure {
	env, ok := ir.ToAny(actual).(map[string]any)
	if !ok {
		env = map[string]any{}
	}
	program, err := expr.Compile(src)
	if err != nil {
		return &AssertFailure{Expr: src, Err: err}
	}
	out, err := vm.Run(program, env)
	if err != nil {
		return &AssertFailure{Expr: src, Err: err}
	}
	if b, ok := out.(bool); ok && b {
		return nil
	}
	return &AssertFailure{Expr: src, Err: fmt.Errorf("evaluated to %v", out)}
}

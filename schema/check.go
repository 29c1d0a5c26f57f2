package schema

import (
	"fmt"
	"reflect"

	"github.com/google/cel-go/cel"
)

// Check is a compiled constraint expression evaluated against a single
// field value during validation. Expressions are written in CEL with the
// candidate bound to the variable "value" and must produce a bool:
//
//	value.startsWith("INV-")
//	value >= 0.0 && value < 1000000.0
//
// Checks are compiled once, at schema construction time, mirroring how
// pattern constraints are handled.
type Check struct {
	source  string
	program cel.Program
}

// CompileCheck compiles a check expression. It fails if the expression
// does not parse, references anything other than "value", or does not
// produce a bool.
func CompileCheck(source string) (*Check, error) {
	env, err := cel.NewEnv(cel.Variable("value", cel.DynType))
	if err != nil {
		return nil, fmt.Errorf("check environment: %w", err)
	}

	ast, iss := env.Compile(source)
	if iss.Err() != nil {
		return nil, fmt.Errorf("compile check %q: %w", source, iss.Err())
	}
	// With "value" typed dyn the checker may only resolve the output to
	// dyn; a concrete non-bool output is still rejected here, and Eval
	// enforces bool for the dyn case.
	out := ast.OutputType()
	if !reflect.DeepEqual(out, cel.BoolType) && !reflect.DeepEqual(out, cel.DynType) {
		return nil, fmt.Errorf("check %q must produce bool, produces %s", source, out)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program check %q: %w", source, err)
	}

	return &Check{source: source, program: prg}, nil
}

// Source returns the original expression text.
func (c *Check) Source() string { return c.source }

// Eval evaluates the check against a field value. A non-bool result or an
// evaluation error (for example a type mismatch inside the expression)
// counts as a failed check.
func (c *Check) Eval(value any) (bool, error) {
	out, _, err := c.program.Eval(map[string]any{"value": value})
	if err != nil {
		return false, err
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("check %q produced %T, want bool", c.source, out.Value())
	}
	return b, nil
}

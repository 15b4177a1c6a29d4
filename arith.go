package quarry

import (
	"fmt"

	"github.com/quarrydata/quarry/anymath"
)

// Arith applies a binary arithmetic operator to two scalars.  Mismatched
// numeric variants promote to float64 before computing; two uint64 operands
// stay in uint64 except under Div, which always computes in float64.  Add
// treats Empty as the identity on either side so it can fold into a state
// that has not seen a value yet.  Composite operands have no arithmetic
// rules and fail with ErrTypeMismatch.
func Arith(op ArithOp, a, b Value) (Value, error) {
	if a.IsComposite() || b.IsComposite() {
		return Empty(), fmt.Errorf("%w: %s undefined for composite operand (%s, %s)", ErrTypeMismatch, op, a, b)
	}
	switch op {
	case Add:
		if a.IsEmpty() {
			return b, nil
		}
		if b.IsEmpty() {
			return a, nil
		}
		if a.Kind() == KindUint64 && b.Kind() == KindUint64 {
			return NewUint64(anymath.Add.Uint64(a.Uint(), b.Uint())), nil
		}
		x, _ := a.AsFloat()
		y, _ := b.AsFloat()
		return NewFloat64(anymath.Add.Float64(x, y)), nil
	case Div:
		x, xok := a.AsFloat()
		y, yok := b.AsFloat()
		if !xok || !yok {
			return Empty(), fmt.Errorf("%w: %s requires numeric operands (%s, %s)", ErrTypeMismatch, op, a, b)
		}
		// Division by zero is an error, never a silent NaN or Inf.
		if y == 0 {
			return Empty(), fmt.Errorf("%w: %s / %s", ErrDivideByZero, a, b)
		}
		return NewFloat64(x / y), nil
	}
	return Empty(), fmt.Errorf("%w: %s", ErrBadOp, op)
}

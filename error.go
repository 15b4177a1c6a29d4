package quarry

import "errors"

// All aggregation failures are planner or caller bugs (mistyped expressions,
// malformed partial states, misassigned merge depths), so there is one flat
// error vocabulary and no retryable category.  Dispatch sites wrap these
// with the operands involved.
var (
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrDivideByZero  = errors.New("division by zero")
	ErrFieldNotFound = errors.New("field not found")
	ErrBadOp         = errors.New("unsupported operator")
)

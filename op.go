package quarry

import "fmt"

// ArithOp is a binary arithmetic operator over scalar Values.  The set is
// closed; Arith handles every member exhaustively.
type ArithOp int

const (
	Add ArithOp = iota
	Div
)

func (op ArithOp) String() string {
	switch op {
	case Add:
		return "Add"
	case Div:
		return "Div"
	}
	return fmt.Sprintf("ArithOp(%d)", int(op))
}

// AggOp is an aggregate operator.  The set is closed and never extended at
// runtime; the String form doubles as the operator's display name in plan
// output, e.g. "Sum(x)".
type AggOp int

const (
	Count AggOp = iota
	Min
	Max
	Sum
	Avg
)

func (op AggOp) String() string {
	switch op {
	case Count:
		return "Count"
	case Min:
		return "Min"
	case Max:
		return "Max"
	case Sum:
		return "Sum"
	case Avg:
		return "Avg"
	}
	return fmt.Sprintf("AggOp(%d)", int(op))
}

package quarry

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/quarrydata/quarry/anymath"
)

// AggregateBinary folds two already-reduced scalars with Min or Max.  Empty
// is the identity on either side, which keeps partial-state merges
// associative no matter which partition saw rows first.  Mixed numeric
// variants compare in float64.
func AggregateBinary(op AggOp, a, b Value) (Value, error) {
	var fn *anymath.Function
	switch op {
	case Min:
		fn = anymath.Min
	case Max:
		fn = anymath.Max
	default:
		return Empty(), fmt.Errorf("%w: %s is not a binary reduction", ErrBadOp, op)
	}
	if a.IsComposite() || b.IsComposite() {
		return Empty(), fmt.Errorf("%w: %s undefined for composite operand (%s, %s)", ErrTypeMismatch, op, a, b)
	}
	if a.IsEmpty() {
		return b, nil
	}
	if b.IsEmpty() {
		return a, nil
	}
	if a.Kind() == KindUint64 && b.Kind() == KindUint64 {
		return NewUint64(fn.Uint64(a.Uint(), b.Uint())), nil
	}
	x, _ := a.AsFloat()
	y, _ := b.AsFloat()
	return NewFloat64(fn.Float64(x, y)), nil
}

// AggregateReduce folds a column array to a single scalar with Min, Max, or
// Sum, skipping nulls.  An array with no non-null element reduces to Empty
// for all three operators, consistent with the Empty-as-identity rule of
// AggregateBinary and Arith's Add.
func AggregateReduce(op AggOp, arr arrow.Array) (Value, error) {
	var fn *anymath.Function
	switch op {
	case Min:
		fn = anymath.Min
	case Max:
		fn = anymath.Max
	case Sum:
		fn = anymath.Add
	default:
		return Empty(), fmt.Errorf("%w: %s is not an array reduction", ErrBadOp, op)
	}
	switch arr := arr.(type) {
	case *array.Uint64:
		state := fn.Init.Uint64
		var seen bool
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				continue
			}
			state = fn.Uint64(state, arr.Value(i))
			seen = true
		}
		if !seen {
			return Empty(), nil
		}
		return NewUint64(state), nil
	case *array.Float64:
		state := fn.Init.Float64
		var seen bool
		for i := 0; i < arr.Len(); i++ {
			if arr.IsNull(i) {
				continue
			}
			state = fn.Float64(state, arr.Value(i))
			seen = true
		}
		if !seen {
			return Empty(), nil
		}
		return NewFloat64(state), nil
	}
	return Empty(), fmt.Errorf("%w: cannot reduce %s array", ErrTypeMismatch, arr.DataType())
}

package agg

import (
	"fmt"

	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
	"github.com/quarrydata/quarry/expr"
)

// Aggregator computes one aggregate function incrementally over batches and
// can fold in partial states produced by peer instances on other partitions.
//
// An instance is single-owner: exactly one task drives Accumulate calls
// sequentially.  Partial states cross partition boundaries by value via
// AccumulateResult; a coordinator-owned instance folds them back in with
// Merge and reads the answer with MergeResult.
type Aggregator struct {
	op    quarry.AggOp
	arg   expr.Evaluator
	state quarry.Value
	depth int
}

// New creates an aggregator for op over exactly one argument expression.
func New(op quarry.AggOp, args []expr.Evaluator) (*Aggregator, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("aggregator function %s requires a single argument, got %d", op, len(args))
	}
	return &Aggregator{op: op, arg: args[0], state: initialState(op)}, nil
}

func NewCount(args ...expr.Evaluator) (*Aggregator, error) { return New(quarry.Count, args) }
func NewMin(args ...expr.Evaluator) (*Aggregator, error)   { return New(quarry.Min, args) }
func NewMax(args ...expr.Evaluator) (*Aggregator, error)   { return New(quarry.Max, args) }
func NewSum(args ...expr.Evaluator) (*Aggregator, error)   { return New(quarry.Sum, args) }
func NewAvg(args ...expr.Evaluator) (*Aggregator, error)   { return New(quarry.Avg, args) }

// Count starts at zero, avg at a [sum, count] composite of zeros, and the
// rest at Empty, which acts as the aggregation identity.
func initialState(op quarry.AggOp) quarry.Value {
	switch op {
	case quarry.Count:
		return quarry.NewUint64(0)
	case quarry.Avg:
		return quarry.NewComposite(quarry.NewFloat64(0), quarry.NewUint64(0))
	}
	return quarry.Empty()
}

func (a *Aggregator) Op() quarry.AggOp { return a.op }

// Clone returns a fresh instance over the same operator and argument with
// re-initialized state, used to reconstruct per-partition instances.
func (a *Aggregator) Clone() *Aggregator {
	return &Aggregator{op: a.op, arg: a.arg, state: initialState(a.op)}
}

// ReturnType delegates to the argument expression's type inference.
func (a *Aggregator) ReturnType(schema *quarry.Schema) (quarry.Type, error) {
	return a.arg.ReturnType(schema)
}

// Nullable reports whether results may be null.  Aggregates always produce a
// scalar here: a min/max/sum that never saw a row yields the Empty scalar
// rather than a null-typed result.
func (a *Aggregator) Nullable(*quarry.Schema) bool { return false }

// SetDepth records this instance's slot in the flat vector of peer partial
// states that a later Merge receives.  It has no effect until Merge is
// called; Merge validates the index against the vector it is handed.
func (a *Aggregator) SetDepth(depth int) { a.depth = depth }

// Eval evaluates the argument expression over the batch without touching
// aggregation state.
func (a *Aggregator) Eval(batch *colbuf.Batch) (*colbuf.Columnar, error) {
	return a.arg.Eval(batch)
}

// Accumulate folds one batch into the running state.  The next state is
// computed fully before it is assigned, so on error the state is left
// unmodified.
func (a *Aggregator) Accumulate(batch *colbuf.Batch) error {
	rows := batch.NumRows()
	if a.op == quarry.Count {
		next, err := quarry.Arith(quarry.Add, a.state, quarry.NewUint64(uint64(rows)))
		if err != nil {
			return err
		}
		a.state = next
		return nil
	}
	val, err := a.arg.Eval(batch)
	if err != nil {
		return err
	}
	arr, err := val.ToArray(rows)
	if err != nil {
		return err
	}
	switch a.op {
	case quarry.Min, quarry.Max:
		reduced, err := quarry.AggregateReduce(a.op, arr)
		if err != nil {
			return err
		}
		next, err := quarry.AggregateBinary(a.op, a.state, reduced)
		if err != nil {
			return err
		}
		a.state = next
	case quarry.Sum:
		reduced, err := quarry.AggregateReduce(quarry.Sum, arr)
		if err != nil {
			return err
		}
		next, err := quarry.Arith(quarry.Add, a.state, reduced)
		if err != nil {
			return err
		}
		a.state = next
	case quarry.Avg:
		elems := a.state.Elems()
		if len(elems) != 2 {
			return fmt.Errorf("%w: avg state must be [sum, count], got %s", quarry.ErrTypeMismatch, a.state)
		}
		// The sum is taken over every row of the batch so it stays in
		// step with the row count added below.
		reduced, err := quarry.AggregateReduce(quarry.Sum, arr)
		if err != nil {
			return err
		}
		sum, err := quarry.Arith(quarry.Add, elems[0], reduced)
		if err != nil {
			return err
		}
		count, err := quarry.Arith(quarry.Add, elems[1], quarry.NewUint64(uint64(rows)))
		if err != nil {
			return err
		}
		a.state = quarry.NewComposite(sum, count)
	}
	return nil
}

// AccumulateResult returns the shippable local partial state: a
// single-element vector that a coordinator concatenates with its peers'.
func (a *Aggregator) AccumulateResult() []quarry.Value {
	return []quarry.Value{a.state}
}

// Merge folds the partial state at this instance's depth into the running
// state.  The states vector is the concatenation, in expression order, of
// every cooperating aggregator's AccumulateResult across partitions; a depth
// outside the vector is a caller bug and fails loudly rather than merging
// the wrong peer's data.
func (a *Aggregator) Merge(states []quarry.Value) error {
	if a.depth < 0 || a.depth >= len(states) {
		return fmt.Errorf("aggregator %s: depth %d out of range for %d partial states", a, a.depth, len(states))
	}
	val := states[a.depth]
	switch a.op {
	case quarry.Count, quarry.Sum:
		next, err := quarry.Arith(quarry.Add, a.state, val)
		if err != nil {
			return err
		}
		a.state = next
	case quarry.Min, quarry.Max:
		next, err := quarry.AggregateBinary(a.op, a.state, val)
		if err != nil {
			return err
		}
		a.state = next
	case quarry.Avg:
		// Precondition: both sides are [sum, count] composites.  A
		// non-composite peer means upstream shipped a foreign state and
		// is ignored here.
		if !val.IsComposite() || !a.state.IsComposite() {
			return nil
		}
		newElems, oldElems := val.Elems(), a.state.Elems()
		if len(newElems) != 2 || len(oldElems) != 2 {
			return fmt.Errorf("%w: avg partial must be [sum, count], got %s", quarry.ErrTypeMismatch, val)
		}
		sum, err := quarry.Arith(quarry.Add, newElems[0], oldElems[0])
		if err != nil {
			return err
		}
		count, err := quarry.Arith(quarry.Add, newElems[1], oldElems[1])
		if err != nil {
			return err
		}
		a.state = quarry.NewComposite(sum, count)
	}
	return nil
}

// MergeResult finalizes without mutating: avg divides its running sum by its
// running count, every other operator returns its state verbatim.  An avg
// with a zero count surfaces ErrDivideByZero.
func (a *Aggregator) MergeResult() (quarry.Value, error) {
	if a.op != quarry.Avg || !a.state.IsComposite() {
		return a.state, nil
	}
	elems := a.state.Elems()
	if len(elems) != 2 {
		return quarry.Empty(), fmt.Errorf("%w: avg state must be [sum, count], got %s", quarry.ErrTypeMismatch, a.state)
	}
	return quarry.Arith(quarry.Div, elems[0], elems[1])
}

func (a *Aggregator) String() string {
	return fmt.Sprintf("%s(%s)", a.op, a.arg)
}

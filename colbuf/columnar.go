package colbuf

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/quarrydata/quarry"
)

// Columnar is the result of evaluating an expression over a batch: either a
// materialized column array or a constant spanning the batch.
type Columnar struct {
	arr arrow.Array
	val quarry.Value
	n   int
}

func NewArrayColumnar(arr arrow.Array) *Columnar {
	return &Columnar{arr: arr}
}

func NewConstColumnar(val quarry.Value, n int) *Columnar {
	return &Columnar{val: val, n: n}
}

func (c *Columnar) Len() int {
	if c.arr != nil {
		return c.arr.Len()
	}
	return c.n
}

// ToArray materializes the columnar value as an array of exactly n rows.
// An array result must already have n rows; a constant is expanded.
func (c *Columnar) ToArray(n int) (arrow.Array, error) {
	if c.arr != nil {
		if c.arr.Len() != n {
			return nil, fmt.Errorf("columnar value has %d rows, want %d", c.arr.Len(), n)
		}
		return c.arr, nil
	}
	switch c.val.Kind() {
	case quarry.KindUint64:
		b := array.NewUint64Builder(memory.NewGoAllocator())
		defer b.Release()
		for i := 0; i < n; i++ {
			b.Append(c.val.Uint())
		}
		return b.NewUint64Array(), nil
	case quarry.KindFloat64:
		b := array.NewFloat64Builder(memory.NewGoAllocator())
		defer b.Release()
		for i := 0; i < n; i++ {
			b.Append(c.val.Float())
		}
		return b.NewFloat64Array(), nil
	}
	return nil, fmt.Errorf("%w: cannot materialize %s constant as an array", quarry.ErrTypeMismatch, c.val.Kind())
}

package colbuf

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/apache/arrow/go/v11/arrow/array"
	"github.com/apache/arrow/go/v11/arrow/memory"
	"github.com/quarrydata/quarry"
)

// Batch bundles one Arrow array per schema column.  A batch is immutable
// once built; the aggregation path only ever reads it.
type Batch struct {
	schema  *quarry.Schema
	columns []arrow.Array
}

func NewBatch(schema *quarry.Schema, columns []arrow.Array) (*Batch, error) {
	if len(columns) != schema.Len() {
		return nil, fmt.Errorf("batch has %d columns but schema has %d", len(columns), schema.Len())
	}
	for i := 1; i < len(columns); i++ {
		if columns[i].Len() != columns[0].Len() {
			return nil, fmt.Errorf("batch column %d has %d rows but column 0 has %d", i, columns[i].Len(), columns[0].Len())
		}
	}
	return &Batch{schema: schema, columns: columns}, nil
}

func (b *Batch) Schema() *quarry.Schema { return b.schema }

func (b *Batch) NumRows() int {
	if len(b.columns) == 0 {
		return 0
	}
	return b.columns[0].Len()
}

func (b *Batch) Column(i int) arrow.Array { return b.columns[i] }

func (b *Batch) ColumnOf(name string) (arrow.Array, bool) {
	i, ok := b.schema.IndexOf(name)
	if !ok {
		return nil, false
	}
	return b.columns[i], true
}

// Uint64Array builds an Arrow array from vals.  Convenience for tests and
// embedders feeding in-memory data.
func Uint64Array(vals ...uint64) arrow.Array {
	b := array.NewUint64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewUint64Array()
}

// Float64Array builds an Arrow array from vals.
func Float64Array(vals ...float64) arrow.Array {
	b := array.NewFloat64Builder(memory.NewGoAllocator())
	defer b.Release()
	b.AppendValues(vals, nil)
	return b.NewFloat64Array()
}

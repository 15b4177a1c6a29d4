package expr

import (
	"fmt"

	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
)

// Field references a schema column by name.
type Field string

var _ Evaluator = Field("")

func NewField(name string) Field { return Field(name) }

func (f Field) Eval(b *colbuf.Batch) (*colbuf.Columnar, error) {
	arr, ok := b.ColumnOf(string(f))
	if !ok {
		return nil, fmt.Errorf("%w: %q", quarry.ErrFieldNotFound, string(f))
	}
	return colbuf.NewArrayColumnar(arr), nil
}

func (f Field) ReturnType(schema *quarry.Schema) (quarry.Type, error) {
	return schema.TypeOf(string(f))
}

func (f Field) String() string { return string(f) }

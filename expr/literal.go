package expr

import (
	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
)

// Literal is a constant expression; it evaluates to the same value on every
// row of a batch.
type Literal struct {
	val quarry.Value
}

var _ Evaluator = (*Literal)(nil)

func NewLiteral(val quarry.Value) *Literal { return &Literal{val: val} }

func (l *Literal) Eval(b *colbuf.Batch) (*colbuf.Columnar, error) {
	return colbuf.NewConstColumnar(l.val, b.NumRows()), nil
}

func (l *Literal) ReturnType(*quarry.Schema) (quarry.Type, error) {
	return l.val.Type(), nil
}

func (l *Literal) String() string { return l.val.String() }

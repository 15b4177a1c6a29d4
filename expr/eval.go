package expr

import (
	"fmt"

	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
)

// Evaluator computes a columnar value over a batch.  String returns the
// debug form used in plan display, e.g. the bare column name for a field
// reference.
type Evaluator interface {
	Eval(*colbuf.Batch) (*colbuf.Columnar, error)
	ReturnType(*quarry.Schema) (quarry.Type, error)
	fmt.Stringer
}

package quarry

import (
	"fmt"

	"github.com/apache/arrow/go/v11/arrow"
	"golang.org/x/exp/slices"
)

// Type is the result type of a column or expression.
type Type int

const (
	TypeNull Type = iota
	TypeUint64
	TypeFloat64
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeUint64:
		return "uint64"
	case TypeFloat64:
		return "float64"
	}
	return fmt.Sprintf("type-%d", int(t))
}

// Arrow returns the Arrow data type backing column arrays of this type.
func (t Type) Arrow() arrow.DataType {
	switch t {
	case TypeUint64:
		return arrow.PrimitiveTypes.Uint64
	case TypeFloat64:
		return arrow.PrimitiveTypes.Float64
	}
	return arrow.Null
}

type Column struct {
	Name string
	Type Type
}

func NewColumn(name string, typ Type) Column {
	return Column{Name: name, Type: typ}
}

// Schema is an ordered set of named, typed columns.
type Schema struct {
	columns []Column
}

func NewSchema(columns ...Column) *Schema {
	return &Schema{columns: columns}
}

func (s *Schema) Columns() []Column {
	return slices.Clone(s.columns)
}

func (s *Schema) Len() int {
	return len(s.columns)
}

func (s *Schema) IndexOf(name string) (int, bool) {
	for i, c := range s.columns {
		if c.Name == name {
			return i, true
		}
	}
	return -1, false
}

func (s *Schema) TypeOf(name string) (Type, error) {
	i, ok := s.IndexOf(name)
	if !ok {
		return TypeNull, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
	}
	return s.columns[i].Type, nil
}

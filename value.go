package quarry

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.  The set is closed: every
// switch over Kind in this package handles all four cases so that adding a
// variant is a compile-surfaced change, not a silent fallthrough.
type Kind int

const (
	KindEmpty Kind = iota
	KindUint64
	KindFloat64
	KindComposite
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindComposite:
		return "composite"
	}
	return fmt.Sprintf("kind-%d", int(k))
}

// Value is a single logical scalar: absent, an unsigned integer, a float,
// or an ordered composite of other Values.  The aggregation core uses
// Composite only to carry avg's [sum, count] accumulator.
//
// Values are immutable and passed by value; an Empty Value acts as the
// identity for the reduction operators (see AggregateBinary).
type Value struct {
	kind  Kind
	u     uint64
	f     float64
	elems []Value
}

func Empty() Value { return Value{kind: KindEmpty} }

func NewUint64(v uint64) Value { return Value{kind: KindUint64, u: v} }

func NewFloat64(v float64) Value { return Value{kind: KindFloat64, f: v} }

func NewComposite(elems ...Value) Value {
	return Value{kind: KindComposite, elems: elems}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

func (v Value) IsComposite() bool { return v.kind == KindComposite }

// Uint returns the integer payload.  Valid only for KindUint64.
func (v Value) Uint() uint64 { return v.u }

// Float returns the floating-point payload.  Valid only for KindFloat64.
func (v Value) Float() float64 { return v.f }

// Elems returns the composite payload.  Valid only for KindComposite.
func (v Value) Elems() []Value { return v.elems }

// AsFloat coerces a numeric Value to float64, the common representation
// used when mixed numeric variants meet in a binary operation.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindUint64:
		return float64(v.u), true
	case KindFloat64:
		return v.f, true
	}
	return 0, false
}

// Type returns the result type a value of this kind carries.  Composite has
// no scalar type and maps to TypeNull along with Empty.
func (v Value) Type() Type {
	switch v.kind {
	case KindUint64:
		return TypeUint64
	case KindFloat64:
		return TypeFloat64
	}
	return TypeNull
}

func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindEmpty:
		return true
	case KindUint64:
		return v.u == w.u
	case KindFloat64:
		return v.f == w.f
	case KindComposite:
		if len(v.elems) != len(w.elems) {
			return false
		}
		for i := range v.elems {
			if !v.elems[i].Equal(w.elems[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return "empty"
	case KindUint64:
		return strconv.FormatUint(v.u, 10)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindComposite:
		var b strings.Builder
		b.WriteByte('{')
		for i, e := range v.elems {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(e.String())
		}
		b.WriteByte('}')
		return b.String()
	}
	return fmt.Sprintf("value<%s>", v.kind)
}

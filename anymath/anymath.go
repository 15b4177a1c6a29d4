package anymath

import "math"

type Float64 func(float64, float64) float64
type Uint64 func(uint64, uint64) uint64

// Function bundles one reduction across the numeric lanes a scalar Value can
// hold, along with the identity each lane folds from.
type Function struct {
	Init
	Float64
	Uint64
}

type Init struct {
	Float64 float64
	Uint64  uint64
}

var Min = &Function{
	Init: Init{math.MaxFloat64, math.MaxUint64},
	Float64: func(a, b float64) float64 {
		if a < b {
			return a
		}
		return b
	},
	Uint64: func(a, b uint64) uint64 {
		if a < b {
			return a
		}
		return b
	},
}

var Max = &Function{
	Init: Init{-math.MaxFloat64, 0},
	Float64: func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	},
	Uint64: func(a, b uint64) uint64 {
		if a > b {
			return a
		}
		return b
	},
}

var Add = &Function{
	Float64: func(a, b float64) float64 { return a + b },
	Uint64:  func(a, b uint64) uint64 { return a + b },
}

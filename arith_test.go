package quarry_test

import (
	"testing"

	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithAdd(t *testing.T) {
	v, err := quarry.Arith(quarry.Add, quarry.NewUint64(3), quarry.NewUint64(4))
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(7).Equal(v))

	// A float operand promotes the result to float64.
	v, err = quarry.Arith(quarry.Add, quarry.NewFloat64(0.5), quarry.NewUint64(4))
	require.NoError(t, err)
	assert.True(t, quarry.NewFloat64(4.5).Equal(v))
}

func TestArithAddEmptyIdentity(t *testing.T) {
	v, err := quarry.Arith(quarry.Add, quarry.Empty(), quarry.NewUint64(9))
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(9).Equal(v))

	v, err = quarry.Arith(quarry.Add, quarry.NewFloat64(1.5), quarry.Empty())
	require.NoError(t, err)
	assert.True(t, quarry.NewFloat64(1.5).Equal(v))

	v, err = quarry.Arith(quarry.Add, quarry.Empty(), quarry.Empty())
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestArithDiv(t *testing.T) {
	v, err := quarry.Arith(quarry.Div, quarry.NewFloat64(12), quarry.NewUint64(3))
	require.NoError(t, err)
	assert.True(t, quarry.NewFloat64(4).Equal(v))

	_, err = quarry.Arith(quarry.Div, quarry.NewFloat64(1), quarry.NewUint64(0))
	assert.ErrorIs(t, err, quarry.ErrDivideByZero)

	_, err = quarry.Arith(quarry.Div, quarry.Empty(), quarry.NewUint64(2))
	assert.ErrorIs(t, err, quarry.ErrTypeMismatch)
}

func TestArithComposite(t *testing.T) {
	composite := quarry.NewComposite(quarry.NewFloat64(0), quarry.NewUint64(0))
	_, err := quarry.Arith(quarry.Add, composite, quarry.NewUint64(1))
	assert.ErrorIs(t, err, quarry.ErrTypeMismatch)
}

func TestAggregateBinaryEmptyIdentity(t *testing.T) {
	for _, op := range []quarry.AggOp{quarry.Min, quarry.Max} {
		x := quarry.NewUint64(5)
		v, err := quarry.AggregateBinary(op, quarry.Empty(), x)
		require.NoError(t, err)
		assert.True(t, x.Equal(v), "%s(empty, x)", op)
		v, err = quarry.AggregateBinary(op, x, quarry.Empty())
		require.NoError(t, err)
		assert.True(t, x.Equal(v), "%s(x, empty)", op)
		v, err = quarry.AggregateBinary(op, quarry.Empty(), quarry.Empty())
		require.NoError(t, err)
		assert.True(t, v.IsEmpty())
	}
}

func TestAggregateBinary(t *testing.T) {
	v, err := quarry.AggregateBinary(quarry.Min, quarry.NewUint64(3), quarry.NewUint64(9))
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(3).Equal(v))

	v, err = quarry.AggregateBinary(quarry.Max, quarry.NewUint64(3), quarry.NewFloat64(2.5))
	require.NoError(t, err)
	assert.True(t, quarry.NewFloat64(3).Equal(v))

	_, err = quarry.AggregateBinary(quarry.Sum, quarry.NewUint64(1), quarry.NewUint64(2))
	assert.ErrorIs(t, err, quarry.ErrBadOp)
}

func TestAggregateReduce(t *testing.T) {
	arr := colbuf.Uint64Array(4, 1, 7, 2)

	v, err := quarry.AggregateReduce(quarry.Sum, arr)
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(14).Equal(v))

	v, err = quarry.AggregateReduce(quarry.Min, arr)
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(1).Equal(v))

	v, err = quarry.AggregateReduce(quarry.Max, arr)
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(7).Equal(v))

	farr := colbuf.Float64Array(2.5, -1.5)
	v, err = quarry.AggregateReduce(quarry.Sum, farr)
	require.NoError(t, err)
	assert.True(t, quarry.NewFloat64(1).Equal(v))

	_, err = quarry.AggregateReduce(quarry.Count, arr)
	assert.ErrorIs(t, err, quarry.ErrBadOp)
}

func TestAggregateReduceEmptyArray(t *testing.T) {
	for _, op := range []quarry.AggOp{quarry.Min, quarry.Max, quarry.Sum} {
		v, err := quarry.AggregateReduce(op, colbuf.Uint64Array())
		require.NoError(t, err)
		assert.True(t, v.IsEmpty(), "%s over empty array", op)
	}
}

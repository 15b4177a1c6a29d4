package exec_test

import (
	"context"
	"testing"

	"github.com/apache/arrow/go/v11/arrow"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/colbuf"
	"github.com/quarrydata/quarry/exec"
	"github.com/quarrydata/quarry/expr"
	"github.com/quarrydata/quarry/expr/agg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func uintBatch(t *testing.T, vals ...uint64) *colbuf.Batch {
	t.Helper()
	schema := quarry.NewSchema(quarry.NewColumn("x", quarry.TypeUint64))
	b, err := colbuf.NewBatch(schema, []arrow.Array{colbuf.Uint64Array(vals...)})
	require.NoError(t, err)
	return b
}

func newAggs(t *testing.T) []*agg.Aggregator {
	t.Helper()
	x := expr.NewField("x")
	var aggs []*agg.Aggregator
	for _, maker := range []func(...expr.Evaluator) (*agg.Aggregator, error){
		agg.NewCount, agg.NewSum, agg.NewMin, agg.NewMax, agg.NewAvg,
	} {
		a, err := maker(x)
		require.NoError(t, err)
		aggs = append(aggs, a)
	}
	return aggs
}

func TestMergerRun(t *testing.T) {
	m := exec.NewMerger(newAggs(t), zap.NewNop(), prometheus.NewRegistry())
	partitions := []exec.Puller{
		exec.NewPuller(uintBatch(t, 1, 2, 3), uintBatch(t, 4)),
		exec.NewPuller(uintBatch(t, 5, 6)),
	}
	results, err := m.Run(context.Background(), partitions)
	require.NoError(t, err)
	require.Len(t, results, 5)
	assert.True(t, quarry.NewUint64(6).Equal(results[0]), "count %s", results[0])
	assert.True(t, quarry.NewUint64(21).Equal(results[1]), "sum %s", results[1])
	assert.True(t, quarry.NewUint64(1).Equal(results[2]), "min %s", results[2])
	assert.True(t, quarry.NewUint64(6).Equal(results[3]), "max %s", results[3])
	assert.True(t, quarry.NewFloat64(3.5).Equal(results[4]), "avg %s", results[4])
}

// A partition that never produces a batch contributes identity partials.
func TestMergerEmptyPartition(t *testing.T) {
	x := expr.NewField("x")
	min, err := agg.NewMin(x)
	require.NoError(t, err)
	sum, err := agg.NewSum(x)
	require.NoError(t, err)

	m := exec.NewMerger([]*agg.Aggregator{min, sum}, nil, nil)
	partitions := []exec.Puller{
		exec.NewPuller(),
		exec.NewPuller(uintBatch(t, 3, 9)),
	}
	results, err := m.Run(context.Background(), partitions)
	require.NoError(t, err)
	assert.True(t, quarry.NewUint64(3).Equal(results[0]), "min %s", results[0])
	assert.True(t, quarry.NewUint64(12).Equal(results[1]), "sum %s", results[1])
}

func TestMergerPartitionError(t *testing.T) {
	x := expr.NewField("x")
	sum, err := agg.NewSum(x)
	require.NoError(t, err)

	schema := quarry.NewSchema(quarry.NewColumn("y", quarry.TypeUint64))
	bad, err := colbuf.NewBatch(schema, []arrow.Array{colbuf.Uint64Array(1, 2)})
	require.NoError(t, err)

	m := exec.NewMerger([]*agg.Aggregator{sum}, nil, nil)
	_, err = m.Run(context.Background(), []exec.Puller{exec.NewPuller(bad)})
	assert.ErrorIs(t, err, quarry.ErrFieldNotFound)
}

func TestMergerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := agg.NewSum(expr.NewField("x"))
	require.NoError(t, err)
	m := exec.NewMerger([]*agg.Aggregator{sum}, nil, nil)
	_, err = m.Run(ctx, []exec.Puller{exec.NewPuller(uintBatch(t, 1))})
	assert.ErrorIs(t, err, context.Canceled)
}

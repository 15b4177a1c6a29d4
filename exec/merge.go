package exec

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/expr/agg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Merger coordinates partitioned aggregation: it fans one clone of each
// aggregator out per partition, collects the partitions' partial states once
// every partition has fully drained its source, and merges them into its own
// instances for the final answer.
//
// The Merger is the single writer of the flat partial-vector layout: it
// assigns each aggregator's merge depth itself, so a misassigned depth
// cannot silently merge the wrong peer's data.
type Merger struct {
	aggs    []*agg.Aggregator
	logger  *zap.Logger
	metrics *metrics
}

func NewMerger(aggs []*agg.Aggregator, logger *zap.Logger, reg prometheus.Registerer) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{aggs: aggs, logger: logger, metrics: newMetrics(reg)}
}

// Run executes the aggregators over every partition concurrently and returns
// one final value per aggregator.  The merge phase starts only after every
// partition has finished scanning; a partition failure cancels the rest.
func (m *Merger) Run(ctx context.Context, partitions []Puller) ([]quarry.Value, error) {
	group, ctx := errgroup.WithContext(ctx)
	partials := make([][]quarry.Value, len(partitions))
	for i, source := range partitions {
		i, source := i, source
		p := newPartition(m.aggs, source, m.metrics)
		group.Go(func() error {
			if err := p.run(ctx); err != nil {
				return fmt.Errorf("partition %d: %w", i, err)
			}
			partials[i] = p.partials()
			m.logger.Debug("partition drained",
				zap.Int("partition", i),
				zap.Int("partials", len(partials[i])))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	// Depth i is aggregator i's slot in each partition's partial vector.
	for i, a := range m.aggs {
		a.SetDepth(i)
	}
	for i, states := range partials {
		for _, a := range m.aggs {
			if err := a.Merge(states); err != nil {
				return nil, fmt.Errorf("merging partition %d: %w", i, err)
			}
		}
	}
	results := make([]quarry.Value, len(m.aggs))
	for i, a := range m.aggs {
		v, err := a.MergeResult()
		if err != nil {
			return nil, fmt.Errorf("finalizing %s: %w", a, err)
		}
		results[i] = v
	}
	m.logger.Debug("merge complete",
		zap.Int("partitions", len(partitions)),
		zap.Int("aggregators", len(m.aggs)))
	return results, nil
}

package exec

import (
	"context"

	"github.com/quarrydata/quarry"
	"github.com/quarrydata/quarry/expr/agg"
)

// partition drives one set of aggregator instances over one input stream.
// The instances are clones of the coordinator's prototypes, so each
// partition owns its mutable state exclusively.
type partition struct {
	aggs    []*agg.Aggregator
	source  Puller
	metrics *metrics
}

func newPartition(protos []*agg.Aggregator, source Puller, metrics *metrics) *partition {
	aggs := make([]*agg.Aggregator, len(protos))
	for i, p := range protos {
		aggs[i] = p.Clone()
	}
	return &partition{aggs: aggs, source: source, metrics: metrics}
}

// run pulls batches until end of stream, folding every batch into every
// aggregator.  Cancellation is honored between pulls.
func (p *partition) run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		batch, err := p.source.Pull()
		if err != nil {
			return err
		}
		if batch == nil {
			return nil
		}
		p.metrics.batches.Inc()
		p.metrics.rows.Add(float64(batch.NumRows()))
		for _, a := range p.aggs {
			if err := a.Accumulate(batch); err != nil {
				return err
			}
		}
	}
}

// partials returns the concatenation of each aggregator's partial state in
// expression order, matching the depth layout the coordinator assigns.
func (p *partition) partials() []quarry.Value {
	var states []quarry.Value
	for _, a := range p.aggs {
		states = append(states, a.AccumulateResult()...)
	}
	return states
}

package exec

import "github.com/quarrydata/quarry/colbuf"

// Puller is the stream interface the execution layer consumes.  Pull returns
// the next batch, or nil at end of stream.
type Puller interface {
	Pull() (*colbuf.Batch, error)
}

type slicePuller struct {
	batches []*colbuf.Batch
}

// NewPuller returns a Puller over a fixed in-memory sequence of batches.
func NewPuller(batches ...*colbuf.Batch) Puller {
	return &slicePuller{batches: batches}
}

func (s *slicePuller) Pull() (*colbuf.Batch, error) {
	if len(s.batches) == 0 {
		return nil, nil
	}
	b := s.batches[0]
	s.batches = s.batches[1:]
	return b, nil
}

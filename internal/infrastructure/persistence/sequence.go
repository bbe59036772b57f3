package persistence

import "sync/atomic"

// sequence hands out monotonic record ids.
// It is seeded from the highest id already present in a collection, so ids
// are never reused after a deletion. The original length-based assignment
// (len+1) collided whenever a record had been deleted.
type sequence struct {
	last atomic.Int64
}

func newSequence(seed int64) *sequence {
	s := &sequence{}
	s.last.Store(seed)
	return s
}

// Next returns the next id
func (s *sequence) Next() int64 {
	return s.last.Add(1)
}

// Rewind restarts the sequence at zero. Only valid after the collection
// has been emptied, since ids handed out earlier become free again.
func (s *sequence) Rewind() {
	s.last.Store(0)
}

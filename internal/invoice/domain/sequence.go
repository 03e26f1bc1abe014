package domain

import "sync/atomic"

// Sequence issues invoice numbers. It is owned by whichever service
// generates invoices rather than living in package state, so a process
// holds exactly one and tests can seed their own. Numbers are strictly
// increasing by one from the seed and are never reset or reused.
type Sequence struct {
	next atomic.Int64
}

// NewSequence returns a sequence whose first Next call yields seed.
func NewSequence(seed int64) *Sequence {
	s := &Sequence{}
	s.next.Store(seed)
	return s
}

// Next returns the next invoice number.
func (s *Sequence) Next() int64 {
	return s.next.Add(1) - 1
}

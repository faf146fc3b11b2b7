package stub

import "sync"

// LazySlot is a single-assignment cache: it holds either "unmaterialized" or
// a frozen value.  The compute function passed to Force runs at most once
// per slot, even under concurrent calls; every caller observes the same
// frozen value.  The hot path after freezing is a lock-free load.
//
// The compute function is stored as plain data at the call site rather than
// captured on the value being computed, which keeps the slot decoupled from
// any particular ownership graph.
type LazySlot[T any] struct {
	once  sync.Once
	value T
}

// Force returns the frozen value, computing and freezing it on first call.
func (s *LazySlot[T]) Force(compute func() T) T {
	s.once.Do(func() {
		s.value = compute()
	})
	return s.value
}

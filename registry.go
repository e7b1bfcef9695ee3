package reach

// registry is a buffered collection of registered items. Register and
// Unregister accumulate into pending diffs; flush reconciles them into the
// live set and refreshes the frozen snapshot used for iteration. This is the
// discipline that keeps per-frame iteration stable while callbacks register
// and unregister items mid-phase: readers walk the snapshot, writers touch
// only the pending diffs, and the two meet at a single well-known point.
//
// The live set preserves registration order, which the snapshot inherits.
type registry[T comparable] struct {
	live           []T
	liveIndex      map[T]struct{}
	pendingAdds    []T
	pendingRemoves map[T]struct{}
	snapshot       []T
}

func newRegistry[T comparable]() *registry[T] {
	return &registry[T]{
		liveIndex:      make(map[T]struct{}),
		pendingRemoves: make(map[T]struct{}),
	}
}

// register queues item for addition at the next flush. Returns false if the
// item is already registered (and not pending removal) or already pending.
func (r *registry[T]) register(item T) bool {
	if _, removing := r.pendingRemoves[item]; removing {
		delete(r.pendingRemoves, item)
		return true
	}
	if r.isRegistered(item) {
		return false
	}
	r.pendingAdds = append(r.pendingAdds, item)
	return true
}

// unregister queues item for removal at the next flush. Returns false if the
// item is not currently registered.
func (r *registry[T]) unregister(item T) bool {
	for i, a := range r.pendingAdds {
		if a == item {
			r.pendingAdds = append(r.pendingAdds[:i], r.pendingAdds[i+1:]...)
			return true
		}
	}
	if _, live := r.liveIndex[item]; !live {
		return false
	}
	if _, removing := r.pendingRemoves[item]; removing {
		return false
	}
	r.pendingRemoves[item] = struct{}{}
	return true
}

// isRegistered reports whether item is registered from the caller's point of
// view: live items pending removal are no longer registered, pending adds
// already are. Safe to query mid-iteration; the snapshot stays frozen.
func (r *registry[T]) isRegistered(item T) bool {
	if _, removing := r.pendingRemoves[item]; removing {
		return false
	}
	if _, live := r.liveIndex[item]; live {
		return true
	}
	for _, a := range r.pendingAdds {
		if a == item {
			return true
		}
	}
	return false
}

// flush applies pending adds and removes to the live set and refreshes the
// snapshot. Pure data movement, no callbacks. Called only at phase boundaries.
func (r *registry[T]) flush() {
	if len(r.pendingRemoves) > 0 {
		kept := r.live[:0]
		for _, item := range r.live {
			if _, removing := r.pendingRemoves[item]; removing {
				delete(r.liveIndex, item)
				continue
			}
			kept = append(kept, item)
		}
		// Zero the tail so removed items do not linger in the backing array.
		for i := len(kept); i < len(r.live); i++ {
			var zero T
			r.live[i] = zero
		}
		r.live = kept
		clear(r.pendingRemoves)
	}
	for _, item := range r.pendingAdds {
		r.live = append(r.live, item)
		r.liveIndex[item] = struct{}{}
	}
	r.pendingAdds = r.pendingAdds[:0]

	r.snapshot = append(r.snapshot[:0], r.live...)
}

// items returns the frozen snapshot from the most recent flush. The returned
// slice must not be mutated and is only valid until the next flush.
func (r *registry[T]) items() []T {
	return r.snapshot
}

// registered returns every currently registered item: live minus pending
// removals, plus pending adds. Allocates a fresh slice; registration paths
// only, never the per-frame loops.
func (r *registry[T]) registered() []T {
	out := make([]T, 0, len(r.live)+len(r.pendingAdds))
	for _, item := range r.live {
		if _, removing := r.pendingRemoves[item]; !removing {
			out = append(out, item)
		}
	}
	return append(out, r.pendingAdds...)
}

// len returns the number of live items (excluding pending changes).
func (r *registry[T]) count() int {
	return len(r.live)
}

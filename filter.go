package reach

// InteractionFilter is a boolean predicate evaluated against an
// (interactor, interactable) pair. Chains of these gate hover and select
// eligibility.
type InteractionFilter func(interactor *Interactor, interactable *Interactable) bool

// StrengthFilter receives the running interaction-strength value for a pair
// and returns a possibly modified value that feeds the next filter.
type StrengthFilter func(interactor *Interactor, interactable *Interactable, strength float64) float64

// FilterHandle identifies a filter within its chain so it can be removed or
// moved later. The zero handle is invalid.
type FilterHandle struct {
	id uint32
}

type filterEntry[T any] struct {
	id uint32
	fn T
}

// chain holds the ordered entries and the mutation buffering shared by
// FilterChain and StrengthChain. Mutations attempted while the chain is
// mid-processing are deferred until processing unwinds; processing may nest
// when a filter triggers a transition that re-evaluates the same chain.
type chain[T any] struct {
	entries        []filterEntry[T]
	nextID         uint32
	depth          int
	pendingAdds    []filterEntry[T]
	pendingRemoves []uint32
}

func (c *chain[T]) add(fn T) FilterHandle {
	c.nextID++
	e := filterEntry[T]{id: c.nextID, fn: fn}
	if c.depth > 0 {
		c.pendingAdds = append(c.pendingAdds, e)
	} else {
		c.entries = append(c.entries, e)
	}
	return FilterHandle{id: e.id}
}

func (c *chain[T]) remove(h FilterHandle) bool {
	if h.id == 0 {
		return false
	}
	if c.depth > 0 {
		if !c.contains(h.id) {
			return false
		}
		c.pendingRemoves = append(c.pendingRemoves, h.id)
		return true
	}
	return c.removeNow(h.id)
}

// moveTo repositions the filter at the given index. Rejected outright while
// the chain is processing: ordering changes require a flush boundary, unlike
// simple add/remove.
func (c *chain[T]) moveTo(h FilterHandle, index int) bool {
	if c.depth > 0 {
		return false
	}
	if index < 0 || index >= len(c.entries) {
		return false
	}
	from := -1
	for i := range c.entries {
		if c.entries[i].id == h.id {
			from = i
			break
		}
	}
	if from < 0 {
		return false
	}
	e := c.entries[from]
	c.entries = append(c.entries[:from], c.entries[from+1:]...)
	c.entries = append(c.entries, filterEntry[T]{})
	copy(c.entries[index+1:], c.entries[index:])
	c.entries[index] = e
	return true
}

func (c *chain[T]) contains(id uint32) bool {
	for i := range c.entries {
		if c.entries[i].id == id {
			return true
		}
	}
	for i := range c.pendingAdds {
		if c.pendingAdds[i].id == id {
			return true
		}
	}
	return false
}

func (c *chain[T]) removeNow(id uint32) bool {
	for i := range c.entries {
		if c.entries[i].id == id {
			copy(c.entries[i:], c.entries[i+1:])
			c.entries[len(c.entries)-1] = filterEntry[T]{}
			c.entries = c.entries[:len(c.entries)-1]
			return true
		}
	}
	for i := range c.pendingAdds {
		if c.pendingAdds[i].id == id {
			c.pendingAdds = append(c.pendingAdds[:i], c.pendingAdds[i+1:]...)
			return true
		}
	}
	return false
}

// begin/end bracket one processing pass. Pending mutations apply when the
// outermost pass unwinds.
func (c *chain[T]) begin() { c.depth++ }

func (c *chain[T]) end() {
	c.depth--
	if c.depth > 0 {
		return
	}
	for _, id := range c.pendingRemoves {
		c.removeNow(id)
	}
	c.pendingRemoves = c.pendingRemoves[:0]
	c.entries = append(c.entries, c.pendingAdds...)
	c.pendingAdds = c.pendingAdds[:0]
}

func (c *chain[T]) length() int { return len(c.entries) }

// FilterChain is an ordered list of boolean interaction filters.
// The zero value is an empty chain ready for use.
type FilterChain struct {
	chain[InteractionFilter]
}

// Add appends a filter to the end of the chain. While the chain is
// mid-processing the addition is buffered until processing completes.
func (c *FilterChain) Add(fn InteractionFilter) FilterHandle { return c.add(fn) }

// Remove deletes the filter identified by h. Buffered while processing.
// Returns false if h is not in the chain.
func (c *FilterChain) Remove(h FilterHandle) bool { return c.remove(h) }

// MoveTo repositions the filter identified by h to the given index.
// Returns false if h is not present, the index is out of range, or the chain
// is currently processing.
func (c *FilterChain) MoveTo(h FilterHandle, index int) bool { return c.moveTo(h, index) }

// Len returns the number of filters in the chain, excluding buffered changes.
func (c *FilterChain) Len() int { return c.length() }

// Process evaluates the chain against the pair, short-circuiting to false at
// the first filter that returns false. An empty chain is vacuously true.
func (c *FilterChain) Process(interactor *Interactor, interactable *Interactable) bool {
	c.begin()
	defer c.end()
	for i := range c.entries {
		if !c.entries[i].fn(interactor, interactable) {
			return false
		}
	}
	return true
}

// StrengthChain is an ordered list of interaction-strength filters.
// The zero value is an empty chain ready for use.
type StrengthChain struct {
	chain[StrengthFilter]
}

// Add appends a filter to the end of the chain. While the chain is
// mid-processing the addition is buffered until processing completes.
func (c *StrengthChain) Add(fn StrengthFilter) FilterHandle { return c.add(fn) }

// Remove deletes the filter identified by h. Buffered while processing.
func (c *StrengthChain) Remove(h FilterHandle) bool { return c.remove(h) }

// MoveTo repositions the filter identified by h to the given index.
// Rejected while the chain is processing.
func (c *StrengthChain) MoveTo(h FilterHandle, index int) bool { return c.moveTo(h, index) }

// Len returns the number of filters in the chain, excluding buffered changes.
func (c *StrengthChain) Len() int { return c.length() }

// Process threads strength through each filter in order and returns the final
// value. An empty chain is the identity.
func (c *StrengthChain) Process(interactor *Interactor, interactable *Interactable, strength float64) float64 {
	c.begin()
	defer c.end()
	for i := range c.entries {
		strength = c.entries[i].fn(interactor, interactable, strength)
	}
	return strength
}

package reach

import "testing"

func TestFilterChainEmpty(t *testing.T) {
	var c FilterChain
	if !c.Process(nil, nil) {
		t.Error("empty chain should pass")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestFilterChainShortCircuit(t *testing.T) {
	var c FilterChain
	var calls []string

	c.Add(func(i *Interactor, a *Interactable) bool {
		calls = append(calls, "first")
		return true
	})
	c.Add(func(i *Interactor, a *Interactable) bool {
		calls = append(calls, "second")
		return false
	})
	c.Add(func(i *Interactor, a *Interactable) bool {
		calls = append(calls, "third")
		return true
	})

	if c.Process(nil, nil) {
		t.Error("chain with a failing filter should fail")
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}
}

func TestFilterChainRemove(t *testing.T) {
	var c FilterChain
	h := c.Add(func(i *Interactor, a *Interactable) bool { return false })

	if c.Process(nil, nil) {
		t.Fatal("chain should fail before removal")
	}
	if !c.Remove(h) {
		t.Fatal("Remove should succeed")
	}
	if c.Remove(h) {
		t.Error("double Remove should fail")
	}
	if !c.Process(nil, nil) {
		t.Error("chain should pass after removal")
	}
	if c.Remove(FilterHandle{}) {
		t.Error("Remove of zero handle should fail")
	}
}

func TestFilterChainMoveTo(t *testing.T) {
	var c FilterChain
	var calls []int

	record := func(n int) InteractionFilter {
		return func(i *Interactor, a *Interactable) bool {
			calls = append(calls, n)
			return true
		}
	}
	h1 := c.Add(record(1))
	c.Add(record(2))
	c.Add(record(3))

	if !c.MoveTo(h1, 2) {
		t.Fatal("MoveTo should succeed")
	}
	c.Process(nil, nil)
	if len(calls) != 3 || calls[0] != 2 || calls[1] != 3 || calls[2] != 1 {
		t.Errorf("calls = %v, want [2 3 1]", calls)
	}

	if c.MoveTo(h1, 5) {
		t.Error("MoveTo out of range should fail")
	}
	if c.MoveTo(FilterHandle{id: 999}, 0) {
		t.Error("MoveTo of unknown handle should fail")
	}
}

func TestFilterChainAddDuringProcess(t *testing.T) {
	var c FilterChain
	added := 0

	c.Add(func(i *Interactor, a *Interactable) bool {
		// Additions made mid-process must not run in this pass.
		c.Add(func(i *Interactor, a *Interactable) bool {
			added++
			return true
		})
		return true
	})

	c.Process(nil, nil)
	if added != 0 {
		t.Error("filter added during processing must not run in the same pass")
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d after pass, want 2", c.Len())
	}

	c.Process(nil, nil)
	// The second pass adds another filter but runs the one added before.
	if added != 1 {
		t.Errorf("added filter ran %d times in second pass, want 1", added)
	}
}

func TestFilterChainRemoveDuringProcess(t *testing.T) {
	var c FilterChain
	secondRuns := 0

	var h2 FilterHandle
	c.Add(func(i *Interactor, a *Interactable) bool {
		if !c.Remove(h2) {
			t.Error("buffered Remove should report success")
		}
		return true
	})
	h2 = c.Add(func(i *Interactor, a *Interactable) bool {
		secondRuns++
		return true
	})

	c.Process(nil, nil)
	// Removal is buffered: the doomed filter still runs this pass.
	if secondRuns != 1 {
		t.Errorf("doomed filter ran %d times, want 1", secondRuns)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d after pass, want 1", c.Len())
	}

	c.Process(nil, nil)
	if secondRuns != 1 {
		t.Error("removed filter must not run after the pass ends")
	}
}

func TestFilterChainMoveToDuringProcess(t *testing.T) {
	var c FilterChain
	var h1 FilterHandle
	h1 = c.Add(func(i *Interactor, a *Interactable) bool {
		if c.MoveTo(h1, 0) {
			t.Error("MoveTo must be rejected while processing")
		}
		return true
	})
	c.Process(nil, nil)
}

func TestStrengthChainEmpty(t *testing.T) {
	var c StrengthChain
	if got := c.Process(nil, nil, 0.42); got != 0.42 {
		t.Errorf("empty chain Process = %v, want 0.42", got)
	}
}

func TestStrengthChainThreadsValue(t *testing.T) {
	var c StrengthChain
	c.Add(func(i *Interactor, a *Interactable, s float64) float64 { return s * 2 })
	c.Add(func(i *Interactor, a *Interactable, s float64) float64 { return s + 1 })

	// (0.25 * 2) + 1 = 1.5 — filters run in insertion order.
	if got := c.Process(nil, nil, 0.25); got != 1.5 {
		t.Errorf("Process = %v, want 1.5", got)
	}
}

func TestStrengthChainRemove(t *testing.T) {
	var c StrengthChain
	h := c.Add(func(i *Interactor, a *Interactable, s float64) float64 { return 0 })

	if got := c.Process(nil, nil, 1); got != 0 {
		t.Fatalf("Process = %v, want 0", got)
	}
	if !c.Remove(h) {
		t.Fatal("Remove should succeed")
	}
	if got := c.Process(nil, nil, 1); got != 1 {
		t.Errorf("Process = %v after removal, want 1", got)
	}
}

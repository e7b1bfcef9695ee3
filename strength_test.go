package reach

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestDefaultStrength(t *testing.T) {
	m := NewManager()
	target := NewInteractable("pad")
	i := NewInteractor("hand")
	i.ValidTargets = fixedTargets(target)

	if err := m.RegisterInteractable(target); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(i); err != nil {
		t.Fatal(err)
	}

	// Hovering without selecting reads 0.
	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 0 {
		t.Errorf("hover-only strength = %v, want 0", got)
	}

	// Selecting reads 1.
	i.SelectActive = true
	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 1 {
		t.Errorf("selecting strength = %v, want 1", got)
	}
	if got := target.LargestInteractionStrength(); got != 1 {
		t.Errorf("largest strength = %v, want 1", got)
	}
}

func TestCustomStrengthClamped(t *testing.T) {
	m := NewManager()
	target := NewInteractable("pad")
	i := NewInteractor("hand")
	i.ValidTargets = fixedTargets(target)

	raw := 0.42
	i.Strength = func(*Interactable) float64 { return raw }

	if err := m.RegisterInteractable(target); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(i); err != nil {
		t.Fatal(err)
	}

	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 0.42 {
		t.Errorf("strength = %v, want 0.42", got)
	}

	raw = 3.5
	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 1 {
		t.Errorf("strength = %v, want clamped to 1", got)
	}

	raw = -2
	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 0 {
		t.Errorf("strength = %v, want clamped to 0", got)
	}
}

func TestStrengthChainShapesSignal(t *testing.T) {
	m := NewManager()
	target := NewInteractable("pad")
	target.StrengthFilters.Add(func(_ *Interactor, _ *Interactable, s float64) float64 {
		return s / 2
	})

	i := NewInteractor("hand")
	i.SelectActive = true
	i.ValidTargets = fixedTargets(target)

	if err := m.RegisterInteractable(target); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(i); err != nil {
		t.Fatal(err)
	}

	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 0.5 {
		t.Errorf("filtered strength = %v, want 0.5", got)
	}
}

func TestStrengthLargestAcrossInteractors(t *testing.T) {
	m := NewManager()
	target := NewInteractable("pad")
	target.SelectMode = SelectMultiple

	soft := NewInteractor("soft")
	soft.ValidTargets = fixedTargets(target)
	soft.Strength = func(*Interactable) float64 { return 0.3 }
	firm := NewInteractor("firm")
	firm.ValidTargets = fixedTargets(target)
	firm.Strength = func(*Interactable) float64 { return 0.7 }

	for _, err := range []error{
		m.RegisterInteractable(target), m.RegisterInteractor(soft), m.RegisterInteractor(firm),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	m.Update(testDT)
	if got := target.InteractionStrength(soft); got != 0.3 {
		t.Errorf("soft strength = %v, want 0.3", got)
	}
	if got := target.InteractionStrength(firm); got != 0.7 {
		t.Errorf("firm strength = %v, want 0.7", got)
	}
	if got := target.LargestInteractionStrength(); got != 0.7 {
		t.Errorf("largest strength = %v, want 0.7", got)
	}
}

func TestStrengthClearedWhenNotInteracting(t *testing.T) {
	m := NewManager()
	target := NewInteractable("pad")
	i := NewInteractor("hand")
	i.SelectActive = true

	targets := []*Interactable{target}
	i.ValidTargets = func(buf []*Interactable) []*Interactable { return append(buf, targets...) }

	if err := m.RegisterInteractable(target); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(i); err != nil {
		t.Fatal(err)
	}

	m.Update(testDT)
	if target.InteractionStrength(i) != 1 {
		t.Fatal("expected full strength while selecting")
	}

	targets = nil
	m.Update(testDT)
	if got := target.InteractionStrength(i); got != 0 {
		t.Errorf("strength = %v after all relations ended, want 0", got)
	}
	if got := target.LargestInteractionStrength(); got != 0 {
		t.Errorf("largest strength = %v, want 0", got)
	}
}

func TestEasedStrength(t *testing.T) {
	linear := EasedStrength(ease.Linear)
	for _, v := range []float64{0, 0.3, 0.5, 1} {
		if got := linear(nil, nil, v); math.Abs(got-v) > 1e-6 {
			t.Errorf("linear(%v) = %v, want identity", v, got)
		}
	}

	quad := EasedStrength(ease.InOutQuad)
	if got := quad(nil, nil, 0); math.Abs(got) > 1e-6 {
		t.Errorf("quad(0) = %v, want 0", got)
	}
	if got := quad(nil, nil, 1); math.Abs(got-1) > 1e-6 {
		t.Errorf("quad(1) = %v, want 1", got)
	}
	if got := quad(nil, nil, 0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("quad(0.5) = %v, want 0.5", got)
	}
	// Ease-in: the first half undershoots the raw signal.
	if got := quad(nil, nil, 0.25); got >= 0.25 {
		t.Errorf("quad(0.25) = %v, want below 0.25", got)
	}
}

func TestRampAttack(t *testing.T) {
	r := &Ramp{Attack: 0.1, Release: 0.2}
	f := r.Filter()

	// Full-scale rise over 0.1s at 1/60 per step: one sixth per step.
	v := f(nil, nil, 1)
	if math.Abs(v-1.0/6) > 1e-3 {
		t.Fatalf("first step = %v, want ~%v", v, 1.0/6)
	}
	v = f(nil, nil, 1)
	if math.Abs(v-2.0/6) > 1e-3 {
		t.Fatalf("second step = %v, want ~%v", v, 2.0/6)
	}
	for n := 0; n < 10; n++ {
		v = f(nil, nil, 1)
	}
	if math.Abs(v-1) > 1e-3 {
		t.Errorf("settled value = %v, want 1", v)
	}
}

func TestRampRelease(t *testing.T) {
	r := &Ramp{Attack: 0, Release: 0.2}
	f := r.Filter()

	// Zero attack jumps straight to the target.
	if v := f(nil, nil, 1); math.Abs(v-1) > 1e-6 {
		t.Fatalf("zero-attack step = %v, want 1", v)
	}

	// Full-scale fall over 0.2s: one twelfth per step.
	v := f(nil, nil, 0)
	if math.Abs(v-(1-1.0/12)) > 1e-3 {
		t.Fatalf("release step = %v, want ~%v", v, 1-1.0/12)
	}
	for n := 0; n < 20; n++ {
		v = f(nil, nil, 0)
	}
	if math.Abs(v) > 1e-3 {
		t.Errorf("settled value = %v, want 0", v)
	}
}

func TestRampTracksPairsIndependently(t *testing.T) {
	r := &Ramp{Attack: 0.1, Release: 0.1}
	f := r.Filter()

	a := NewInteractor("a")
	b := NewInteractor("b")
	pad := NewInteractable("pad")

	// Drive pair a to full while pair b stays at zero.
	var va float64
	for n := 0; n < 10; n++ {
		va = f(a, pad, 1)
	}
	vb := f(b, pad, 0)

	if math.Abs(va-1) > 1e-3 {
		t.Errorf("pair a = %v, want 1", va)
	}
	if math.Abs(vb) > 1e-6 {
		t.Errorf("pair b = %v, want 0", vb)
	}
}

func TestRampForget(t *testing.T) {
	r := &Ramp{Attack: 0.1, Release: 0.1}
	f := r.Filter()

	a := NewInteractor("a")
	pad := NewInteractable("pad")

	for n := 0; n < 10; n++ {
		f(a, pad, 1)
	}
	if v := f(a, pad, 1); math.Abs(v-1) > 1e-3 {
		t.Fatalf("value = %v before Forget, want 1", v)
	}

	// Dropped state restarts the ramp from zero.
	r.Forget(a, pad)
	if v := f(a, pad, 1); v > 0.5 {
		t.Errorf("value = %v after Forget, want a fresh ramp from 0", v)
	}
}

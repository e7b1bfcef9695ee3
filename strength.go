package reach

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// EasedStrength returns a strength filter that reshapes the raw [0, 1] signal
// through an easing curve, so a poke or squeeze affordance can feel soft at
// the start and firm near full engagement:
//
//	interactable.StrengthFilters.Add(reach.EasedStrength(ease.InOutQuad))
func EasedStrength(fn ease.TweenFunc) StrengthFilter {
	return func(_ *Interactor, _ *Interactable, strength float64) float64 {
		return float64(fn(float32(strength), 0, 1, 1))
	}
}

// Ramp produces a strength filter that smooths changes over time instead of
// letting the signal step. Attack governs rises, Release falls; both are the
// full-scale travel time in seconds. One Ramp tracks state per pair, so a
// single Ramp can serve a whole strength chain.
//
// The ramp advances by Step seconds per Update phase. It only runs while the
// pair is interacting; a pair that stops interacting reads as zero
// immediately.
type Ramp struct {
	Attack  float32
	Release float32
	// Step is the simulated time per Update phase. Zero means 1/60.
	Step float32

	states map[rampKey]*rampState
}

type rampKey struct {
	interactor   *Interactor
	interactable *Interactable
}

type rampState struct {
	tween  *gween.Tween
	value  float32
	target float32
}

// Filter returns the StrengthFilter for this ramp.
func (r *Ramp) Filter() StrengthFilter {
	return func(i *Interactor, t *Interactable, strength float64) float64 {
		step := r.Step
		if step == 0 {
			step = 1.0 / 60
		}
		if r.states == nil {
			r.states = make(map[rampKey]*rampState)
		}
		key := rampKey{interactor: i, interactable: t}
		st, ok := r.states[key]
		if !ok {
			st = &rampState{}
			r.states[key] = st
		}

		target := float32(strength)
		if target != st.target {
			travel := target - st.value
			dur := r.Attack
			if travel < 0 {
				travel = -travel
				dur = r.Release
			}
			st.target = target
			if dur <= 0 {
				st.value = target
				st.tween = nil
			} else {
				st.tween = gween.New(st.value, target, dur*travel, ease.Linear)
			}
		}
		if st.tween != nil {
			v, finished := st.tween.Update(step)
			st.value = v
			if finished {
				st.tween = nil
			}
		}
		return float64(st.value)
	}
}

// Forget drops the ramp state held for the pair. Call when an interactor or
// interactable is unregistered for good, to keep the state map from growing.
func (r *Ramp) Forget(i *Interactor, t *Interactable) {
	delete(r.states, rampKey{interactor: i, interactable: t})
}

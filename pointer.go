package reach

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerInteractor drives an Interactor from ebiten mouse and touch input:
// the pointer position becomes the reach origin, a held button or touch
// becomes select activity, and valid targets are the interactables whose
// probes contain the pointer (nearest first), optionally widened by
// HoverRadius. The first active touch takes precedence over the mouse.
//
// One PointerInteractor tracks one pointer; create one per simultaneous
// touch point if multi-touch interaction is needed.
type PointerInteractor struct {
	*Interactor

	// HoverRadius additionally admits interactables within this distance of
	// the pointer, after direct probe hits. Zero means containment only.
	HoverRadius float64

	// ScreenToWorld converts device coordinates to world coordinates.
	// Nil is the identity, for hosts whose camera is fixed at the origin.
	ScreenToWorld func(x, y float64) (wx, wy float64)

	injectQueue  []syntheticPointerEvent
	prevTouchIDs []ebiten.TouchID
	radiusBuf    []*Interactable
}

// NewPointerInteractor creates a pointer interactor ready to register with a
// manager. Input is sampled during the manager's Update preprocess step.
func NewPointerInteractor(name string) *PointerInteractor {
	p := &PointerInteractor{Interactor: NewInteractor(name)}
	p.OnPreprocess = p.preprocess
	p.ValidTargets = p.targets
	return p
}

// preprocess samples the injected queue or the real device state.
func (p *PointerInteractor) preprocess(dt float64) {
	if p.consumeInjected() {
		return
	}

	var sx, sy float64
	var pressed bool

	p.prevTouchIDs = ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	if len(p.prevTouchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.prevTouchIDs[0])
		sx, sy = float64(tx), float64(ty)
		pressed = true
	} else {
		mx, my := ebiten.CursorPosition()
		sx, sy = float64(mx), float64(my)
		pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) ||
			ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}

	p.apply(sx, sy, pressed)
}

// apply converts to world coordinates and updates the interactor state.
func (p *PointerInteractor) apply(sx, sy float64, pressed bool) {
	wx, wy := sx, sy
	if p.ScreenToWorld != nil {
		wx, wy = p.ScreenToWorld(sx, sy)
	}
	p.Position = Vec2{X: wx, Y: wy}
	p.SelectActive = pressed
}

// targets produces the candidate list: probe hits in registration order,
// then, when HoverRadius is set, near misses ordered nearest first.
func (p *PointerInteractor) targets(buf []*Interactable) []*Interactable {
	m := p.manager
	if m == nil {
		return buf
	}
	start := len(buf)
	buf = m.InteractablesAt(p.Position, buf)

	if p.HoverRadius > 0 {
		p.radiusBuf = p.radiusBuf[:0]
		maxSq := p.HoverRadius * p.HoverRadius
		for _, t := range m.interactables.items() {
			if !m.interactables.isRegistered(t) || containsInteractable(buf[start:], t) {
				continue
			}
			if _, sq := t.Distance(p.Position); sq <= maxSq {
				p.radiusBuf = append(p.radiusBuf, t)
			}
		}
		pos := p.Position
		sort.Slice(p.radiusBuf, func(a, b int) bool {
			_, da := p.radiusBuf[a].Distance(pos)
			_, db := p.radiusBuf[b].Distance(pos)
			return da < db
		})
		buf = append(buf, p.radiusBuf...)
	}
	return buf
}

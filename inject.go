package reach

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, converted to world coordinates exactly like real input.
type syntheticPointerEvent struct {
	screenX, screenY float64
	pressed          bool
}

// InjectPress queues a pointer press at the given screen coordinates. The
// event is consumed on the next Update phase's preprocess step, replacing
// real device input for that frame.
func (p *PointerInteractor) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectMove queues a pointer move at the given screen coordinates with the
// button held down. Use between InjectPress and InjectRelease to simulate a
// drag.
func (p *PointerInteractor) InjectMove(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (p *PointerInteractor) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{screenX: x, screenY: y, pressed: false})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two frames.
func (p *PointerInteractor) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate frames, and release at
// (toX, toY). The total sequence consumes frames frames; the minimum is 2
// (press + release).
func (p *PointerInteractor) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease(toX, toY)
}

// consumeInjected pops one queued event and applies it. Reports whether an
// event was consumed (real device input should be skipped this frame).
func (p *PointerInteractor) consumeInjected() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.apply(evt.screenX, evt.screenY, evt.pressed)
	return true
}

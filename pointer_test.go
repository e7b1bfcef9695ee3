package reach

import "testing"

func TestPointerInjectClick(t *testing.T) {
	m := NewManager()
	box := NewInteractable("box", ProbeRect{X: 0, Y: 0, Width: 100, Height: 100})

	p := NewPointerInteractor("pointer")
	if err := m.RegisterInteractable(box); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(p.Interactor); err != nil {
		t.Fatal(err)
	}

	var enters, exits int
	m.OnSelectEntered(func(SelectEventArgs) { enters++ })
	m.OnSelectExited(func(SelectEventArgs) { exits++ })

	p.InjectClick(50, 50)

	// Press frame: pointer lands on the box and selects it.
	m.Update(testDT)
	if p.Position != (Vec2{50, 50}) {
		t.Errorf("Position = %v, want {50 50}", p.Position)
	}
	if !p.SelectActive {
		t.Error("press frame should set SelectActive")
	}
	if !p.IsSelecting(box) || !p.IsHovering(box) {
		t.Error("pointer should select and hover the box under it")
	}

	// Release frame: selection ends, hover stays while still over the box.
	m.Update(testDT)
	if p.SelectActive {
		t.Error("release frame should clear SelectActive")
	}
	if p.IsSelecting(box) {
		t.Error("selection should end on release")
	}
	if !p.IsHovering(box) {
		t.Error("hover should persist while the pointer stays over the box")
	}
	if enters != 1 || exits != 1 {
		t.Errorf("enters = %d, exits = %d, want 1, 1", enters, exits)
	}
}

func TestPointerInjectDrag(t *testing.T) {
	m := NewManager()
	box := NewInteractable("box", ProbeRect{X: 0, Y: 0, Width: 100, Height: 100})

	p := NewPointerInteractor("pointer")
	p.KeepSelectedTargetValid = true
	if err := m.RegisterInteractable(box); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterInteractor(p.Interactor); err != nil {
		t.Fatal(err)
	}

	var enters, exits int
	m.OnSelectEntered(func(SelectEventArgs) { enters++ })
	m.OnSelectExited(func(SelectEventArgs) { exits++ })

	const frames = 4
	p.InjectDrag(50, 50, 300, 300, frames)

	for n := 0; n < frames; n++ {
		m.Update(testDT)
		if n < frames-1 && !p.IsSelecting(box) {
			t.Fatalf("frame %d: kept selection should survive the drag", n)
		}
	}

	if p.Position != (Vec2{300, 300}) {
		t.Errorf("final Position = %v, want {300 300}", p.Position)
	}
	if p.IsSelecting(box) {
		t.Error("selection should end on release")
	}
	if enters != 1 || exits != 1 {
		t.Errorf("enters = %d, exits = %d, want 1, 1", enters, exits)
	}
}

func TestPointerInjectDragMinimumFrames(t *testing.T) {
	p := NewPointerInteractor("pointer")
	p.InjectDrag(0, 0, 10, 10, 0)
	// Clamped to press + release.
	if got := len(p.injectQueue); got != 2 {
		t.Errorf("queue length = %d, want 2", got)
	}
	if !p.injectQueue[0].pressed || p.injectQueue[1].pressed {
		t.Error("queue should be press then release")
	}
}

func TestPointerScreenToWorld(t *testing.T) {
	m := NewManager()
	p := NewPointerInteractor("pointer")
	p.ScreenToWorld = func(x, y float64) (float64, float64) {
		return x / 2, y / 2
	}
	if err := m.RegisterInteractor(p.Interactor); err != nil {
		t.Fatal(err)
	}

	p.InjectPress(100, 60)
	m.Update(testDT)
	if p.Position != (Vec2{50, 30}) {
		t.Errorf("Position = %v, want world coordinates {50 30}", p.Position)
	}
}

func TestPointerTargetsOrdering(t *testing.T) {
	m := NewManager()

	hit := NewInteractable("hit", ProbeRect{X: -10, Y: -10, Width: 20, Height: 20})
	near := NewInteractable("near")
	near.Position = Vec2{30, 0}
	mid := NewInteractable("mid")
	mid.Position = Vec2{50, 0}
	far := NewInteractable("far")
	far.Position = Vec2{200, 0}

	p := NewPointerInteractor("pointer")
	p.HoverRadius = 100

	for _, err := range []error{
		m.RegisterInteractable(far), m.RegisterInteractable(mid),
		m.RegisterInteractable(near), m.RegisterInteractable(hit),
		m.RegisterInteractor(p.Interactor),
	} {
		if err != nil {
			t.Fatal(err)
		}
	}

	// Park the pointer at the origin without pressing.
	p.InjectRelease(0, 0)
	m.Update(testDT)

	// Direct probe hits first, then near misses ordered nearest first;
	// anything beyond HoverRadius is excluded.
	got := p.targets(nil)
	want := []*Interactable{hit, near, mid}
	if len(got) != len(want) {
		t.Fatalf("targets = %v, want %v", got, want)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("targets[%d] = %v, want %v", n, got[n], want[n])
		}
	}
}

func TestPointerInjectConsumesOnePerFrame(t *testing.T) {
	m := NewManager()
	p := NewPointerInteractor("pointer")
	if err := m.RegisterInteractor(p.Interactor); err != nil {
		t.Fatal(err)
	}

	p.InjectPress(10, 10)
	p.InjectMove(20, 20)
	p.InjectRelease(30, 30)

	m.Update(testDT)
	if p.Position != (Vec2{10, 10}) || len(p.injectQueue) != 2 {
		t.Errorf("after frame 1: Position = %v, queue = %d", p.Position, len(p.injectQueue))
	}
	m.Update(testDT)
	if p.Position != (Vec2{20, 20}) || len(p.injectQueue) != 1 {
		t.Errorf("after frame 2: Position = %v, queue = %d", p.Position, len(p.injectQueue))
	}
	m.Update(testDT)
	if p.Position != (Vec2{30, 30}) || len(p.injectQueue) != 0 {
		t.Errorf("after frame 3: Position = %v, queue = %d", p.Position, len(p.injectQueue))
	}
	if p.SelectActive {
		t.Error("release should clear SelectActive")
	}
}

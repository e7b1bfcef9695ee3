package reach

import "math"

// Vec2 is a 2D vector used for positions, offsets, and interaction points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Phase identifies one step of the per-frame pipeline. Phases are strictly
// ordered: nothing in a later phase begins until the earlier phase completes.
type Phase uint8

const (
	PhaseUpdate    Phase = iota // once per simulation step; runs arbitration
	PhaseLate                   // after Update; detach finalization and similar
	PhaseFixed                  // physics step cadence; may run 0..N times per Update
	PhasePreRender              // optional pre-render correction pass
)

// String returns the phase name for logging.
func (p Phase) String() string {
	switch p {
	case PhaseUpdate:
		return "Update"
	case PhaseLate:
		return "Late"
	case PhaseFixed:
		return "Fixed"
	case PhasePreRender:
		return "PreRender"
	}
	return "Unknown"
}

// PhaseMask selects which phases an interactor or interactable wants its
// OnProcess callback invoked in.
type PhaseMask uint8

const (
	MaskUpdate PhaseMask = 1 << iota
	MaskLate
	MaskFixed
	MaskPreRender
)

// mask maps a Phase to its PhaseMask bit.
func (p Phase) mask() PhaseMask {
	return PhaseMask(1) << p
}

// SelectMode controls how many interactors may select an interactable at once.
type SelectMode uint8

const (
	SelectSingle   SelectMode = iota // at most one selector; new selectors displace the old
	SelectMultiple                   // any number of simultaneous selectors
)

// FocusMode controls how many interaction groups may focus an interactable.
type FocusMode uint8

const (
	FocusNone     FocusMode = iota // never focused
	FocusSingle                    // at most one focusing group
	FocusMultiple                  // any number of focusing groups
)

// TargetPriorityMode restricts which valid targets an interactor may select
// in a single frame.
type TargetPriorityMode uint8

const (
	// PriorityNone attempts selection on every eligible valid target in
	// candidate order.
	PriorityNone TargetPriorityMode = iota
	// PriorityHighestOnly selects only the first eligible candidate; the rest
	// are skipped for the remainder of the frame.
	PriorityHighestOnly
)

// --- Spatial probes ---

// Probe is the geometric proxy associating world contact with an interactable.
// Probes are compared by value when used in the manager's association tables,
// so probe types must be comparable ([ProbePolygon] is registered by pointer
// for this reason).
type Probe interface {
	// Contains reports whether the point lies inside the probe.
	Contains(p Vec2) bool
	// ClosestPoint returns the nearest point on the probe volume to p and the
	// squared distance to it. A point inside the probe returns p itself and 0.
	ClosestPoint(p Vec2) (Vec2, float64)
	// Centroid returns the probe's center point.
	Centroid() Vec2
}

// ProbeRect is an axis-aligned rectangular probe in world coordinates.
type ProbeRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether p lies inside the rectangle. Points on the edge
// are considered inside.
func (r ProbeRect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ClosestPoint clamps p to the rectangle bounds.
func (r ProbeRect) ClosestPoint(p Vec2) (Vec2, float64) {
	c := Vec2{
		X: math.Min(math.Max(p.X, r.X), r.X+r.Width),
		Y: math.Min(math.Max(p.Y, r.Y), r.Y+r.Height),
	}
	dx := p.X - c.X
	dy := p.Y - c.Y
	return c, dx*dx + dy*dy
}

// Centroid returns the rectangle center.
func (r ProbeRect) Centroid() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ProbeCircle is a circular probe in world coordinates.
type ProbeCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c ProbeCircle) Contains(p Vec2) bool {
	dx := p.X - c.CenterX
	dy := p.Y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// ClosestPoint projects p onto the circle edge, or returns p when inside.
func (c ProbeCircle) ClosestPoint(p Vec2) (Vec2, float64) {
	dx := p.X - c.CenterX
	dy := p.Y - c.CenterY
	distSq := dx*dx + dy*dy
	if distSq <= c.Radius*c.Radius {
		return p, 0
	}
	dist := math.Sqrt(distSq)
	n := Vec2{
		X: c.CenterX + dx/dist*c.Radius,
		Y: c.CenterY + dy/dist*c.Radius,
	}
	d := dist - c.Radius
	return n, d * d
}

// Centroid returns the circle center.
func (c ProbeCircle) Centroid() Vec2 {
	return Vec2{X: c.CenterX, Y: c.CenterY}
}

// ProbePolygon is a convex polygon probe in world coordinates.
// Points must define a convex polygon in either winding order.
// Register by pointer: the contained slice makes the value non-comparable.
type ProbePolygon struct {
	Points []Vec2
}

// Contains reports whether p lies inside the convex polygon using the
// cross-product sign test.
func (g *ProbePolygon) Contains(p Vec2) bool {
	n := len(g.Points)
	if n < 3 {
		return false
	}

	// Check that the point is on the same side of every edge.
	var positive, negative bool
	for i := 0; i < n; i++ {
		a := g.Points[i]
		b := g.Points[(i+1)%n]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			positive = true
		} else if cross < 0 {
			negative = true
		}
		if positive && negative {
			return false
		}
	}
	return true
}

// ClosestPoint returns the nearest point on the polygon boundary, or p itself
// when inside.
func (g *ProbePolygon) ClosestPoint(p Vec2) (Vec2, float64) {
	if g.Contains(p) {
		return p, 0
	}
	n := len(g.Points)
	if n == 0 {
		return Vec2{}, math.Inf(1)
	}
	best := g.Points[0]
	bestSq := math.Inf(1)
	for i := 0; i < n; i++ {
		a := g.Points[i]
		b := g.Points[(i+1)%n]
		c := closestOnSegment(a, b, p)
		dx := p.X - c.X
		dy := p.Y - c.Y
		if sq := dx*dx + dy*dy; sq < bestSq {
			bestSq = sq
			best = c
		}
	}
	return best, bestSq
}

// Centroid returns the average of the polygon's points.
func (g *ProbePolygon) Centroid() Vec2 {
	n := len(g.Points)
	if n == 0 {
		return Vec2{}
	}
	var c Vec2
	for _, pt := range g.Points {
		c.X += pt.X
		c.Y += pt.Y
	}
	c.X /= float64(n)
	c.Y /= float64(n)
	return c
}

// closestOnSegment projects p onto the segment ab, clamped to the endpoints.
func closestOnSegment(a, b, p Vec2) Vec2 {
	abx := b.X - a.X
	aby := b.Y - a.Y
	lenSq := abx*abx + aby*aby
	if lenSq == 0 {
		return a
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Vec2{X: a.X + abx*t, Y: a.Y + aby*t}
}

// sqDist returns the squared distance between two points.
func sqDist(a, b Vec2) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

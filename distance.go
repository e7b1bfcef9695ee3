package reach

import "math"

// DistancePolicy selects how an interactable resolves distance-to-point
// queries, trading accuracy for cost.
type DistancePolicy uint8

const (
	// DistanceTransformPosition measures to Position. O(1), least accurate.
	DistanceTransformPosition DistancePolicy = iota
	// DistanceInteractionPoints measures to the nearest entry of
	// InteractionPoints, falling back to Position when the list is empty.
	DistanceInteractionPoints
	// DistanceProbeCentroid measures to the nearest probe centroid, falling
	// back to Position when the interactable has no probes.
	DistanceProbeCentroid
	// DistanceProbeVolume measures to the nearest point on any probe volume.
	// Most expensive, most accurate.
	DistanceProbeVolume
)

// Distance returns the nearest point on this interactable to p and the
// squared distance to it, per the configured policy. A non-nil
// DistanceOverride bypasses the policy entirely.
func (t *Interactable) Distance(p Vec2) (nearest Vec2, sqDistance float64) {
	if t.DistanceOverride != nil {
		return t.DistanceOverride(p)
	}
	switch t.DistancePolicy {
	case DistanceInteractionPoints:
		if n, sq, ok := nearestOf(t.InteractionPoints, p); ok {
			return n, sq
		}
	case DistanceProbeCentroid:
		if len(t.Probes) > 0 {
			best := t.Probes[0].Centroid()
			bestSq := sqDist(best, p)
			for _, probe := range t.Probes[1:] {
				c := probe.Centroid()
				if sq := sqDist(c, p); sq < bestSq {
					best, bestSq = c, sq
				}
			}
			return best, bestSq
		}
	case DistanceProbeVolume:
		if len(t.Probes) > 0 {
			best, bestSq := t.Probes[0].ClosestPoint(p)
			for _, probe := range t.Probes[1:] {
				if n, sq := probe.ClosestPoint(p); sq < bestSq {
					best, bestSq = n, sq
				}
			}
			return best, bestSq
		}
	}
	return t.Position, sqDist(t.Position, p)
}

// nearestOf returns the closest point in pts to p. ok is false for an empty
// list.
func nearestOf(pts []Vec2, p Vec2) (nearest Vec2, sqDistance float64, ok bool) {
	if len(pts) == 0 {
		return Vec2{}, 0, false
	}
	nearest = pts[0]
	sqDistance = sqDist(pts[0], p)
	for _, pt := range pts[1:] {
		if sq := sqDist(pt, p); sq < sqDistance {
			nearest, sqDistance = pt, sq
		}
	}
	return nearest, sqDistance, true
}

// ClosestInteractable returns the registered interactable nearest to p per
// each interactable's own distance policy, and the squared distance to it.
// Returns nil when nothing is registered.
func (m *Manager) ClosestInteractable(p Vec2) (*Interactable, float64) {
	var best *Interactable
	bestSq := math.Inf(1)
	for _, t := range m.interactables.items() {
		if !m.interactables.isRegistered(t) {
			continue
		}
		if _, sq := t.Distance(p); sq < bestSq {
			best, bestSq = t, sq
		}
	}
	return best, bestSq
}

// InteractablesAt appends to buf every registered interactable with a probe
// containing p, in registration order, and returns the extended slice.
func (m *Manager) InteractablesAt(p Vec2, buf []*Interactable) []*Interactable {
	for _, t := range m.interactables.items() {
		if !m.interactables.isRegistered(t) {
			continue
		}
		for _, probe := range t.Probes {
			if probe.Contains(p) {
				buf = append(buf, t)
				break
			}
		}
	}
	return buf
}

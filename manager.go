package reach

import (
	"errors"
	"fmt"
	"log"
)

// Registration errors. Ordering violations are rejected synchronously: the
// operation is a no-op and the caller retries in the correct order.
var (
	ErrAlreadyRegistered      = errors.New("already registered")
	ErrNotRegistered          = errors.New("not registered")
	ErrContainingUnregistered = errors.New("containing group is not registered")
	ErrHasDependents          = errors.New("still-registered members declare this group as containing")
	ErrOtherManager           = errors.New("registered with a different manager")
)

// SnapRegion is a named attach region whose probes participate in the
// manager's probe association tables. Grab systems use it to redirect an
// attach point; the core only maintains the lookup.
type SnapRegion struct {
	Name     string
	Position Vec2
	Probes   []Probe
}

// priorityPair records that an interactor considers an interactable its
// highest-priority candidate this frame. A flat per-frame arena rebuilt every
// Update, so priority queries cost no per-frame allocation.
type priorityPair struct {
	interactable *Interactable
	interactor   *Interactor
}

// Manager is the sole authority over interaction state. It owns the buffered
// registries, runs the per-frame phase sequence, and is the only caller of
// enter/exit lifecycle callbacks — interactors and interactables never invoke
// each other directly.
//
// All methods must be called from the single simulation goroutine. Re-entrant
// transitions (an enter callback synchronously triggering another exit)
// complete depth-first before the outer transition's remaining stages run.
type Manager struct {
	// HoverFilters and SelectFilters are manager-global chains evaluated for
	// every pair, ahead of the per-interactable chains.
	HoverFilters  FilterChain
	SelectFilters FilterChain

	interactors   *registry[*Interactor]
	interactables *registry[*Interactable]
	groups        *registry[*InteractionGroup]

	probeTable map[Probe]*Interactable
	snapTable  map[Probe]*SnapRegion

	priorityPairs []priorityPair
	handlers      handlerRegistry
	store         EventStore

	validBuf []*Interactable
	scratch  []*Interactable
}

// NewManager creates an empty interaction manager.
func NewManager() *Manager {
	return &Manager{
		interactors:   newRegistry[*Interactor](),
		interactables: newRegistry[*Interactable](),
		groups:        newRegistry[*InteractionGroup](),
		probeTable:    make(map[Probe]*Interactable),
		snapTable:     make(map[Probe]*SnapRegion),
	}
}

// SetEventStore attaches an EventStore (for example the Donburi bridge in
// reach/ecs). Every completed lifecycle transition is forwarded to it.
func (m *Manager) SetEventStore(store EventStore) {
	m.store = store
}

// --- Registration ---

// RegisterInteractor adds the interactor to the manager. The live set picks
// it up at the next phase flush, but the registered callbacks fire now and
// IsInteractorRegistered reports true immediately. Fails if the interactor
// belongs to another manager or declares an unregistered containing group.
func (m *Manager) RegisterInteractor(i *Interactor) error {
	if i.manager != nil && i.manager != m {
		return fmt.Errorf("register interactor %s: %w", i.logName(), ErrOtherManager)
	}
	if i.group != nil && !m.groups.isRegistered(i.group) {
		log.Printf("reach: cannot register interactor %s: containing group %s is not registered", i.logName(), i.group.logName())
		return fmt.Errorf("register interactor %s: %w", i.logName(), ErrContainingUnregistered)
	}
	if !m.interactors.register(i) {
		return fmt.Errorf("register interactor %s: %w", i.logName(), ErrAlreadyRegistered)
	}
	i.manager = m
	args := RegistrationArgs{Manager: m, Interactor: i}
	if i.OnRegistered != nil {
		i.OnRegistered(args)
	}
	m.fireRegistered(args)
	return nil
}

// UnregisterInteractor removes the interactor, first forcing a cancel exit of
// every hover, select, and focus relationship it holds so nothing keeps a
// live reference to it.
func (m *Manager) UnregisterInteractor(i *Interactor) error {
	if i.manager != m || !m.interactors.isRegistered(i) {
		return fmt.Errorf("unregister interactor %s: %w", i.logName(), ErrNotRegistered)
	}
	m.cancelInteractor(i)
	m.interactors.unregister(i)
	i.manager = nil
	args := RegistrationArgs{Manager: m, Interactor: i}
	if i.OnUnregistered != nil {
		i.OnUnregistered(args)
	}
	m.fireUnregistered(args)
	return nil
}

// RegisterInteractable adds the interactable and claims its probes in the
// probe association table. The first registrant for a probe wins; later
// duplicates are logged and ignored.
func (m *Manager) RegisterInteractable(t *Interactable) error {
	if t.manager != nil && t.manager != m {
		return fmt.Errorf("register interactable %s: %w", t.logName(), ErrOtherManager)
	}
	if !m.interactables.register(t) {
		return fmt.Errorf("register interactable %s: %w", t.logName(), ErrAlreadyRegistered)
	}
	t.manager = m
	for _, probe := range t.Probes {
		if owner, ok := m.probeTable[probe]; ok {
			log.Printf("reach: probe already associated with %s; ignoring duplicate from %s", owner.logName(), t.logName())
			continue
		}
		m.probeTable[probe] = t
	}
	args := RegistrationArgs{Manager: m, Interactable: t}
	if t.OnRegistered != nil {
		t.OnRegistered(args)
	}
	m.fireRegistered(args)
	return nil
}

// UnregisterInteractable removes the interactable, first forcing a cancel
// exit of every hoverer, selector, and focusing group, then releasing its
// probe table entries.
func (m *Manager) UnregisterInteractable(t *Interactable) error {
	if t.manager != m || !m.interactables.isRegistered(t) {
		return fmt.Errorf("unregister interactable %s: %w", t.logName(), ErrNotRegistered)
	}
	m.cancelInteractable(t)
	m.interactables.unregister(t)
	t.manager = nil
	for probe, owner := range m.probeTable {
		if owner == t {
			delete(m.probeTable, probe)
		}
	}
	args := RegistrationArgs{Manager: m, Interactable: t}
	if t.OnUnregistered != nil {
		t.OnUnregistered(args)
	}
	m.fireUnregistered(args)
	return nil
}

// RegisterGroup adds the group. A nested group can only register after its
// containing group: the containment tree registers root-first.
func (m *Manager) RegisterGroup(g *InteractionGroup) error {
	if g.manager != nil && g.manager != m {
		return fmt.Errorf("register group %s: %w", g.logName(), ErrOtherManager)
	}
	if g.parent != nil && !m.groups.isRegistered(g.parent) {
		log.Printf("reach: cannot register group %s: containing group %s is not registered", g.logName(), g.parent.logName())
		return fmt.Errorf("register group %s: %w", g.logName(), ErrContainingUnregistered)
	}
	if !m.groups.register(g) {
		return fmt.Errorf("register group %s: %w", g.logName(), ErrAlreadyRegistered)
	}
	g.manager = m
	args := RegistrationArgs{Manager: m, Group: g}
	if g.OnRegistered != nil {
		g.OnRegistered(args)
	}
	m.fireRegistered(args)
	return nil
}

// UnregisterGroup removes the group. Refused while any registered interactor
// or group still declares it as containing: teardown is bottom-up. A held
// focus is cancel-exited first.
func (m *Manager) UnregisterGroup(g *InteractionGroup) error {
	if g.manager != m || !m.groups.isRegistered(g) {
		return fmt.Errorf("unregister group %s: %w", g.logName(), ErrNotRegistered)
	}
	for _, i := range m.interactors.registered() {
		if i.group == g {
			log.Printf("reach: cannot unregister group %s: interactor %s is still registered", g.logName(), i.logName())
			return fmt.Errorf("unregister group %s: %w", g.logName(), ErrHasDependents)
		}
	}
	for _, sub := range m.groups.registered() {
		if sub.parent == g {
			log.Printf("reach: cannot unregister group %s: group %s is still registered", g.logName(), sub.logName())
			return fmt.Errorf("unregister group %s: %w", g.logName(), ErrHasDependents)
		}
	}
	if g.focusInteractable != nil {
		m.focusExitInternal(g, g.focusInteractor, g.focusInteractable, true)
	}
	m.groups.unregister(g)
	g.manager = nil
	args := RegistrationArgs{Manager: m, Group: g}
	if g.OnUnregistered != nil {
		g.OnUnregistered(args)
	}
	m.fireUnregistered(args)
	return nil
}

// RegisterSnapRegion claims the region's probes in the snap association
// table, first-wins like interactable probes.
func (m *Manager) RegisterSnapRegion(r *SnapRegion) {
	for _, probe := range r.Probes {
		if owner, ok := m.snapTable[probe]; ok {
			log.Printf("reach: snap probe already associated with %s; ignoring duplicate from %s", owner.Name, r.Name)
			continue
		}
		m.snapTable[probe] = r
	}
}

// UnregisterSnapRegion releases the region's entries in the snap table.
func (m *Manager) UnregisterSnapRegion(r *SnapRegion) {
	for probe, owner := range m.snapTable {
		if owner == r {
			delete(m.snapTable, probe)
		}
	}
}

// cancelInteractor force-exits everything the interactor holds.
func (m *Manager) cancelInteractor(i *Interactor) {
	for _, t := range append([]*Interactable(nil), i.selectTargets...) {
		if i.IsSelecting(t) {
			m.selectExitInternal(i, t, true)
		}
	}
	for _, t := range append([]*Interactable(nil), i.hoverTargets...) {
		if i.IsHovering(t) {
			m.hoverExitInternal(i, t, true)
		}
	}
	if g := i.group; g != nil && g.focusInteractor == i && g.focusInteractable != nil {
		m.focusExitInternal(g, i, g.focusInteractable, true)
	}
}

// cancelInteractable force-exits everything held against the interactable.
func (m *Manager) cancelInteractable(t *Interactable) {
	for _, i := range append([]*Interactor(nil), t.selectors...) {
		if t.IsSelectedBy(i) {
			m.selectExitInternal(i, t, true)
		}
	}
	for _, i := range append([]*Interactor(nil), t.hoverers...) {
		if t.IsHoveredBy(i) {
			m.hoverExitInternal(i, t, true)
		}
	}
	for _, g := range append([]*InteractionGroup(nil), t.focusing...) {
		if t.IsFocusedBy(g) {
			m.focusExitInternal(g, g.focusInteractor, t, true)
		}
	}
}

// --- Query surface ---

// IsInteractorRegistered reports whether i is registered, counting pending
// registrations and discounting pending removals.
func (m *Manager) IsInteractorRegistered(i *Interactor) bool {
	return m.interactors.isRegistered(i)
}

// IsInteractableRegistered reports whether t is registered.
func (m *Manager) IsInteractableRegistered(t *Interactable) bool {
	return m.interactables.isRegistered(t)
}

// IsGroupRegistered reports whether g is registered.
func (m *Manager) IsGroupRegistered(g *InteractionGroup) bool {
	return m.groups.isRegistered(g)
}

// Interactors appends the current interactor snapshot to buf.
func (m *Manager) Interactors(buf []*Interactor) []*Interactor {
	return append(buf, m.interactors.items()...)
}

// Interactables appends the current interactable snapshot to buf.
func (m *Manager) Interactables(buf []*Interactable) []*Interactable {
	return append(buf, m.interactables.items()...)
}

// Groups appends the current group snapshot to buf.
func (m *Manager) Groups(buf []*InteractionGroup) []*InteractionGroup {
	return append(buf, m.groups.items()...)
}

// InteractableForProbe resolves the interactable that first claimed the probe.
func (m *Manager) InteractableForProbe(probe Probe) (*Interactable, bool) {
	t, ok := m.probeTable[probe]
	return t, ok
}

// SnapRegionForProbe resolves the snap region that first claimed the probe.
func (m *Manager) SnapRegionForProbe(probe Probe) (*SnapRegion, bool) {
	r, ok := m.snapTable[probe]
	return r, ok
}

// IsHighestPriorityTarget reports whether any priority-mode interactor marked
// t as its top candidate this frame.
func (m *Manager) IsHighestPriorityTarget(t *Interactable) bool {
	for _, p := range m.priorityPairs {
		if p.interactable == t {
			return true
		}
	}
	return false
}

// HighestPriorityInteractors appends to buf the interactors that marked t as
// their top candidate this frame.
func (m *Manager) HighestPriorityInteractors(t *Interactable, buf []*Interactor) []*Interactor {
	for _, p := range m.priorityPairs {
		if p.interactable == t {
			buf = append(buf, p.interactor)
		}
	}
	return buf
}

// InteractionStrength returns the filtered strength for the pair as of the
// last Update phase.
func (m *Manager) InteractionStrength(i *Interactor, t *Interactable) float64 {
	return t.InteractionStrength(i)
}

// ValidTargets appends i's pruned candidate list to buf: the interactor's raw
// candidates minus anything no longer registered (interactables may be
// destroyed between candidate generation and use).
func (m *Manager) ValidTargets(i *Interactor, buf []*Interactable) []*Interactable {
	if i.ValidTargets == nil {
		return buf
	}
	start := len(buf)
	buf = i.ValidTargets(buf)
	kept := buf[:start]
	for _, t := range buf[start:] {
		if t != nil && m.interactables.isRegistered(t) {
			kept = append(kept, t)
		}
	}
	return kept
}

// --- Eligibility ---

// IsHoverPossible reports whether the pair is hover-eligible right now:
// the interactor is hover-active, the manager and interactable filter chains
// pass, and both sides' capability predicates permit it.
func (m *Manager) IsHoverPossible(i *Interactor, t *Interactable) bool {
	return i.HoverActive && m.hoverPairAllowed(i, t)
}

// IsSelectPossible reports whether the pair is select-eligible right now.
func (m *Manager) IsSelectPossible(i *Interactor, t *Interactable) bool {
	return i.SelectActive && m.selectPairAllowed(i, t)
}

// hoverPairAllowed is hover eligibility minus the activity gate. Priority
// discovery uses it directly so "about to select" can surface before the
// user commits.
func (m *Manager) hoverPairAllowed(i *Interactor, t *Interactable) bool {
	return m.HoverFilters.Process(i, t) && i.canHover(t) && t.IsHoverableBy(i)
}

func (m *Manager) selectPairAllowed(i *Interactor, t *Interactable) bool {
	return m.SelectFilters.Process(i, t) && i.canSelect(t) && t.IsSelectableBy(i)
}

// --- Phase sequence ---

// Update runs the Dynamic phase: flush registries, preprocess, group focus
// maintenance, per-interactor arbitration (clear invalid state, then enter
// new valid selections and hovers), strength processing, then per-entity
// processing. Call once per simulation step.
func (m *Manager) Update(dt float64) {
	m.flush()

	for _, i := range m.interactors.items() {
		if i.OnPreprocess != nil && m.interactors.isRegistered(i) {
			i.OnPreprocess(dt)
		}
	}

	// The priority map holds only this frame's claims.
	m.priorityPairs = m.priorityPairs[:0]

	// Ungrouped (root) groups drive their members depth-first.
	for _, g := range m.groups.items() {
		if g.parent == nil && m.groups.isRegistered(g) {
			m.updateGroup(g)
		}
	}
	for _, i := range m.interactors.items() {
		if i.group == nil && m.interactors.isRegistered(i) {
			m.updateInteractor(i, nil)
		}
	}

	m.processStrength()

	for _, i := range m.interactors.items() {
		if m.interactors.isRegistered(i) {
			i.process(PhaseUpdate, dt)
		}
	}
	for _, t := range m.interactables.items() {
		if m.interactables.isRegistered(t) {
			t.process(PhaseUpdate, dt)
		}
	}
}

// LateUpdate runs the Late phase: flush, then process entities tagged for
// late work (detach finalization and similar).
func (m *Manager) LateUpdate(dt float64) {
	m.runProcessPhase(PhaseLate, dt)
}

// FixedUpdate runs the Fixed phase. May run zero or more times per Update,
// at the host's physics cadence.
func (m *Manager) FixedUpdate(dt float64) {
	m.runProcessPhase(PhaseFixed, dt)
}

// PreRender runs the optional pre-render correction phase.
func (m *Manager) PreRender(dt float64) {
	m.runProcessPhase(PhasePreRender, dt)
}

func (m *Manager) runProcessPhase(phase Phase, dt float64) {
	m.flush()
	for _, i := range m.interactors.items() {
		if m.interactors.isRegistered(i) {
			i.process(phase, dt)
		}
	}
	for _, t := range m.interactables.items() {
		if m.interactables.isRegistered(t) {
			t.process(phase, dt)
		}
	}
}

// flush reconciles all registries at a phase boundary. Never called
// mid-iteration; that is the discipline that replaces locking.
func (m *Manager) flush() {
	m.interactors.flush()
	m.interactables.flush()
	m.groups.flush()
}

// updateGroup clears invalid focus, then lets members update their
// interactions in member order.
func (m *Manager) updateGroup(g *InteractionGroup) {
	m.clearInvalidFocus(g)
	for _, member := range g.members {
		switch mm := member.(type) {
		case *Interactor:
			if m.interactors.isRegistered(mm) {
				m.updateInteractor(mm, g)
			}
		case *InteractionGroup:
			if m.groups.isRegistered(mm) {
				m.updateGroup(mm)
			}
		}
	}
}

// clearInvalidFocus drops a focus whose participants vanished or whose
// interactable stopped allowing focus.
func (m *Manager) clearInvalidFocus(g *InteractionGroup) {
	t := g.focusInteractable
	if t == nil {
		return
	}
	if !m.interactables.isRegistered(t) ||
		t.FocusMode == FocusNone ||
		(g.focusInteractor != nil && !m.interactors.isRegistered(g.focusInteractor)) {
		m.focusExitInternal(g, g.focusInteractor, t, false)
	}
}

// updateInteractor runs one interactor's arbitration for the frame: compute
// valid targets, clear invalid selections and hovers, then enter new valid
// selections and hovers.
func (m *Manager) updateInteractor(i *Interactor, g *InteractionGroup) {
	m.validBuf = m.ValidTargets(i, m.validBuf[:0])
	targets := m.validBuf

	m.clearInvalidSelections(i, targets)
	m.clearInvalidHovers(i, targets)
	m.selectValidTargets(i, targets, g)
	m.hoverValidTargets(i, targets)
}

// clearInvalidSelections issues a normal exit for every held selection whose
// eligibility now fails or whose target dropped out of this frame's
// valid-target set (unless the interactor keeps targets valid regardless).
func (m *Manager) clearInvalidSelections(i *Interactor, targets []*Interactable) {
	m.scratch = append(m.scratch[:0], i.selectTargets...)
	for _, t := range m.scratch {
		if !i.IsSelecting(t) {
			continue // a cascade already ended it
		}
		if !m.IsSelectPossible(i, t) ||
			(!i.KeepSelectedTargetValid && !containsInteractable(targets, t)) {
			m.selectExitInternal(i, t, false)
		}
	}
}

// clearInvalidHovers issues a normal exit for every held hover whose
// eligibility now fails or whose target dropped out of this frame's
// valid-target set.
func (m *Manager) clearInvalidHovers(i *Interactor, targets []*Interactable) {
	m.scratch = append(m.scratch[:0], i.hoverTargets...)
	for _, t := range m.scratch {
		if !i.IsHovering(t) {
			continue
		}
		if !m.IsHoverPossible(i, t) || !containsInteractable(targets, t) {
			m.hoverExitInternal(i, t, false)
		}
	}
}

// selectValidTargets enters new selections for the frame per the interactor's
// priority mode.
func (m *Manager) selectValidTargets(i *Interactor, targets []*Interactable, g *InteractionGroup) {
	switch i.PriorityMode {
	case PriorityNone:
		for _, t := range targets {
			if m.IsSelectPossible(i, t) && !i.IsSelecting(t) {
				m.selectEnter(i, t, g)
			}
		}
	case PriorityHighestOnly:
		// Priority discovery is decoupled from the activity gate so UI
		// affordances can react to "about to select" before the user commits.
		for _, t := range targets {
			if !m.selectPairAllowed(i, t) {
				continue
			}
			m.priorityPairs = append(m.priorityPairs, priorityPair{interactable: t, interactor: i})
			if i.SelectActive && !i.IsSelecting(t) {
				m.selectEnter(i, t, g)
			}
			break
		}
	}
}

// hoverValidTargets enters new hovers for every eligible valid target.
func (m *Manager) hoverValidTargets(i *Interactor, targets []*Interactable) {
	for _, t := range targets {
		if m.IsHoverPossible(i, t) && !i.IsHovering(t) {
			m.hoverEnterInternal(i, t)
		}
	}
}

// processStrength recomputes the per-interactor strength signal for every
// registered interactable and its largest aggregate.
func (m *Manager) processStrength() {
	for _, t := range m.interactables.items() {
		if !m.interactables.isRegistered(t) {
			continue
		}
		if t.strengths == nil {
			t.strengths = make(map[*Interactor]float64)
		}
		clear(t.strengths)
		t.largestStrength = 0
		for _, i := range t.hoverers {
			m.recordStrength(i, t)
		}
		for _, i := range t.selectors {
			if !t.IsHoveredBy(i) {
				m.recordStrength(i, t)
			}
		}
	}
}

func (m *Manager) recordStrength(i *Interactor, t *Interactable) {
	v := t.StrengthFilters.Process(i, t, i.strength(t))
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	t.strengths[i] = v
	if v > t.largestStrength {
		t.largestStrength = v
	}
}

// --- Transitions ---
// Every transition runs four stages depth-first: Entering on the interactor
// side, Entering on the interactable side, then Entered on both, in that
// order (exits mirror it). Set membership mutates during the -ing stage;
// aggregate events fire during the -ed stage gated on post-mutation counts.

// SelectEnter makes the interactor select the interactable, resolving an
// existing Single-mode selection by gracefully exiting the current selectors
// first. When the interactor belongs to a group and the interactable allows
// focus, the group focus follows the selection.
func (m *Manager) SelectEnter(i *Interactor, t *Interactable) {
	m.selectEnter(i, t, i.group)
}

func (m *Manager) selectEnter(i *Interactor, t *Interactable, g *InteractionGroup) {
	if !m.resolveExistingSelect(i, t) {
		return
	}
	m.selectEnterInternal(i, t)
	// Focus follows selection at group granularity. Interactors outside any
	// group never focus; that is routine, not an error.
	if g != nil && t.FocusMode != FocusNone && i.IsSelecting(t) {
		m.focusEnter(g, i, t)
	}
}

// SelectExit ends the selection with a normal (non-cancel) exit.
func (m *Manager) SelectExit(i *Interactor, t *Interactable) {
	m.selectExitInternal(i, t, false)
}

// SelectCancel ends the selection with the cancel flag set, as when one side
// is being disabled, destroyed, or unregistered.
func (m *Manager) SelectCancel(i *Interactor, t *Interactable) {
	m.selectExitInternal(i, t, true)
}

// HoverEnter makes the interactor hover the interactable.
func (m *Manager) HoverEnter(i *Interactor, t *Interactable) {
	m.hoverEnterInternal(i, t)
}

// HoverExit ends the hover with a normal (non-cancel) exit.
func (m *Manager) HoverExit(i *Interactor, t *Interactable) {
	m.hoverExitInternal(i, t, false)
}

// HoverCancel ends the hover with the cancel flag set.
func (m *Manager) HoverCancel(i *Interactor, t *Interactable) {
	m.hoverExitInternal(i, t, true)
}

// FocusEnter focuses the interactable for the interactor's containing group.
// A no-op when the interactor is ungrouped or the interactable's focus mode
// forbids it — routine for most pairs, not an error.
func (m *Manager) FocusEnter(i *Interactor, t *Interactable) {
	if i.group == nil {
		return
	}
	m.focusEnter(i.group, i, t)
}

// FocusExit ends the group's current focus with a normal exit, if any.
func (m *Manager) FocusExit(g *InteractionGroup) {
	if g.focusInteractable != nil {
		m.focusExitInternal(g, g.focusInteractor, g.focusInteractable, false)
	}
}

// resolveExistingSelect applies the exclusivity policy before a new entry.
// Reports whether the entry should continue: an attempt by an interactor
// already selecting the interactable does not.
func (m *Manager) resolveExistingSelect(i *Interactor, t *Interactable) bool {
	if t.IsSelectedBy(i) {
		return false
	}
	if t.SelectMode == SelectSingle {
		for _, s := range append([]*Interactor(nil), t.selectors...) {
			if t.IsSelectedBy(s) {
				m.selectExitInternal(s, t, false)
			}
		}
	}
	return true
}

// resolveExistingFocus is the focus analog of resolveExistingSelect at group
// granularity: the group's previous focus exits first, and a Single-mode
// interactable sheds every other focusing group.
func (m *Manager) resolveExistingFocus(g *InteractionGroup, i *Interactor, t *Interactable) bool {
	if t.IsFocusedBy(g) {
		g.focusInteractor = i
		return false
	}
	if g.focusInteractable != nil {
		m.focusExitInternal(g, g.focusInteractor, g.focusInteractable, false)
	}
	if t.FocusMode == FocusSingle {
		for _, fg := range append([]*InteractionGroup(nil), t.focusing...) {
			if t.IsFocusedBy(fg) {
				m.focusExitInternal(fg, fg.focusInteractor, t, false)
			}
		}
	}
	return true
}

func (m *Manager) selectEnterInternal(i *Interactor, t *Interactable) {
	if i.IsSelecting(t) || t.IsSelectedBy(i) {
		m.consistencyFault("select enter: %s already selecting %s", i.logName(), t.logName())
		return
	}
	args := SelectEventArgs{Manager: m, Interactor: i, Interactable: t}
	i.selectEntering(args)
	t.selectEntering(args)
	i.selectEntered(args)
	t.selectEntered(args)
	m.fireSelectEntered(args)
}

func (m *Manager) selectExitInternal(i *Interactor, t *Interactable, canceled bool) {
	if !i.IsSelecting(t) && !t.IsSelectedBy(i) {
		m.consistencyFault("select exit without matching enter: %s / %s", i.logName(), t.logName())
		return
	}
	args := SelectEventArgs{Manager: m, Interactor: i, Interactable: t, Canceled: canceled}
	i.selectExiting(args)
	t.selectExiting(args)
	i.selectExited(args)
	t.selectExited(args)
	m.fireSelectExited(args)
}

func (m *Manager) hoverEnterInternal(i *Interactor, t *Interactable) {
	if i.IsHovering(t) || t.IsHoveredBy(i) {
		m.consistencyFault("hover enter: %s already hovering %s", i.logName(), t.logName())
		return
	}
	args := HoverEventArgs{Manager: m, Interactor: i, Interactable: t}
	i.hoverEntering(args)
	t.hoverEntering(args)
	i.hoverEntered(args)
	t.hoverEntered(args)
	m.fireHoverEntered(args)
}

func (m *Manager) hoverExitInternal(i *Interactor, t *Interactable, canceled bool) {
	if !i.IsHovering(t) && !t.IsHoveredBy(i) {
		m.consistencyFault("hover exit without matching enter: %s / %s", i.logName(), t.logName())
		return
	}
	args := HoverEventArgs{Manager: m, Interactor: i, Interactable: t, Canceled: canceled}
	i.hoverExiting(args)
	t.hoverExiting(args)
	i.hoverExited(args)
	t.hoverExited(args)
	m.fireHoverExited(args)
}

func (m *Manager) focusEnter(g *InteractionGroup, i *Interactor, t *Interactable) {
	if t.FocusMode == FocusNone {
		return
	}
	if !m.resolveExistingFocus(g, i, t) {
		return
	}
	m.focusEnterInternal(g, i, t)
}

func (m *Manager) focusEnterInternal(g *InteractionGroup, i *Interactor, t *Interactable) {
	if t.IsFocusedBy(g) {
		m.consistencyFault("focus enter: %s already focusing %s", g.logName(), t.logName())
		return
	}
	args := FocusEventArgs{Manager: m, Group: g, Interactor: i, Interactable: t}
	g.focusEntering(args)
	t.focusEntering(args)
	g.focusEntered(args)
	t.focusEntered(args)
	m.fireFocusEntered(args)
}

func (m *Manager) focusExitInternal(g *InteractionGroup, i *Interactor, t *Interactable, canceled bool) {
	if !t.IsFocusedBy(g) {
		m.consistencyFault("focus exit without matching enter: %s / %s", g.logName(), t.logName())
		return
	}
	args := FocusEventArgs{Manager: m, Group: g, Interactor: i, Interactable: t, Canceled: canceled}
	g.focusExiting(args)
	t.focusExiting(args)
	g.focusExited(args)
	t.focusExited(args)
	m.fireFocusExited(args)
}

// consistencyFault reports a caller bug (double enter, unmatched exit). A
// recoverable assertion: it logs and continues rather than corrupting later
// frames.
func (m *Manager) consistencyFault(format string, args ...any) {
	log.Printf("reach: consistency fault: "+format, args...)
}

func containsInteractable(s []*Interactable, t *Interactable) bool {
	for _, x := range s {
		if x == t {
			return true
		}
	}
	return false
}

package reach

// Interactor is an agent capable of initiating hover, select, and focus
// (hands, controllers, pointers, gaze). Configure it through its exported
// fields; the manager queries the capability fields fresh every frame and is
// the only party that mutates the target sets.
type Interactor struct {
	// Name identifies the interactor in logs.
	Name string

	// Position is the interactor's reach origin, used by distance queries and
	// by built-in target providers.
	Position Vec2

	// HoverActive and SelectActive gate hover and select eligibility for this
	// frame. A pointer interactor, for example, keeps HoverActive true and
	// mirrors SelectActive to its button state.
	HoverActive  bool
	SelectActive bool

	// CanHover and CanSelect, when set, further restrict which interactables
	// this interactor may reach. Nil permits everything.
	CanHover  func(interactable *Interactable) bool
	CanSelect func(interactable *Interactable) bool

	// ValidTargets produces this frame's raw candidate list in priority
	// order, appending to buf. Nil means no candidates. Interactables no
	// longer registered are pruned by the manager before use.
	ValidTargets func(buf []*Interactable) []*Interactable

	// PriorityMode restricts which candidates a frame may select.
	PriorityMode TargetPriorityMode

	// KeepSelectedTargetValid keeps an existing selection alive even when the
	// target drops out of the frame's valid-target list. Eligibility failures
	// still end it.
	KeepSelectedTargetValid bool

	// Strength, when set, reports how much interaction is occurring with the
	// given interactable in [0, 1] (a poke or squeeze affordance). Nil means
	// 1 while selecting and 0 while merely hovering.
	Strength func(interactable *Interactable) float64

	// Phases selects which phases OnProcess runs in. NewInteractor sets
	// MaskUpdate.
	Phases PhaseMask

	// OnPreprocess, when set, runs at the start of every Update phase before
	// arbitration — the place to sample input devices and refresh Position,
	// SelectActive, and friends.
	OnPreprocess func(dt float64)

	// OnProcess, when set, is called during each phase selected in Phases,
	// after arbitration for that phase completes.
	OnProcess func(phase Phase, dt float64)

	// Lifecycle callbacks, all optional and invoked only by the manager.
	OnRegistered     func(RegistrationArgs)
	OnUnregistered   func(RegistrationArgs)
	OnHoverEntering  func(HoverEventArgs)
	OnHoverEntered   func(HoverEventArgs)
	OnHoverExiting   func(HoverEventArgs)
	OnHoverExited    func(HoverEventArgs)
	OnSelectEntering func(SelectEventArgs)
	OnSelectEntered  func(SelectEventArgs)
	OnSelectExiting  func(SelectEventArgs)
	OnSelectExited   func(SelectEventArgs)

	// Manager-owned state.
	manager       *Manager
	group         *InteractionGroup
	hoverTargets  []*Interactable
	selectTargets []*Interactable
}

// NewInteractor creates an interactor with hover enabled and processing in
// the Update phase. Selection stays inactive until SelectActive is set.
func NewInteractor(name string) *Interactor {
	return &Interactor{
		Name:        name,
		HoverActive: true,
		Phases:      MaskUpdate,
	}
}

// Manager returns the manager this interactor is registered with, or nil.
func (i *Interactor) Manager() *Manager {
	return i.manager
}

// ContainingGroup returns the interaction group this interactor belongs to,
// or nil. Membership is managed through InteractionGroup.AddMember.
func (i *Interactor) ContainingGroup() *InteractionGroup {
	return i.group
}

// HoverTargets returns the interactables this interactor is hovering.
// The slice is owned by the manager; do not mutate it.
func (i *Interactor) HoverTargets() []*Interactable {
	return i.hoverTargets
}

// SelectTargets returns the interactables this interactor is selecting.
// The slice is owned by the manager; do not mutate it.
func (i *Interactor) SelectTargets() []*Interactable {
	return i.selectTargets
}

// IsHovering reports whether this interactor is hovering the interactable.
func (i *Interactor) IsHovering(interactable *Interactable) bool {
	for _, t := range i.hoverTargets {
		if t == interactable {
			return true
		}
	}
	return false
}

// IsSelecting reports whether this interactor is selecting the interactable.
func (i *Interactor) IsSelecting(interactable *Interactable) bool {
	for _, t := range i.selectTargets {
		if t == interactable {
			return true
		}
	}
	return false
}

// canHover applies the optional CanHover predicate.
func (i *Interactor) canHover(t *Interactable) bool {
	return i.CanHover == nil || i.CanHover(t)
}

// canSelect applies the optional CanSelect predicate.
func (i *Interactor) canSelect(t *Interactable) bool {
	return i.CanSelect == nil || i.CanSelect(t)
}

// strength reports the raw strength signal for the pair, clamped to [0, 1].
func (i *Interactor) strength(t *Interactable) float64 {
	if i.Strength != nil {
		v := i.Strength(t)
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	if i.IsSelecting(t) {
		return 1
	}
	return 0
}

// process invokes OnProcess when this interactor opted into the phase.
func (i *Interactor) process(phase Phase, dt float64) {
	if i.OnProcess != nil && i.Phases&phase.mask() != 0 {
		i.OnProcess(phase, dt)
	}
}

func (i *Interactor) logName() string {
	if i.Name != "" {
		return i.Name
	}
	return "interactor"
}

// --- Manager-driven membership mutation ---

func (i *Interactor) hoverEntering(args HoverEventArgs) {
	i.hoverTargets = append(i.hoverTargets, args.Interactable)
	if i.OnHoverEntering != nil {
		i.OnHoverEntering(args)
	}
}

func (i *Interactor) hoverEntered(args HoverEventArgs) {
	if i.OnHoverEntered != nil {
		i.OnHoverEntered(args)
	}
}

func (i *Interactor) hoverExiting(args HoverEventArgs) {
	i.hoverTargets = removeInteractable(i.hoverTargets, args.Interactable)
	if i.OnHoverExiting != nil {
		i.OnHoverExiting(args)
	}
}

func (i *Interactor) hoverExited(args HoverEventArgs) {
	if i.OnHoverExited != nil {
		i.OnHoverExited(args)
	}
}

func (i *Interactor) selectEntering(args SelectEventArgs) {
	i.selectTargets = append(i.selectTargets, args.Interactable)
	if i.OnSelectEntering != nil {
		i.OnSelectEntering(args)
	}
}

func (i *Interactor) selectEntered(args SelectEventArgs) {
	if i.OnSelectEntered != nil {
		i.OnSelectEntered(args)
	}
}

func (i *Interactor) selectExiting(args SelectEventArgs) {
	i.selectTargets = removeInteractable(i.selectTargets, args.Interactable)
	if i.OnSelectExiting != nil {
		i.OnSelectExiting(args)
	}
}

func (i *Interactor) selectExited(args SelectEventArgs) {
	if i.OnSelectExited != nil {
		i.OnSelectExited(args)
	}
}

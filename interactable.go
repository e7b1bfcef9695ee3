package reach

// CapabilityModule is an optional predicate slot attached to an interactable.
// Every attached module must independently permit an interaction for the
// interactable to allow it.
type CapabilityModule interface {
	// AllowsHover reports whether the module permits the interactor to hover.
	AllowsHover(interactor *Interactor) bool
	// AllowsSelect reports whether the module permits the interactor to select.
	AllowsSelect(interactor *Interactor) bool
}

// Interactable is an object capable of being hovered, selected, and focused.
// Configure it through its exported fields, register it with a Manager, and
// read back the interaction sets the manager maintains. All interaction-state
// mutation goes through the manager; interactables never talk to interactors
// directly.
type Interactable struct {
	// Name identifies the interactable in logs.
	Name string

	// Position is the interactable's transform position, used by the
	// DistanceTransformPosition policy and as the fallback for empty probe
	// and interaction-point lists.
	Position Vec2

	// Probes are the spatial proxies registered in the manager's
	// probe-to-interactable table. First registrant for a probe wins.
	Probes []Probe

	// InteractionPoints are named attach locations used by the
	// DistanceInteractionPoints policy.
	InteractionPoints []Vec2

	// SelectMode controls selector exclusivity. Zero value is SelectSingle.
	SelectMode SelectMode

	// FocusMode controls group-focus exclusivity. Zero value is FocusNone.
	FocusMode FocusMode

	// DistancePolicy selects how Distance resolves. Zero value is
	// DistanceTransformPosition.
	DistancePolicy DistancePolicy

	// DistanceOverride, when set, bypasses DistancePolicy entirely.
	DistanceOverride func(p Vec2) (nearest Vec2, sqDistance float64)

	// HoverFilters, SelectFilters, and StrengthFilters are this
	// interactable's filter chains. The boolean chains participate in
	// eligibility; the strength chain shapes the per-interactor strength
	// signal.
	HoverFilters    FilterChain
	SelectFilters   FilterChain
	StrengthFilters StrengthChain

	// Modules are optional capability slots; all must permit an interaction.
	Modules []CapabilityModule

	// Phases selects which phases OnProcess runs in. NewInteractable sets
	// MaskUpdate.
	Phases PhaseMask

	// OnProcess, when set, is called by the manager during each phase
	// selected in Phases, after arbitration for that phase completes.
	OnProcess func(phase Phase, dt float64)

	// Lifecycle callbacks, all optional and invoked only by the manager.
	// Entering/Exiting fire after set membership has been updated on the
	// interactor side but during the transition; Entered/Exited fire once the
	// transition is complete on both sides.
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
	OnFocusEntering  func(FocusEventArgs)
	OnFocusEntered   func(FocusEventArgs)
	OnFocusExiting   func(FocusEventArgs)
	OnFocusExited    func(FocusEventArgs)

	// Aggregate callbacks, gated on the post-mutation count: FirstHoverEntered
	// fires when the hoverer count reaches 1, LastHoverExited when it returns
	// to 0, and likewise for select and focus.
	FirstHoverEntered  func(HoverEventArgs)
	LastHoverExited    func(HoverEventArgs)
	FirstSelectEntered func(SelectEventArgs)
	LastSelectExited   func(SelectEventArgs)
	FirstFocusEntered  func(FocusEventArgs)
	LastFocusExited    func(FocusEventArgs)

	// Manager-owned state.
	manager         *Manager
	hoverers        []*Interactor
	selectors       []*Interactor // selection order; index 0 is the first selector
	focusing        []*InteractionGroup
	strengths       map[*Interactor]float64
	largestStrength float64
}

// NewInteractable creates an interactable with the given probes. The zero
// modes apply: SelectSingle, FocusNone, DistanceTransformPosition, processing
// in the Update phase.
func NewInteractable(name string, probes ...Probe) *Interactable {
	return &Interactable{
		Name:   name,
		Probes: probes,
		Phases: MaskUpdate,
	}
}

// Manager returns the manager this interactable is registered with, or nil.
func (t *Interactable) Manager() *Manager {
	return t.manager
}

// Hoverers returns the interactors currently hovering this interactable.
// The slice is owned by the manager; do not mutate it.
func (t *Interactable) Hoverers() []*Interactor {
	return t.hoverers
}

// Selectors returns the interactors currently selecting this interactable in
// selection order. The slice is owned by the manager; do not mutate it.
func (t *Interactable) Selectors() []*Interactor {
	return t.selectors
}

// FirstSelector returns the earliest interactor still selecting this
// interactable, or nil when unselected.
func (t *Interactable) FirstSelector() *Interactor {
	if len(t.selectors) == 0 {
		return nil
	}
	return t.selectors[0]
}

// FocusingGroups returns the groups currently focusing this interactable.
// The slice is owned by the manager; do not mutate it.
func (t *Interactable) FocusingGroups() []*InteractionGroup {
	return t.focusing
}

// IsHovered reports whether any interactor is hovering this interactable.
func (t *Interactable) IsHovered() bool {
	return len(t.hoverers) > 0
}

// IsSelected reports whether any interactor is selecting this interactable.
func (t *Interactable) IsSelected() bool {
	return len(t.selectors) > 0
}

// IsFocused reports whether any group is focusing this interactable.
func (t *Interactable) IsFocused() bool {
	return len(t.focusing) > 0
}

// IsHoveredBy reports whether the given interactor is hovering this
// interactable.
func (t *Interactable) IsHoveredBy(interactor *Interactor) bool {
	for _, h := range t.hoverers {
		if h == interactor {
			return true
		}
	}
	return false
}

// IsSelectedBy reports whether the given interactor is selecting this
// interactable.
func (t *Interactable) IsSelectedBy(interactor *Interactor) bool {
	for _, s := range t.selectors {
		if s == interactor {
			return true
		}
	}
	return false
}

// IsFocusedBy reports whether the given group is focusing this interactable.
func (t *Interactable) IsFocusedBy(group *InteractionGroup) bool {
	for _, g := range t.focusing {
		if g == group {
			return true
		}
	}
	return false
}

// IsHoverableBy reports whether this interactable permits the interactor to
// hover it: the hover filter chain must pass and every capability module must
// independently allow it.
func (t *Interactable) IsHoverableBy(interactor *Interactor) bool {
	if !t.HoverFilters.Process(interactor, t) {
		return false
	}
	for _, mod := range t.Modules {
		if !mod.AllowsHover(interactor) {
			return false
		}
	}
	return true
}

// IsSelectableBy reports whether this interactable permits the interactor to
// select it: the select filter chain must pass and every capability module
// must independently allow it.
func (t *Interactable) IsSelectableBy(interactor *Interactor) bool {
	if !t.SelectFilters.Process(interactor, t) {
		return false
	}
	for _, mod := range t.Modules {
		if !mod.AllowsSelect(interactor) {
			return false
		}
	}
	return true
}

// InteractionStrength returns the filtered strength signal for the given
// interactor as of the last Update phase, in [0, 1]. Zero for interactors not
// currently interacting.
func (t *Interactable) InteractionStrength(interactor *Interactor) float64 {
	return t.strengths[interactor]
}

// LargestInteractionStrength returns the highest strength signal across all
// current hoverers and selectors as of the last Update phase.
func (t *Interactable) LargestInteractionStrength() float64 {
	return t.largestStrength
}

// process invokes OnProcess when this interactable opted into the phase.
func (t *Interactable) process(phase Phase, dt float64) {
	if t.OnProcess != nil && t.Phases&phase.mask() != 0 {
		t.OnProcess(phase, dt)
	}
}

// logName returns a printable identity for warnings.
func (t *Interactable) logName() string {
	if t.Name != "" {
		return t.Name
	}
	return "interactable"
}

// --- Manager-driven membership mutation ---
// Mutation happens in the Entering/Exiting stage; the Entered/Exited stage is
// where aggregate events fire, gated on the post-mutation count.

func (t *Interactable) hoverEntering(args HoverEventArgs) {
	t.hoverers = append(t.hoverers, args.Interactor)
	if t.OnHoverEntering != nil {
		t.OnHoverEntering(args)
	}
}

func (t *Interactable) hoverEntered(args HoverEventArgs) {
	if t.OnHoverEntered != nil {
		t.OnHoverEntered(args)
	}
	if len(t.hoverers) == 1 && t.FirstHoverEntered != nil {
		t.FirstHoverEntered(args)
	}
}

func (t *Interactable) hoverExiting(args HoverEventArgs) {
	t.hoverers = removeInteractor(t.hoverers, args.Interactor)
	if t.OnHoverExiting != nil {
		t.OnHoverExiting(args)
	}
}

func (t *Interactable) hoverExited(args HoverEventArgs) {
	if t.OnHoverExited != nil {
		t.OnHoverExited(args)
	}
	if len(t.hoverers) == 0 && t.LastHoverExited != nil {
		t.LastHoverExited(args)
	}
}

func (t *Interactable) selectEntering(args SelectEventArgs) {
	t.selectors = append(t.selectors, args.Interactor)
	if t.OnSelectEntering != nil {
		t.OnSelectEntering(args)
	}
}

func (t *Interactable) selectEntered(args SelectEventArgs) {
	if t.OnSelectEntered != nil {
		t.OnSelectEntered(args)
	}
	if len(t.selectors) == 1 && t.FirstSelectEntered != nil {
		t.FirstSelectEntered(args)
	}
}

func (t *Interactable) selectExiting(args SelectEventArgs) {
	t.selectors = removeInteractor(t.selectors, args.Interactor)
	if t.OnSelectExiting != nil {
		t.OnSelectExiting(args)
	}
}

func (t *Interactable) selectExited(args SelectEventArgs) {
	if t.OnSelectExited != nil {
		t.OnSelectExited(args)
	}
	if len(t.selectors) == 0 && t.LastSelectExited != nil {
		t.LastSelectExited(args)
	}
}

func (t *Interactable) focusEntering(args FocusEventArgs) {
	t.focusing = append(t.focusing, args.Group)
	if t.OnFocusEntering != nil {
		t.OnFocusEntering(args)
	}
}

func (t *Interactable) focusEntered(args FocusEventArgs) {
	if t.OnFocusEntered != nil {
		t.OnFocusEntered(args)
	}
	if len(t.focusing) == 1 && t.FirstFocusEntered != nil {
		t.FirstFocusEntered(args)
	}
}

func (t *Interactable) focusExiting(args FocusEventArgs) {
	t.focusing = removeGroup(t.focusing, args.Group)
	if t.OnFocusExiting != nil {
		t.OnFocusExiting(args)
	}
}

func (t *Interactable) focusExited(args FocusEventArgs) {
	if t.OnFocusExited != nil {
		t.OnFocusExited(args)
	}
	if len(t.focusing) == 0 && t.LastFocusExited != nil {
		t.LastFocusExited(args)
	}
}

func removeInteractor(s []*Interactor, item *Interactor) []*Interactor {
	for i := range s {
		if s[i] == item {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removeInteractable(s []*Interactable, item *Interactable) []*Interactable {
	for i := range s {
		if s[i] == item {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

func removeGroup(s []*InteractionGroup, item *InteractionGroup) []*InteractionGroup {
	for i := range s {
		if s[i] == item {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			return s[:len(s)-1]
		}
	}
	return s
}

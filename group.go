package reach

import (
	"errors"
	"fmt"
)

// Membership errors returned by InteractionGroup.AddMember.
var (
	ErrAlreadyInGroup = errors.New("member already belongs to a group")
	ErrGroupCycle     = errors.New("membership would create a containment cycle")
)

// GroupMember is either an *Interactor or a nested *InteractionGroup.
type GroupMember interface {
	containingGroup() *InteractionGroup
	setContainingGroup(g *InteractionGroup)
	memberName() string
}

func (i *Interactor) containingGroup() *InteractionGroup { return i.group }

func (i *Interactor) setContainingGroup(g *InteractionGroup) { i.group = g }

func (i *Interactor) memberName() string { return i.logName() }

func (g *InteractionGroup) containingGroup() *InteractionGroup { return g.parent }

func (g *InteractionGroup) setContainingGroup(p *InteractionGroup) { g.parent = p }

func (g *InteractionGroup) memberName() string { return g.logName() }

// InteractionGroup aggregates interactors (and nested groups) and enforces
// that at most one interactable is focused per group. Groups form a
// containment tree that must be registered root-first and unregistered
// bottom-up.
type InteractionGroup struct {
	// Name identifies the group in logs.
	Name string

	// Lifecycle callbacks, all optional and invoked only by the manager.
	OnRegistered    func(RegistrationArgs)
	OnUnregistered  func(RegistrationArgs)
	OnFocusEntering func(FocusEventArgs)
	OnFocusEntered  func(FocusEventArgs)
	OnFocusExiting  func(FocusEventArgs)
	OnFocusExited   func(FocusEventArgs)

	// Manager-owned state.
	manager           *Manager
	parent            *InteractionGroup
	members           []GroupMember
	focusInteractable *Interactable
	focusInteractor   *Interactor
}

// NewInteractionGroup creates an empty group.
func NewInteractionGroup(name string) *InteractionGroup {
	return &InteractionGroup{Name: name}
}

// Manager returns the manager this group is registered with, or nil.
func (g *InteractionGroup) Manager() *Manager {
	return g.manager
}

// ContainingGroup returns the parent group, or nil for a root group.
func (g *InteractionGroup) ContainingGroup() *InteractionGroup {
	return g.parent
}

// Members returns the group's members in processing order.
// The slice is owned by the group; do not mutate it.
func (g *InteractionGroup) Members() []GroupMember {
	return g.members
}

// FocusedInteractable returns the interactable this group currently focuses,
// or nil.
func (g *InteractionGroup) FocusedInteractable() *Interactable {
	return g.focusInteractable
}

// FocusInteractor returns the member interactor whose selection established
// the current focus, or nil.
func (g *InteractionGroup) FocusInteractor() *Interactor {
	return g.focusInteractor
}

// AddMember appends m to the end of the member list. Fails if m already
// belongs to a group or if the membership would create a cycle.
func (g *InteractionGroup) AddMember(m GroupMember) error {
	if m.containingGroup() != nil {
		return fmt.Errorf("add %s to %s: %w", m.memberName(), g.logName(), ErrAlreadyInGroup)
	}
	if sub, ok := m.(*InteractionGroup); ok {
		for p := g; p != nil; p = p.parent {
			if p == sub {
				return fmt.Errorf("add %s to %s: %w", m.memberName(), g.logName(), ErrGroupCycle)
			}
		}
	}
	m.setContainingGroup(g)
	g.members = append(g.members, m)
	return nil
}

// RemoveMember detaches m from the group. Returns false if m is not a member.
func (g *InteractionGroup) RemoveMember(m GroupMember) bool {
	for i := range g.members {
		if g.members[i] == m {
			copy(g.members[i:], g.members[i+1:])
			g.members[len(g.members)-1] = nil
			g.members = g.members[:len(g.members)-1]
			m.setContainingGroup(nil)
			return true
		}
	}
	return false
}

func (g *InteractionGroup) logName() string {
	if g.Name != "" {
		return g.Name
	}
	return "group"
}

// --- Manager-driven focus mutation ---

func (g *InteractionGroup) focusEntering(args FocusEventArgs) {
	g.focusInteractable = args.Interactable
	g.focusInteractor = args.Interactor
	if g.OnFocusEntering != nil {
		g.OnFocusEntering(args)
	}
}

func (g *InteractionGroup) focusEntered(args FocusEventArgs) {
	if g.OnFocusEntered != nil {
		g.OnFocusEntered(args)
	}
}

func (g *InteractionGroup) focusExiting(args FocusEventArgs) {
	g.focusInteractable = nil
	g.focusInteractor = nil
	if g.OnFocusExiting != nil {
		g.OnFocusExiting(args)
	}
}

func (g *InteractionGroup) focusExited(args FocusEventArgs) {
	if g.OnFocusExited != nil {
		g.OnFocusExited(args)
	}
}

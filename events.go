package reach

// EventKind identifies a lifecycle transition for the flat Event record.
type EventKind uint8

const (
	EventRegistered EventKind = iota
	EventUnregistered
	EventHoverEntered
	EventHoverExited
	EventSelectEntered
	EventSelectExited
	EventFocusEntered
	EventFocusExited
)

// Event is the flat record emitted to an EventStore for every completed
// lifecycle transition. Fields not applicable to the kind are zero: a
// registration event for a group carries only Group, a hover event carries
// Interactor and Interactable, and so on.
type Event struct {
	Kind         EventKind
	Interactor   *Interactor
	Interactable *Interactable
	Group        *InteractionGroup
	Canceled     bool
}

// EventStore is the interface for optional ECS integration.
// When set on a Manager, lifecycle events are forwarded to the ECS.
type EventStore interface {
	EmitEvent(event Event)
}

// --- Event args ---

// RegistrationArgs accompanies registered/unregistered callbacks. Exactly one
// of Interactor, Interactable, or Group is non-nil.
type RegistrationArgs struct {
	Manager      *Manager
	Interactor   *Interactor
	Interactable *Interactable
	Group        *InteractionGroup
}

// HoverEventArgs accompanies hover enter/exit callbacks. Treat as immutable
// during the callback.
type HoverEventArgs struct {
	Manager      *Manager
	Interactor   *Interactor
	Interactable *Interactable
	// Canceled is true only for exits forced by disable/destroy/unregister,
	// letting listeners distinguish "lost because conditions changed" from
	// "lost because the other side vanished".
	Canceled bool
}

// SelectEventArgs accompanies select enter/exit callbacks. Treat as immutable
// during the callback.
type SelectEventArgs struct {
	Manager      *Manager
	Interactor   *Interactor
	Interactable *Interactable
	Canceled     bool
}

// FocusEventArgs accompanies focus enter/exit callbacks. Group is the owning
// interaction group; Interactor is the member whose selection established
// focus. Treat as immutable during the callback.
type FocusEventArgs struct {
	Manager      *Manager
	Group        *InteractionGroup
	Interactor   *Interactor
	Interactable *Interactable
	Canceled     bool
}

// --- Manager-level handler registry ---

type registrationHandler struct {
	id uint32
	fn func(RegistrationArgs)
}

type hoverHandler struct {
	id uint32
	fn func(HoverEventArgs)
}

type selectHandler struct {
	id uint32
	fn func(SelectEventArgs)
}

type focusHandler struct {
	id uint32
	fn func(FocusEventArgs)
}

type handlerRegistry struct {
	registered    []registrationHandler
	unregistered  []registrationHandler
	hoverEntered  []hoverHandler
	hoverExited   []hoverHandler
	selectEntered []selectHandler
	selectExited  []selectHandler
	focusEntered  []focusHandler
	focusExited   []focusHandler
	nextID        uint32
}

// CallbackHandle allows removing a registered manager-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventKind
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventRegistered:
		h.reg.registered = removeRegistrationHandler(h.reg.registered, h.id)
	case EventUnregistered:
		h.reg.unregistered = removeRegistrationHandler(h.reg.unregistered, h.id)
	case EventHoverEntered:
		h.reg.hoverEntered = removeHoverHandler(h.reg.hoverEntered, h.id)
	case EventHoverExited:
		h.reg.hoverExited = removeHoverHandler(h.reg.hoverExited, h.id)
	case EventSelectEntered:
		h.reg.selectEntered = removeSelectHandler(h.reg.selectEntered, h.id)
	case EventSelectExited:
		h.reg.selectExited = removeSelectHandler(h.reg.selectExited, h.id)
	case EventFocusEntered:
		h.reg.focusEntered = removeFocusHandler(h.reg.focusEntered, h.id)
	case EventFocusExited:
		h.reg.focusExited = removeFocusHandler(h.reg.focusExited, h.id)
	}
}

func removeRegistrationHandler(s []registrationHandler, id uint32) []registrationHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = registrationHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeHoverHandler(s []hoverHandler, id uint32) []hoverHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = hoverHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeSelectHandler(s []selectHandler, id uint32) []selectHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func removeFocusHandler(s []focusHandler, id uint32) []focusHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = focusHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Manager-level event registration ---

// OnRegistered registers a manager-level callback fired after any interactor,
// interactable, or group registers successfully.
func (m *Manager) OnRegistered(fn func(RegistrationArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.registered = append(m.handlers.registered, registrationHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventRegistered}
}

// OnUnregistered registers a manager-level callback fired after any
// interactor, interactable, or group unregisters.
func (m *Manager) OnUnregistered(fn func(RegistrationArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.unregistered = append(m.handlers.unregistered, registrationHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventUnregistered}
}

// OnHoverEntered registers a manager-level callback for completed hover entries.
func (m *Manager) OnHoverEntered(fn func(HoverEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.hoverEntered = append(m.handlers.hoverEntered, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventHoverEntered}
}

// OnHoverExited registers a manager-level callback for completed hover exits.
func (m *Manager) OnHoverExited(fn func(HoverEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.hoverExited = append(m.handlers.hoverExited, hoverHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventHoverExited}
}

// OnSelectEntered registers a manager-level callback for completed select entries.
func (m *Manager) OnSelectEntered(fn func(SelectEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.selectEntered = append(m.handlers.selectEntered, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventSelectEntered}
}

// OnSelectExited registers a manager-level callback for completed select exits.
func (m *Manager) OnSelectExited(fn func(SelectEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.selectExited = append(m.handlers.selectExited, selectHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventSelectExited}
}

// OnFocusEntered registers a manager-level callback for completed focus entries.
func (m *Manager) OnFocusEntered(fn func(FocusEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.focusEntered = append(m.handlers.focusEntered, focusHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventFocusEntered}
}

// OnFocusExited registers a manager-level callback for completed focus exits.
func (m *Manager) OnFocusExited(fn func(FocusEventArgs)) CallbackHandle {
	m.handlers.nextID++
	id := m.handlers.nextID
	m.handlers.focusExited = append(m.handlers.focusExited, focusHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &m.handlers, event: EventFocusExited}
}

// --- Dispatch helpers (manager handlers, then ECS bridge) ---

func (m *Manager) fireRegistered(args RegistrationArgs) {
	for _, h := range m.handlers.registered {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventRegistered,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Group:        args.Group,
	})
}

func (m *Manager) fireUnregistered(args RegistrationArgs) {
	for _, h := range m.handlers.unregistered {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventUnregistered,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Group:        args.Group,
	})
}

func (m *Manager) fireHoverEntered(args HoverEventArgs) {
	for _, h := range m.handlers.hoverEntered {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventHoverEntered,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
	})
}

func (m *Manager) fireHoverExited(args HoverEventArgs) {
	for _, h := range m.handlers.hoverExited {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventHoverExited,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Canceled:     args.Canceled,
	})
}

func (m *Manager) fireSelectEntered(args SelectEventArgs) {
	for _, h := range m.handlers.selectEntered {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventSelectEntered,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
	})
}

func (m *Manager) fireSelectExited(args SelectEventArgs) {
	for _, h := range m.handlers.selectExited {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventSelectExited,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Canceled:     args.Canceled,
	})
}

func (m *Manager) fireFocusEntered(args FocusEventArgs) {
	for _, h := range m.handlers.focusEntered {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventFocusEntered,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Group:        args.Group,
	})
}

func (m *Manager) fireFocusExited(args FocusEventArgs) {
	for _, h := range m.handlers.focusExited {
		h.fn(args)
	}
	m.emitEvent(Event{
		Kind:         EventFocusExited,
		Interactor:   args.Interactor,
		Interactable: args.Interactable,
		Group:        args.Group,
		Canceled:     args.Canceled,
	})
}

func (m *Manager) emitEvent(e Event) {
	if m.store == nil {
		return
	}
	m.store.EmitEvent(e)
}

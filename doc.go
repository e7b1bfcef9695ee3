// Package reach is a frame-granular interaction arbitration framework for
// [Ebitengine].
//
// Reach mediates between interactors (agents that reach out: pointers, hands,
// gaze) and interactables (objects that can be reached: grabbable or pokeable
// props). Each frame the [Manager] decides which pairs are eligible to
// interact, resolves exclusivity conflicts, and drives symmetric enter/exit
// lifecycle callbacks on both sides in a fixed, re-entrancy-safe order — even
// while participants register, unregister, or mutate their filter chains
// mid-frame.
//
// Reach never moves an object. Grab transforms, smoothing, throw velocity,
// posing, and rendering belong to the host; reach only decides whether and by
// whom an object is held, and tells you through events.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	manager := reach.NewManager()
//
//	box := reach.NewInteractable("box", reach.ProbeRect{X: 100, Y: 100, Width: 60, Height: 60})
//	box.OnSelectEntered = func(args reach.SelectEventArgs) { /* grabbed */ }
//	manager.RegisterInteractable(box)
//
//	pointer := reach.NewPointerInteractor("pointer")
//	manager.RegisterInteractor(pointer.Interactor)
//
//	reach.Run(manager, reach.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call the phase
// methods directly: [Manager.Update] once per tick, with [Manager.FixedUpdate],
// [Manager.LateUpdate], and [Manager.PreRender] at your own cadence.
//
// # Hover, select, focus
//
// Hover is lightweight, non-exclusive proximity engagement. Select is
// committed engagement, subject to the interactable's [SelectMode]
// exclusivity policy. Focus marks group-level attention: when an interactor
// inside an [InteractionGroup] selects an interactable that allows it, the
// group focuses that interactable, and a group focuses at most one at a time.
//
// Every transition fires four callback stages on both sides — Entering and
// Entered on the way in, Exiting and Exited on the way out. Exits carry a
// Canceled flag when forced by unregistration, so listeners can tell "lost
// because conditions changed" from "lost because the other side vanished".
//
// # Eligibility and filters
//
// A pair may hover/select only if the interactor is active, the manager's
// and the interactable's [FilterChain] both pass, and both sides' capability
// predicates permit it. Strength-style engagement (poke, squeeze) flows
// through a [StrengthChain]; shape it with [EasedStrength] (via [gween]'s
// ease functions) or smooth it over time with [Ramp].
//
// # ECS integration
//
// The reach/ecs package bridges every lifecycle event into a [Donburi] world;
// set the bridge with [Manager.SetEventStore].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package reach

package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/reach"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []reach.Event
	LifecycleEventType.Subscribe(world, func(w donburi.World, e reach.Event) {
		received = append(received, e)
	})

	interactor := reach.NewInteractor("hand")
	interactable := reach.NewInteractable("cup")

	store.EmitEvent(reach.Event{
		Kind:         reach.EventSelectEntered,
		Interactor:   interactor,
		Interactable: interactable,
	})
	store.EmitEvent(reach.Event{
		Kind:         reach.EventSelectExited,
		Interactor:   interactor,
		Interactable: interactable,
		Canceled:     true,
	})

	// Events are queued — process them.
	LifecycleEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Kind != reach.EventSelectEntered || e0.Interactor != interactor || e0.Interactable != interactable {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.Canceled {
		t.Error("event 0 should not be canceled")
	}

	e1 := received[1]
	if e1.Kind != reach.EventSelectExited || !e1.Canceled {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEventStore(t *testing.T) {
	world := donburi.NewWorld()
	var store reach.EventStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	LifecycleEventType.Subscribe(world, func(w donburi.World, e reach.Event) {
		count1++
	})
	LifecycleEventType.Subscribe(world, func(w donburi.World, e reach.Event) {
		count2++
	})

	store.EmitEvent(reach.Event{Kind: reach.EventHoverEntered})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

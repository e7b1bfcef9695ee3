package ecs

import (
	"github.com/phanxgames/reach"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for reach lifecycle events.
// Subscribe to this in your ECS systems to receive hover, select, focus, and
// registration events.
var LifecycleEventType = events.NewEventType[reach.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) reach.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event reach.Event) {
	LifecycleEventType.Publish(s.world, event)
}

package ecs

import (
	"github.com/phanxgames/sprout"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// LifecycleEventType is the Donburi event type for sprout lifecycle events.
// Subscribe to this in your ECS systems to react to state switches and quit.
var LifecycleEventType = events.NewEventType[sprout.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Lifecycle events are published to LifecycleEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) sprout.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sprout.Event) {
	LifecycleEventType.Publish(s.world, event)
}

// Package ecs provides ECS adapters for sprout's state machine events.
//
// The primary adapter is [NewDonburiSink], which bridges sprout lifecycle
// events (state enter, state exit, quit) into a [Donburi] world as typed
// events. Subscribe to [LifecycleEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	machine.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

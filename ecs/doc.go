// Package ecs provides ECS adapters for choreo's lifecycle events.
//
// The primary adapter is [NewDonburiStore], which bridges animator events
// (step started, step completed, loop restarted, sequence completed) into a
// [Donburi] world as typed events. Subscribe to [AnimationEventType] in your
// ECS systems to receive them. [NewEntitySink] does the same per entity,
// publishing [EntityEvent] values to [EntityEventType].
//
// Usage:
//
//	sink := ecs.NewDonburiStore(world)
//	anim := choreo.NewAnimator(sprite, choreo.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

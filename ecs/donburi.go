// Package ecs provides ECS adapters for choreo.
package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/choreo"
)

// AnimationEventType is the Donburi event type for choreo lifecycle events.
// Subscribe to this in your ECS systems to react to steps starting and
// completing, loop restarts and finished sequences.
var AnimationEventType = events.NewEventType[choreo.Event]()

// EntityEvent is a lifecycle event tagged with the entity whose animator
// produced it.
type EntityEvent struct {
	Entity donburi.Entity
	choreo.Event
}

// EntityEventType is the Donburi event type for events sent through an
// entity sink.
var EntityEventType = events.NewEventType[EntityEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Lifecycle events are published to AnimationEventType and can be consumed
// with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) choreo.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event choreo.Event) {
	AnimationEventType.Publish(s.world, event)
}

type entitySink struct {
	world  donburi.World
	entity donburi.Entity
}

// NewEntitySink creates an EventSink that publishes to EntityEventType with
// every event tagged by entity. Use one per animated entity.
func NewEntitySink(world donburi.World, entity donburi.Entity) choreo.EventSink {
	return &entitySink{world: world, entity: entity}
}

func (s *entitySink) EmitEvent(event choreo.Event) {
	EntityEventType.Publish(s.world, EntityEvent{Entity: s.entity, Event: event})
}

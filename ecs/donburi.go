// Package ecs provides ECS adapters for canvasray.
package ecs

import (
	"github.com/phanxgames/canvasray"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverEventType is the Donburi event type for canvasray hover events.
// Subscribe to this in your ECS systems to learn when pointers enter or
// leave UI.
var HoverEventType = events.NewEventType[canvasray.HoverEvent]()

var _ canvasray.EntityStore = (*donburiStore)(nil)

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Hover events are published to HoverEventType and can be consumed with
// Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) canvasray.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event canvasray.HoverEvent) {
	HoverEventType.Publish(s.world, event)
}

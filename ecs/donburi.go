package ecs

import (
	"github.com/phanxgames/polymap"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// RegionEventType is the Donburi event type for polymap region events.
var RegionEventType = events.NewEventType[polymap.RegionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventStore backed by a Donburi world.
// Region events are queued on RegionEventType and delivered by
// ProcessEvents.
func NewDonburiStore(world donburi.World) polymap.EventStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event polymap.RegionEvent) {
	RegionEventType.Publish(s.world, event)
}

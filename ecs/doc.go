// Package ecs provides ECS adapters for polymap's region events.
//
// The primary adapter is [NewDonburiStore], which publishes region events
// (vertex added, vertex undone, region finalized, regions cleared) into a
// [Donburi] world as typed events. Subscribe to [RegionEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	surface.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

// Package ecs provides ECS adapters for canvasray's hover events.
//
// The primary adapter is [NewDonburiStore], which bridges canvasray hover
// events (pointer entering, leaving, or moving across UI) into a [Donburi]
// world as typed events. Subscribe to [HoverEventType] in your ECS systems
// to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	tester.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

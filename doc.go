/*
Package depot provides a sparse-set Entity-Component-System (ECS) runtime for games and simulations.

Every component type gets its own store: a packed array of values plus a sparse map from entity to
array slot, so attaching, detaching and looking up a component are all constant time. Queries walk
the packed array of their first component type and look the remaining types up per entity.

Core Concepts:

  - Entity: A numeric identity. Entities carry no data and are never reused.
  - Component: Any Go value attached to an entity, at most one per type.
  - Store: The sparse set holding every value of one component type.
  - View: A snapshot of the entities owning a set of component types.
  - System: A value run once per tick phase against a view of its component types.

Basic Usage:

	world := depot.Factory.NewWorld()

	player := world.NewEntity()
	depot.AddComponent(world, player, Position{X: 10, Y: 20})
	depot.AddComponent(world, player, Velocity{X: 1, Y: 2})

	// Iterate inline
	depot.ForEach2(world, func(e depot.Entity, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})

	// Or register a system and drive the world once per frame
	depot.RegisterSystem2(world, depot.Tick, depot.SystemFunc2[Position, Velocity](
		func(view *depot.View2[Position, Velocity]) {
			for _, row := range view.All() {
				row.A.X += row.B.X
			}
		},
	))
	world.AdvanceTick()
	world.FlushDeferredRemovals()

Slots after the first can be observed with depot.Observe: entities missing an observed component
still produce a row, with a nil pointer in that slot. depot.Where narrows a scan further with a
filter over the component types an entity owns:

	// Everything that moves but has no health
	depot.ForEach2(world, fn, depot.Where(depot.Not(depot.Has[Health]())))

Pointers returned by the World are only valid until the next insert or remove of the same
component type. Systems that destroy entities while iterating should use DestroyEntityDeferred.
*/
package depot

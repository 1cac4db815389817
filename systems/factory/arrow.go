package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/pool"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewArrowPool returns a pool of projectile entities keyed by prototype.
// Active arrows sit in the collision space; idle ones are removed from it.
func NewArrowPool(ecs *ecs.ECS) *components.EntityPool {
	return pool.New(
		func(proto config.PrototypeID) donburi.Entity {
			return createArrow(ecs, proto)
		},
		func(e donburi.Entity, at pool.Placement) {
			activateArrow(ecs, e, at)
		},
		func(e donburi.Entity) {
			deactivateArrow(ecs, e)
		},
	)
}

func createArrow(ecs *ecs.ECS, proto config.PrototypeID) donburi.Entity {
	behavior, ok := config.Arrow.Prototypes[proto]
	if !ok {
		return donburi.Null
	}

	arrow := archetypes.Arrow.Spawn(ecs)
	obj := components.NewObject(0, 0, config.Arrow.Width, config.Arrow.Height, tags.ResolvArrow)
	obj.Data = arrow
	components.Object.SetValue(arrow, components.ObjectData{Object: obj})
	components.Arrow.SetValue(arrow, components.ArrowData{
		Prototype: proto,
		Behavior:  behavior,
	})
	components.Physics.SetValue(arrow, components.PhysicsData{})
	return arrow.Entity()
}

func activateArrow(ecs *ecs.ECS, e donburi.Entity, at pool.Placement) {
	if !ecs.World.Valid(e) {
		return
	}
	entry := ecs.World.Entry(e)
	obj := components.Object.Get(entry)
	w, h := obj.Size()
	obj.SetPosition(at.X-w/2, at.Y-h/2)
	if obj.Space == nil {
		if space := spaceOf(ecs); space != nil {
			space.Add(obj.Object)
		}
	}
	obj.Update()
	components.Arrow.Get(entry).Rotation = at.Rotation
}

func deactivateArrow(ecs *ecs.ECS, e donburi.Entity) {
	if !ecs.World.Valid(e) {
		return
	}
	entry := ecs.World.Entry(e)
	if entry.HasComponent(components.Attachment) {
		entry.RemoveComponent(components.Attachment)
	}
	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	components.Arrow.Get(entry).Reset()
	components.Physics.SetValue(entry, components.PhysicsData{})
}

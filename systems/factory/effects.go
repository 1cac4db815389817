package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/pool"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewEffectPool returns a pool of visual effect entities keyed by effect
// name. Effects missing from the skill database cannot be built.
func NewEffectPool(ecs *ecs.ECS, db *config.SkillDatabase) *components.EntityPool {
	return pool.New(
		func(proto config.PrototypeID) donburi.Entity {
			info, ok := db.GetEffect(string(proto))
			if !ok {
				return donburi.Null
			}
			effect := archetypes.Effect.Spawn(ecs)
			obj := components.NewObject(0, 0, 1, 1)
			obj.Data = effect
			components.Object.SetValue(effect, components.ObjectData{Object: obj})

			duration := info.Duration
			if duration <= 0 {
				duration = config.Effects.DefaultDuration
			}
			components.Effect.SetValue(effect, components.EffectData{
				Name:     info.Name,
				Duration: duration,
			})
			return effect.Entity()
		},
		func(e donburi.Entity, at pool.Placement) {
			if !ecs.World.Valid(e) {
				return
			}
			entry := ecs.World.Entry(e)
			obj := components.Object.Get(entry)
			obj.SetPosition(at.X-0.5, at.Y-0.5)
			fx := components.Effect.Get(entry)
			fx.Active = true
			fx.Remaining = fx.Duration
		},
		func(e donburi.Entity) {
			if !ecs.World.Valid(e) {
				return
			}
			fx := components.Effect.Get(ecs.World.Entry(e))
			fx.Active = false
			fx.Remaining = 0
		},
	)
}

// NewPopupPool returns a pool of floating damage numbers.
func NewPopupPool(ecs *ecs.ECS) *components.EntityPool {
	return pool.New(
		func(proto config.PrototypeID) donburi.Entity {
			if proto != config.Effects.PopupPrototype {
				return donburi.Null
			}
			popup := archetypes.Popup.Spawn(ecs)
			obj := components.NewObject(0, 0, 1, 0.5)
			obj.Data = popup
			components.Object.SetValue(popup, components.ObjectData{Object: obj})
			components.Popup.SetValue(popup, components.PopupData{})
			return popup.Entity()
		},
		func(e donburi.Entity, at pool.Placement) {
			if !ecs.World.Valid(e) {
				return
			}
			entry := ecs.World.Entry(e)
			components.Object.Get(entry).SetPosition(at.X-0.5, at.Y)
			p := components.Popup.Get(entry)
			p.Active = true
			p.BaseY = at.Y
			p.Alpha = 1
		},
		func(e donburi.Entity) {
			if !ecs.World.Valid(e) {
				return
			}
			p := components.Popup.Get(ecs.World.Entry(e))
			*p = components.PopupData{}
		},
	)
}

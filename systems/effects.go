package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/pool"
	"github.com/automoto/archerduel/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateEffects counts down pooled effects and floats damage popups,
// returning expired ones to their pools.
func UpdateEffects(ecs *ecs.ECS) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	dt := cfg.C.TickDelta

	var expiredEffects []*donburi.Entry
	tags.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if !fx.Active {
			return
		}
		fx.Remaining -= dt
		if fx.Remaining <= 1e-9 {
			expiredEffects = append(expiredEffects, e)
		}
	})
	for _, e := range expiredEffects {
		ctx.Effects.Release(cfg.PrototypeID(components.Effect.Get(e).Name), e.Entity())
	}

	var expiredPopups []*donburi.Entry
	tags.Popup.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Popup.Get(e)
		if !p.Active || p.Rise == nil {
			return
		}
		rise, done := p.Rise.Update(float32(dt))
		obj := components.Object.Get(e)
		obj.SetPosition(obj.Position().X, p.BaseY+float64(rise))
		if cfg.Effects.PopupRise > 0 {
			p.Alpha = 1 - float64(rise)/cfg.Effects.PopupRise
		}
		if done {
			expiredPopups = append(expiredPopups, e)
		}
	})
	for _, e := range expiredPopups {
		ctx.Popups.Release(cfg.Effects.PopupPrototype, e.Entity())
	}
}

// PlayEffect shows a pooled visual effect at a world position. Effects
// missing from the skill table are skipped.
func PlayEffect(ecs *ecs.ECS, name string, at dmath.Vec2) *donburi.Entry {
	ctx := combatContext(ecs)
	if ctx == nil || name == "" {
		return nil
	}
	e, ok := ctx.Effects.Acquire(cfg.PrototypeID(name), pool.Placement{X: at.X, Y: at.Y})
	if !ok {
		warnOnce(ctx, "effect:"+name, "effect %q not found, skipping visual", name)
		return nil
	}
	return ecs.World.Entry(e)
}

// SpawnPopup floats a damage number up from anchor.
func SpawnPopup(ecs *ecs.ECS, amount int, anchor dmath.Vec2) *donburi.Entry {
	ctx := combatContext(ecs)
	if ctx == nil {
		return nil
	}
	e, ok := ctx.Popups.Acquire(cfg.Effects.PopupPrototype, pool.Placement{X: anchor.X, Y: anchor.Y})
	if !ok {
		return nil
	}
	entry := ecs.World.Entry(e)
	p := components.Popup.Get(entry)
	p.Amount = amount
	p.Rise = gween.New(0, float32(cfg.Effects.PopupRise), float32(cfg.Effects.PopupDuration), ease.OutQuad)
	return entry
}

// AttachDamagePopups subscribes the popup pool to an actor's damage events.
func AttachDamagePopups(ecs *ecs.ECS, actor *donburi.Entry) {
	health := components.Health.Get(actor)
	health.OnDamageTaken = append(health.OnDamageTaken, func(amount int, anchor, _ dmath.Vec2) {
		SpawnPopup(ecs, amount, anchor)
	})
}

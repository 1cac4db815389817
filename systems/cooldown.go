package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/sched"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// IsSkillReady reports whether an actor's loadout slot has no active
// cooldown. Slots outside the loadout are never ready.
func IsSkillReady(actor *donburi.Entry, slot int) bool {
	if actor == nil || !actor.HasComponent(components.Cooldown) {
		return false
	}
	if components.Actor.Get(actor).SkillAt(slot) == cfg.SkillNone {
		return false
	}
	return components.Cooldown.Get(actor).Ready(slot)
}

// CooldownRatio returns the remaining fraction of a slot's cooldown.
func CooldownRatio(actor *donburi.Entry, slot int) float64 {
	cd := components.Cooldown.Get(actor)
	if slot < 0 || slot >= len(cd.Slots) {
		return 0
	}
	return cd.Slots[slot].Ratio()
}

// TriggerCooldown starts the countdown for a loadout slot using the slot's
// skill duration. Retriggering a cooling slot restarts it from full. Slots
// with no skill, no table entry or a zero duration stay ready.
func TriggerCooldown(ecs *ecs.ECS, actor *donburi.Entry, slot int) {
	ctx := combatContext(ecs)
	if ctx == nil || actor == nil || !actor.HasComponent(components.Cooldown) {
		return
	}
	skill := components.Actor.Get(actor).SkillAt(slot)
	if skill == cfg.SkillNone {
		return
	}
	info, ok := ctx.Skills.GetSkill(skill)
	if !ok || info.Cooldown <= 0 {
		return
	}

	cd := components.Cooldown.Get(actor)
	if slot >= len(cd.Slots) {
		return
	}
	cd.Slots[slot] = components.SlotCooldown{
		Active:    true,
		Remaining: info.Cooldown,
		Duration:  info.Cooldown,
	}
	cd.Emit(slot, 1)

	ctx.Tasks.Start(actor.Entity(), sched.Cooldown(slot), sched.Func(func(dt float64) bool {
		if !actor.Valid() {
			return true
		}
		// Re-read each tick: the entry may have moved archetype since.
		cd := components.Cooldown.Get(actor)
		s := &cd.Slots[slot]
		s.Remaining -= dt
		if s.Remaining <= 1e-9 {
			*s = components.SlotCooldown{Duration: s.Duration}
			cd.Emit(slot, 0)
			return true
		}
		cd.Emit(slot, s.Remaining/s.Duration)
		return false
	}))
}

// TriggerAllCooldowns starts every slot's cooldown, as the player does at
// spawn.
func TriggerAllCooldowns(ecs *ecs.ECS, actor *donburi.Entry) {
	for slot := range components.Actor.Get(actor).Loadout {
		TriggerCooldown(ecs, actor, slot)
	}
}

// ClearCooldowns cancels every running countdown on an actor.
func ClearCooldowns(ecs *ecs.ECS, actor *donburi.Entry) {
	ctx := combatContext(ecs)
	cd := components.Cooldown.Get(actor)
	for slot := range cd.Slots {
		if ctx != nil {
			ctx.Tasks.Cancel(actor.Entity(), sched.Cooldown(slot))
		}
		cd.Slots[slot] = components.SlotCooldown{Duration: cd.Slots[slot].Duration}
	}
}

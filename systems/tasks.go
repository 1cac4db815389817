package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTasks resumes every pending multi-tick task once.
func UpdateTasks(ecs *ecs.ECS) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	ctx.Tasks.Step(cfg.C.TickDelta)
}

// combatContext returns the round's combat singleton, or nil when the world
// has none. Callers treat nil as "skip the action".
func combatContext(ecs *ecs.ECS) *components.CombatData {
	e, ok := components.Combat.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Combat.Get(e)
}

// entryOf resolves an entity handle, returning nil for Null or removed
// entities.
func entryOf(ecs *ecs.ECS, e donburi.Entity) *donburi.Entry {
	if e == donburi.Null || !ecs.World.Valid(e) {
		return nil
	}
	return ecs.World.Entry(e)
}

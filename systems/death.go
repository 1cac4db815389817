package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down force-stopped actors and deactivates them once
// the death pose has played. Deactivated actors stay in the world, hidden
// and inert, so the round can still report on them.
func UpdateDeaths(ecs *ecs.ECS) {
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		if death.Deactivated {
			return
		}
		death.Timer -= cfg.C.TickDelta
		if death.Timer <= 1e-9 {
			death.Timer = 0
			death.Deactivated = true
		}
	})
}

// IsDeactivated reports whether an actor has finished its death sequence.
func IsDeactivated(e *donburi.Entry) bool {
	return e.HasComponent(components.Death) && components.Death.Get(e).Deactivated
}

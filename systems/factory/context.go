package factory

import (
	"math/rand"

	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/sched"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCombatContext builds the per-round combat singleton: pools for
// arrows, effects and popups, the task scheduler, the skill table and the
// random source. A nil db yields a context where every skill is skipped.
func CreateCombatContext(ecs *ecs.ECS, db *config.SkillDatabase, rng *rand.Rand) *donburi.Entry {
	ctx := archetypes.Combat.Spawn(ecs)

	arrows := NewArrowPool(ecs)
	for proto := range config.Arrow.Prototypes {
		arrows.Prewarm(proto, config.Arrow.Prewarm)
	}

	components.Combat.SetValue(ctx, components.CombatData{
		Arrows:  arrows,
		Effects: NewEffectPool(ecs, db),
		Popups:  NewPopupPool(ecs),
		Tasks:   sched.New[donburi.Entity](),
		Skills:  db,
		Rand:    rng,
		Warned:  make(map[string]bool),
	})
	return ctx
}

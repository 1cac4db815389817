package components

import (
	"math/rand"

	"github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/pool"
	"github.com/automoto/archerduel/sched"
	"github.com/yohamta/donburi"
)

// EntityPool recycles entities keyed by prototype id.
type EntityPool = pool.Pool[config.PrototypeID, donburi.Entity]

// CombatData is the per-round combat context: pools, the task scheduler,
// the skill table and the random source. Singleton.
type CombatData struct {
	Arrows  *EntityPool
	Effects *EntityPool
	Popups  *EntityPool
	Tasks   *sched.Scheduler[donburi.Entity]
	Skills  *config.SkillDatabase
	Rand    *rand.Rand

	// Warned holds configuration problems already logged.
	Warned map[string]bool

	// Per-round counters.
	ArrowsFired int
	Hits        int
}

var Combat = donburi.NewComponentType[CombatData]()

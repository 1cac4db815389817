package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/automoto/archerduel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testArenaW = 24.0
	testArenaH = 14.0
	// testFloorY is the top of the test floor, where actors stand.
	testFloorY = 1.0
)

// newTestWorld builds a 24x14 arena with a floor, the combat context and a
// seeded random source. No round exists, so actors always play.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	return newTestWorldWithDB(t, cfg.DefaultSkillDatabase())
}

func newTestWorldWithDB(t *testing.T, db *cfg.SkillDatabase) *ecs.ECS {
	t.Helper()
	w := ecs.NewECS(donburi.NewWorld())
	ppu := cfg.Arena.PixelsPerUnit
	factory.CreateSpace(w, int(testArenaW*ppu), int(testArenaH*ppu), int(ppu), int(ppu))
	factory.CreateArena(w, &leveldata.ArenaData{
		Name:   "test",
		Width:  testArenaW,
		Height: testArenaH,
		Ground: []leveldata.Rect{{X: 0, Y: 0, W: testArenaW, H: testFloorY}},
	})
	factory.CreateCombatContext(w, db, rand.New(rand.NewSource(1)))
	return w
}

func ctxOf(t *testing.T, w *ecs.ECS) *components.CombatData {
	t.Helper()
	ctx := combatContext(w)
	if ctx == nil {
		t.Fatal("no combat context")
	}
	return ctx
}

// runPipeline steps every combat system n times.
func runPipeline(w *ecs.ECS, n int) {
	systems := Pipeline()
	for i := 0; i < n; i++ {
		for _, s := range systems {
			s(w)
		}
	}
}

func ticks(seconds float64) int {
	return int(math.Ceil(seconds/cfg.C.TickDelta - 1e-9))
}

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// activeArrows counts flying or stuck arrows.
func activeArrows(w *ecs.ECS) int {
	n := 0
	components.Arrow.Each(w.World, func(e *donburi.Entry) {
		if components.Arrow.Get(e).State != cfg.ArrowIdle {
			n++
		}
	})
	return n
}

// fakeCaster is a stationary caster for strategy tests.
type fakeCaster struct {
	entry     *donburi.Entry
	pos       components.Vector
	facing    float64
	target    *components.Vector
	velocity  components.Vector
	dashes    []float64
	jumpShots int
}

func (c *fakeCaster) Entry() *donburi.Entry { return c.entry }

func (c *fakeCaster) Position() gamemath.Vec2 {
	return gamemath.Vec2{X: c.pos.X, Y: c.pos.Y}
}

func (c *fakeCaster) FirePosition() gamemath.Vec2 {
	return gamemath.Vec2{X: c.pos.X, Y: c.pos.Y + 1}
}

func (c *fakeCaster) FacingX() float64 { return c.facing }

func (c *fakeCaster) Target() (gamemath.Vec2, bool) {
	if c.target == nil {
		return gamemath.Vec2{}, false
	}
	return gamemath.Vec2{X: c.target.X, Y: c.target.Y}, true
}

func (c *fakeCaster) Velocity() gamemath.Vec2 {
	return gamemath.Vec2{X: c.velocity.X, Y: c.velocity.Y}
}

func (c *fakeCaster) StartDash(direction float64) { c.dashes = append(c.dashes, direction) }

func (c *fakeCaster) StartJumpShot(*cfg.SkillInfo) { c.jumpShots++ }

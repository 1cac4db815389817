package systems

import (
	"testing"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/automoto/archerduel/systems/factory"
)

func testPlatform() leveldata.MovingPlatform {
	return leveldata.MovingPlatform{
		Rect:    leveldata.Rect{X: 8, Y: 4, W: 3, H: 0.5},
		TravelX: 4,
		Period:  2,
	}
}

func TestStuckArrowRidesMovingPlatform(t *testing.T) {
	w := newTestWorld(t)
	platform := factory.CreateMovingPlatform(w, testPlatform())

	v := gamemath.Vec2{X: 0, Y: -5}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 9.5, Y: 5}, v)
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, nil, 0)

	for i := 0; i < 30 && components.Arrow.Get(arrow).State != cfg.ArrowStuck; i++ {
		runPipeline(w, 1)
	}
	if components.Arrow.Get(arrow).State != cfg.ArrowStuck {
		t.Fatal("arrow never stuck in the platform")
	}
	if got := components.Attachment.Get(arrow).Parent; got != platform.Entity() {
		t.Fatalf("parent = %v, want the platform", got)
	}

	offset := func() gamemath.Vec2 {
		a := components.Object.Get(arrow).Position()
		p := components.Object.Get(platform).Position()
		return gamemath.Vec2{X: a.X - p.X, Y: a.Y - p.Y}
	}
	before := offset()
	startX := components.Object.Get(platform).Position().X

	runPipeline(w, 20)

	if x := components.Object.Get(platform).Position().X; x <= startX {
		t.Fatalf("platform did not move: %v -> %v", startX, x)
	}
	after := offset()
	if !near(after.X, before.X, 1e-9) || !near(after.Y, before.Y, 1e-9) {
		t.Errorf("arrow offset drifted from %+v to %+v", before, after)
	}
}

func TestMovingPlatformCarriesActor(t *testing.T) {
	w := newTestWorld(t)
	platform := factory.CreateMovingPlatform(w, testPlatform())
	player := factory.CreatePlayer(w, 9.5, 4.5)
	components.Player.Get(player).AutoFireEnabled = false

	runPipeline(w, 1)
	if got := components.Physics.Get(player).OnGround; got != components.Object.Get(platform).Object {
		t.Fatal("player is not standing on the platform")
	}

	startX := components.Object.Get(player).Feet().X
	platformX := components.Object.Get(platform).Position().X
	runPipeline(w, 20)

	moved := components.Object.Get(platform).Position().X - platformX
	if moved <= 0 {
		t.Fatal("platform did not move")
	}
	if got := components.Object.Get(player).Feet().X - startX; !near(got, moved, 1e-6) {
		t.Errorf("player moved %v, platform moved %v", got, moved)
	}
}

func TestPlatformReturnsAfterPeriod(t *testing.T) {
	w := newTestWorld(t)
	p := testPlatform()
	platform := factory.CreateMovingPlatform(w, p)

	runPipeline(w, ticks(p.Period/2))
	if x := components.Object.Get(platform).Position().X; !near(x, p.X+p.TravelX, 1e-3) {
		t.Errorf("x at half period = %v, want %v", x, p.X+p.TravelX)
	}
	runPipeline(w, ticks(p.Period/2))
	if x := components.Object.Get(platform).Position().X; !near(x, p.X, 1e-3) {
		t.Errorf("x after a full period = %v, want %v", x, p.X)
	}
}

package systems

import (
	"math"
	"testing"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/systems/factory"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
)

func skillInfo(t *testing.T, skill cfg.SkillType) *cfg.SkillInfo {
	t.Helper()
	info, ok := cfg.DefaultSkillDatabase().GetSkill(skill)
	if !ok {
		t.Fatalf("skill %s missing from default table", skill)
	}
	return info
}

func TestArrowFollowsGravityAndRotates(t *testing.T) {
	w := newTestWorld(t)
	v := gamemath.Vec2{X: 3, Y: 5}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 5, Y: 5}, v)
	if arrow == nil {
		t.Fatal("SpawnArrow returned nil")
	}
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, nil, 9.81)

	const n = 30
	for i := 0; i < n; i++ {
		UpdateArrows(w)
	}

	physics := components.Physics.Get(arrow)
	elapsed := float64(n) * cfg.C.TickDelta
	if want := 5 - 9.81*elapsed; !near(physics.SpeedY, want, 1e-9) {
		t.Errorf("SpeedY = %v, want %v", physics.SpeedY, want)
	}
	if !near(physics.SpeedX, 3, 1e-12) {
		t.Errorf("SpeedX = %v, want 3", physics.SpeedX)
	}
	wantRot := math.Atan2(physics.SpeedY, physics.SpeedX) * 180 / math.Pi
	if got := components.Arrow.Get(arrow).Rotation; !near(got, wantRot, 1e-9) {
		t.Errorf("Rotation = %v, want %v", got, wantRot)
	}
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowFlying {
		t.Errorf("State = %v, want Flying", got)
	}
}

func TestArrowHitDamagesOpponentAndReturnsToPool(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 2, testFloorY)
	enemy := factory.CreateEnemy(w, 10, testFloorY)

	v := gamemath.Vec2{X: 10, Y: 0}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 9, Y: testFloorY + 1}, v)
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, player, 0)

	var taken []int
	health := components.Health.Get(enemy)
	health.OnDamageTaken = append(health.OnDamageTaken, func(amount int, _, dir gamemath.Vec2) {
		taken = append(taken, amount)
		if dir.X <= 0 {
			t.Errorf("hit direction = %+v, want +x", dir)
		}
	})

	for i := 0; i < 10; i++ {
		UpdateArrows(w)
	}

	if len(taken) != 1 || taken[0] != 10 {
		t.Fatalf("damage events = %v, want [10]", taken)
	}
	if got := components.Health.Get(enemy).Current; got != cfg.Enemy.Health-10 {
		t.Errorf("enemy HP = %d, want %d", got, cfg.Enemy.Health-10)
	}
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowIdle {
		t.Errorf("arrow state after hit = %v, want Idle", got)
	}
	if got := ctxOf(t, w).Hits; got != 1 {
		t.Errorf("Hits = %d, want 1", got)
	}
}

func TestArrowIgnoresOwnerAndAllies(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 5, testFloorY)

	// Fired from inside the owner's box.
	v := gamemath.Vec2{X: 0.5, Y: 0}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 5, Y: testFloorY + 1}, v)
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, player, 0)

	for i := 0; i < 5; i++ {
		UpdateArrows(w)
	}
	if got := components.Health.Get(player).Current; got != cfg.Player.Health {
		t.Errorf("owner HP = %d, want untouched", got)
	}
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowFlying {
		t.Errorf("State = %v, want Flying", got)
	}
}

func TestArrowSticksThenReleasesAfterStuckTime(t *testing.T) {
	w := newTestWorld(t)
	v := gamemath.Vec2{X: 0, Y: -5}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 5, Y: testFloorY + 0.5}, v)
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, nil, 0)

	stuckAt := -1
	for i := 0; i < 30; i++ {
		runPipeline(w, 1)
		if components.Arrow.Get(arrow).State == cfg.ArrowStuck {
			stuckAt = i
			break
		}
	}
	if stuckAt < 0 {
		t.Fatal("arrow never stuck in the floor")
	}
	if !arrow.HasComponent(components.Attachment) {
		t.Fatal("stuck arrow has no parent link")
	}
	parent := w.World.Entry(components.Attachment.Get(arrow).Parent)
	if !parent.HasComponent(tags.Ground) {
		t.Errorf("stuck arrow parent is not ground")
	}
	if components.Object.Get(arrow).Space != nil {
		t.Errorf("stuck arrow still collides")
	}

	stuck := ticks(cfg.Arrow.StuckTime)
	runPipeline(w, stuck-2)
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowStuck {
		t.Fatalf("state before stuck time = %v, want Stuck", got)
	}
	runPipeline(w, 3)
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowIdle {
		t.Errorf("state after stuck time = %v, want Idle", got)
	}
	if arrow.HasComponent(components.Attachment) {
		t.Errorf("released arrow keeps its parent link")
	}
}

func TestRelaunchCancelsStuckTimer(t *testing.T) {
	w := newTestWorld(t)
	info := skillInfo(t, cfg.SkillNormal)
	down := gamemath.Vec2{X: 0, Y: -5}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 5, Y: testFloorY + 0.5}, down)
	LaunchArrow(w, arrow, info, down, nil, 0)

	for i := 0; i < 30 && components.Arrow.Get(arrow).State != cfg.ArrowStuck; i++ {
		runPipeline(w, 1)
	}
	if components.Arrow.Get(arrow).State != cfg.ArrowStuck {
		t.Fatal("arrow never stuck in the floor")
	}

	stuck := ticks(cfg.Arrow.StuckTime)
	runPipeline(w, stuck/2)

	// Relaunch from open air, well before the old stuck deadline.
	components.Object.Get(arrow).SetPosition(5, 6)
	flat := gamemath.Vec2{X: 1}
	LaunchArrow(w, arrow, info, flat, nil, 0)
	if arrow.HasComponent(components.Attachment) {
		t.Fatal("relaunched arrow keeps its parent link")
	}

	runPipeline(w, stuck/2+20)
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowFlying {
		t.Errorf("state past the old stuck deadline = %v, want Flying", got)
	}
	if components.Object.Get(arrow).Space == nil {
		t.Error("relaunched arrow is not in the collision space")
	}
	if x := components.Object.Get(arrow).Position().X; x <= 5 {
		t.Errorf("relaunched arrow did not fly: x = %v", x)
	}
}

func TestArrowLifeTimerReturnsUnfinishedFlight(t *testing.T) {
	w := newTestWorld(t)
	v := gamemath.Vec2{X: 0, Y: 0.1}
	arrow := SpawnArrow(w, "arrow", gamemath.Vec2{X: 12, Y: 5}, v)
	LaunchArrow(w, arrow, skillInfo(t, cfg.SkillNormal), v, nil, 0)

	life := ticks(cfg.Arrow.LifeTime)
	runPipeline(w, life-2)
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowFlying {
		t.Fatalf("state before life time = %v, want Flying", got)
	}
	runPipeline(w, 3)
	if got := components.Arrow.Get(arrow).State; got != cfg.ArrowIdle {
		t.Errorf("state after life time = %v, want Idle", got)
	}
}

func TestClusterBurstsOnFuse(t *testing.T) {
	w := newTestWorld(t)
	v := gamemath.Vec2{X: 2, Y: 3}
	carrier := SpawnArrow(w, "cluster", gamemath.Vec2{X: 12, Y: 6}, v)
	if carrier == nil {
		t.Fatal("no cluster prototype")
	}
	LaunchArrow(w, carrier, skillInfo(t, cfg.SkillClusterShot), v, nil, 9.81)
	if got := components.Arrow.Get(carrier).Fuse; got != cfg.Cluster.DefaultFuse {
		t.Fatalf("Fuse = %v, want default %v", got, cfg.Cluster.DefaultFuse)
	}

	fuse := ticks(cfg.Cluster.DefaultFuse)
	runPipeline(w, fuse-1)
	if got := components.Arrow.Get(carrier).State; got != cfg.ArrowFlying {
		t.Fatalf("carrier state before fuse = %v, want Flying", got)
	}
	if got := activeArrows(w); got != 1 {
		t.Fatalf("active arrows before fuse = %d, want 1", got)
	}

	runPipeline(w, 1)
	if got := components.Arrow.Get(carrier).State; got != cfg.ArrowIdle {
		t.Errorf("carrier state after fuse = %v, want Idle", got)
	}
	if got := activeArrows(w); got != cfg.Cluster.FragmentCount {
		t.Errorf("fragments = %d, want %d", got, cfg.Cluster.FragmentCount)
	}

	fragments := 0
	components.Arrow.Each(w.World, func(e *donburi.Entry) {
		a := components.Arrow.Get(e)
		if a.State != cfg.ArrowFlying {
			return
		}
		fragments++
		if a.Behavior != cfg.BehaviorBallistic {
			t.Errorf("fragment behavior = %v, want ballistic", a.Behavior)
		}
		if a.InitialVelocity.Y >= 0 {
			t.Errorf("fragment velocity %+v should point down", a.InitialVelocity)
		}
		if !near(gamemath.Length(a.InitialVelocity), cfg.Cluster.SpreadPower, 1e-9) {
			t.Errorf("fragment speed = %v, want %v", gamemath.Length(a.InitialVelocity), cfg.Cluster.SpreadPower)
		}
	})
	if fragments != cfg.Cluster.FragmentCount {
		t.Errorf("flying fragments = %d", fragments)
	}

	explosions := 0
	components.Effect.Each(w.World, func(e *donburi.Entry) {
		if components.Effect.Get(e).Active {
			explosions++
		}
	})
	if explosions != 1 {
		t.Errorf("active effects = %d, want 1 explosion", explosions)
	}
}

func TestSpawnArrowUnknownPrototype(t *testing.T) {
	w := newTestWorld(t)
	if e := SpawnArrow(w, "boulder", gamemath.Vec2{}, gamemath.Vec2{X: 1}); e != nil {
		t.Errorf("SpawnArrow(unknown) = %v, want nil", e.Entity())
	}
}

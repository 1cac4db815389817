package systems

import (
	"testing"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newPlayerDuel places the player at x=4 facing an inert enemy at x=16.
func newPlayerDuel(t *testing.T) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	t.Helper()
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 4, testFloorY)
	enemy := factory.CreateEnemy(w, 16, testFloorY)
	components.Actor.Get(player).Target = enemy.Entity()
	components.Actor.Get(enemy).Target = player.Entity()
	return w, player, enemy
}

// stepPlayer runs the player's half of the pipeline so the enemy AI stays
// out of the way.
func stepPlayer(w *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		UpdatePlayers(w)
		UpdateTasks(w)
		UpdateActorPhysics(w)
		UpdateArrows(w)
	}
}

func TestAutoFireAfterIdleDelay(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	ctx := ctxOf(t, w)
	delay := ticks(cfg.Player.FireDelay)

	stepPlayer(w, delay-1)
	if p := components.Player.Get(player); p.AutoFiring {
		t.Fatalf("auto-fire started before %d ticks", delay)
	}

	stepPlayer(w, 1)
	if p := components.Player.Get(player); !p.AutoFiring {
		t.Fatal("auto-fire did not start after the fire delay")
	}

	stepPlayer(w, ticks(cfg.Player.WindupShort)+1)
	if ctx.ArrowsFired != 1 {
		t.Fatalf("fired = %d, want 1", ctx.ArrowsFired)
	}
	if !IsSkillReady(player, 0) {
		t.Error("auto-fire put the default slot on cooldown")
	}

	stepPlayer(w, ticks(cfg.Player.AutoFireRecovery)+1)
	p := components.Player.Get(player)
	if p.AutoFiring || components.Actor.Get(player).Acting {
		t.Error("auto-fire still holds the action lock after recovery")
	}
}

func TestAutoFireNeedsTarget(t *testing.T) {
	w := newTestWorld(t)
	player := factory.CreatePlayer(w, 4, testFloorY)

	stepPlayer(w, ticks(cfg.Player.FireDelay)*3)
	if got := ctxOf(t, w).ArrowsFired; got != 0 {
		t.Errorf("fired = %d without a target, want 0", got)
	}
	if components.Player.Get(player).AutoFiring {
		t.Error("auto-fire started without a target")
	}
}

func TestAutoFireDisabled(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	components.Player.Get(player).AutoFireEnabled = false

	stepPlayer(w, ticks(cfg.Player.FireDelay)*3)
	if got := ctxOf(t, w).ArrowsFired; got != 0 {
		t.Errorf("fired = %d with auto-fire off, want 0", got)
	}
}

func TestMovingCancelsAutoFire(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	stepPlayer(w, ticks(cfg.Player.FireDelay))
	if !components.Player.Get(player).AutoFiring {
		t.Fatal("auto-fire did not start")
	}

	components.Player.Get(player).MoveX = 1
	stepPlayer(w, 20)

	p := components.Player.Get(player)
	if p.AutoFiring || components.Actor.Get(player).Acting {
		t.Error("auto-fire survived movement")
	}
	if got := ctxOf(t, w).ArrowsFired; got != 0 {
		t.Errorf("fired = %d, want 0", got)
	}
	if p.IdleTime != 0 {
		t.Errorf("IdleTime = %v while moving, want 0", p.IdleTime)
	}
}

func TestExplicitSkillTriggersCooldownAndResolves(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	ctx := ctxOf(t, w)
	slot := components.Actor.Get(player).SlotOf(cfg.SkillMultiShot)

	components.Player.Get(player).RequestSkill(slot)
	stepPlayer(w, 1)

	p := components.Player.Get(player)
	a := components.Actor.Get(player)
	if !p.ExplicitResolving || !a.Acting || a.ActingSlot != slot {
		t.Fatalf("request not accepted: resolving=%v acting=%v slot=%d", p.ExplicitResolving, a.Acting, a.ActingSlot)
	}
	if IsSkillReady(player, slot) {
		t.Error("accepted skill did not start its cooldown")
	}
	if got := components.Physics.Get(player).SpeedX; got != 0 {
		t.Errorf("SpeedX while acting = %v, want 0", got)
	}

	stepPlayer(w, ticks(cfg.Player.WindupLong+2*cfg.Skills.MultiShotInterval+cfg.Player.Recovery)+4)
	if ctx.ArrowsFired != cfg.Skills.MultiShotCount {
		t.Errorf("fired = %d, want %d", ctx.ArrowsFired, cfg.Skills.MultiShotCount)
	}
	p = components.Player.Get(player)
	if p.ExplicitResolving || components.Actor.Get(player).Acting {
		t.Error("explicit skill still holds the lock after recovery")
	}
}

func TestExplicitRequestRejectedWhileResolving(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	actor := components.Actor.Get(player)
	multi := actor.SlotOf(cfg.SkillMultiShot)
	direct := actor.SlotOf(cfg.SkillDirectShot)

	components.Player.Get(player).RequestSkill(multi)
	stepPlayer(w, 1)
	components.Player.Get(player).RequestSkill(direct)
	stepPlayer(w, 1)

	if got := components.Actor.Get(player).ActingSlot; got != multi {
		t.Errorf("ActingSlot = %d, want %d", got, multi)
	}
	if !IsSkillReady(player, direct) {
		t.Error("rejected request started a cooldown")
	}
}

func TestExplicitRequestRejectedOnCooldown(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	slot := components.Actor.Get(player).SlotOf(cfg.SkillDirectShot)
	TriggerCooldown(w, player, slot)

	components.Player.Get(player).RequestSkill(slot)
	stepPlayer(w, 1)

	if components.Player.Get(player).ExplicitResolving {
		t.Error("request accepted while the slot cools down")
	}
}

func TestExplicitRequestPreemptsAutoFire(t *testing.T) {
	w, player, _ := newPlayerDuel(t)
	stepPlayer(w, ticks(cfg.Player.FireDelay))
	if !components.Player.Get(player).AutoFiring {
		t.Fatal("auto-fire did not start")
	}

	slot := components.Actor.Get(player).SlotOf(cfg.SkillDirectShot)
	components.Player.Get(player).RequestSkill(slot)
	stepPlayer(w, 1)

	p := components.Player.Get(player)
	if p.AutoFiring {
		t.Error("auto-fire not cancelled")
	}
	if !p.ExplicitResolving || components.Actor.Get(player).ActingSlot != slot {
		t.Error("explicit request did not take over")
	}
}

func TestPlayerMovementAndFacing(t *testing.T) {
	w, player, enemy := newPlayerDuel(t)

	components.Player.Get(player).MoveX = -1
	stepPlayer(w, 1)
	if got := components.Physics.Get(player).SpeedX; got != -cfg.Player.MoveSpeed {
		t.Errorf("SpeedX = %v, want %v", got, -cfg.Player.MoveSpeed)
	}
	if got := components.Actor.Get(player).FacingX; got != cfg.DirectionLeft {
		t.Errorf("FacingX while walking left = %v", got)
	}
	if x := components.Object.Get(player).Feet().X; x >= 4 {
		t.Errorf("player did not move left: x = %v", x)
	}

	// Standing still turns back toward the opponent.
	components.Player.Get(player).MoveX = 0
	stepPlayer(w, 1)
	if got := components.Actor.Get(player).FacingX; got != cfg.DirectionRight {
		t.Errorf("idle FacingX = %v, want toward enemy", got)
	}

	components.Object.Get(enemy).SetPosition(0.5, testFloorY)
	stepPlayer(w, 1)
	if got := components.Actor.Get(player).FacingX; got != cfg.DirectionLeft {
		t.Errorf("idle FacingX = %v, want toward enemy on the left", got)
	}
}

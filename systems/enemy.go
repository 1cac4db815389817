package systems

import (
	"math"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the autonomous loop:
// spawn delay -> move -> think -> act -> rest -> move ...
func UpdateEnemies(ecs *ecs.ECS) {
	if !roundPlaying(ecs) {
		return
	}
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Actor.Get(e).Stopped {
			return
		}
		updateEnemyAI(ecs, ctx, e)
	})
}

func updateEnemyAI(ecs *ecs.ECS, ctx *components.CombatData, e *donburi.Entry) {
	dt := cfg.C.TickDelta
	enemy := components.Enemy.Get(e)
	enemy.Clock += dt

	switch enemy.Phase {
	case cfg.EnemySpawnDelay:
		enemy.PhaseTimer -= dt
		if enemy.PhaseTimer <= 1e-9 {
			// Everything but the basic shot starts on cooldown.
			for slot := 1; slot < len(components.Actor.Get(e).Loadout); slot++ {
				TriggerCooldown(ecs, e, slot)
			}
			enterEnemyMove(ctx, e)
		}

	case cfg.EnemyMove:
		handleEnemyMove(ecs, e)
		enemy = components.Enemy.Get(e)
		enemy.PhaseTimer -= dt
		if enemy.PhaseTimer <= 1e-9 {
			components.Physics.Get(e).SpeedX = 0
			enemy.Phase = cfg.EnemyThink
			enemy.PhaseTimer = cfg.Enemy.ThinkDelay
		}

	case cfg.EnemyThink:
		stopUnlessMoving(e)
		enemy.PhaseTimer -= dt
		if enemy.PhaseTimer <= 1e-9 {
			handleEnemyThink(ecs, ctx, e)
		}

	case cfg.EnemyActing:
		// StartAction's callback moves on to Rest.
		stopUnlessMoving(e)

	case cfg.EnemyRest:
		stopUnlessMoving(e)
		enemy.PhaseTimer -= dt
		if enemy.PhaseTimer <= 1e-9 {
			enterEnemyMove(ctx, e)
		}
	}
}

func enterEnemyMove(ctx *components.CombatData, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	enemy.Phase = cfg.EnemyMove
	enemy.PhaseTimer = randRange(ctx, cfg.Enemy.MoveMin, cfg.Enemy.MoveMax)
	enemy.MoveDir = 0
}

// handleEnemyMove keeps the enemy inside its preferred band: back off when
// too close, close in when too far, weave otherwise.
func handleEnemyMove(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)

	target := liveTarget(ecs, e)
	if target == nil {
		physics.SpeedX = 0
		return
	}
	self := components.Object.Get(e).Feet().X
	other := components.Object.Get(target).Feet().X
	toward := gamemath.FacingSign(other-self, actor.FacingX)
	distance := math.Abs(other - self)

	switch {
	case distance < cfg.Enemy.RetreatRange:
		enemy.MoveDir = -toward
		physics.SpeedX = enemy.MoveDir * actor.MoveSpeed
	case distance > cfg.Enemy.ApproachRange:
		enemy.MoveDir = toward
		physics.SpeedX = enemy.MoveDir * actor.MoveSpeed
	default:
		enemy.MoveDir = 0
		physics.SpeedX = math.Sin(enemy.Clock*cfg.Enemy.WeaveFreq) * cfg.Enemy.WeaveAmp * actor.MoveSpeed
	}
	actor.FacingX = toward
}

// handleEnemyThink picks a slot and starts its action. The slot's cooldown
// starts once the action has finished.
func handleEnemyThink(ecs *ecs.ECS, ctx *components.CombatData, e *donburi.Entry) {
	actor := components.Actor.Get(e)
	cooldowns := components.Cooldown.Get(e)

	distance := 0.0
	if target := liveTarget(ecs, e); target != nil {
		distance = distanceX(e, target)
		faceToward(actor, components.Object.Get(e).Feet().X, components.Object.Get(target).Feet().X)
	}

	slot := 0
	if !(cooldowns.Ready(0) && ctx.Rand.Float64() < cfg.Enemy.DefaultChance) {
		best := DecideBestSkill(actor, cooldowns, distance, ctx.Rand.Float64)
		if s := actor.SlotOf(best); s >= 0 && cooldowns.Ready(s) {
			slot = s
		}
	}

	enemy := components.Enemy.Get(e)
	enemy.PendingSlot = slot
	enemy.Phase = cfg.EnemyActing

	windup := cfg.Enemy.WindupDefault
	if actor.SkillAt(slot) == cfg.SkillClusterShot {
		windup = cfg.Enemy.WindupCluster
	}
	started := StartAction(ecs, e, slot, windup, cfg.Enemy.Recovery, func() {
		TriggerCooldown(ecs, e, slot)
		enemy := components.Enemy.Get(e)
		enemy.Decisions++
		enemy.PendingSlot = -1
		enemy.Phase = cfg.EnemyRest
		enemy.PhaseTimer = randRange(ctx, cfg.Enemy.RestMin, cfg.Enemy.RestMax)
	})
	if !started {
		enemy.PendingSlot = -1
		enemy.Phase = cfg.EnemyRest
		enemy.PhaseTimer = randRange(ctx, cfg.Enemy.RestMin, cfg.Enemy.RestMax)
	}
}

// DecideBestSkill picks a skill for the current distance to the target.
// roll returns values in [0, 1) and is consulted once per chance check, in
// order. It returns SkillNone when even the basic shot is missing.
func DecideBestSkill(actor *components.ActorData, cooldowns *components.CooldownData, distance float64, roll func() float64) cfg.SkillType {
	usable := func(skill cfg.SkillType) bool {
		slot := actor.SlotOf(skill)
		return slot >= 0 && cooldowns.Ready(slot)
	}

	if distance > cfg.Enemy.JumpShotMin && distance < cfg.Enemy.JumpShotMax &&
		usable(cfg.SkillJumpShot) && roll() < cfg.Enemy.JumpShotChance {
		return cfg.SkillJumpShot
	}
	if distance < cfg.Enemy.DashRange && usable(cfg.SkillDash) && roll() < cfg.Enemy.DashChance {
		return cfg.SkillDash
	}
	if distance > cfg.Enemy.LongRange {
		if usable(cfg.SkillClusterShot) && roll() < cfg.Enemy.ClusterChance {
			return cfg.SkillClusterShot
		}
		if usable(cfg.SkillMultiShot) && roll() < cfg.Enemy.MultiChance {
			return cfg.SkillMultiShot
		}
	}
	if actor.SlotOf(cfg.SkillNormal) >= 0 {
		return cfg.SkillNormal
	}
	return cfg.SkillNone
}

func stopUnlessMoving(e *donburi.Entry) {
	actor := components.Actor.Get(e)
	if actor.Dashing || actor.Jumping {
		return
	}
	components.Physics.Get(e).SpeedX = 0
}

func randRange(ctx *components.CombatData, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + ctx.Rand.Float64()*(hi-lo)
}

package systems

import (
	"math"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayers runs the input-driven control loop: movement, explicit
// skill requests and auto-fire.
func UpdatePlayers(ecs *ecs.ECS) {
	if !roundPlaying(ecs) {
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if components.Actor.Get(e).Stopped {
			return
		}
		updatePlayer(ecs, e)
	})
}

func updatePlayer(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	moving := math.Abs(player.MoveX) > cfg.Player.MoveDeadzone

	// Walking away interrupts a pending auto-fire.
	if moving && player.AutoFiring {
		CancelAction(ecs, e)
		player.AutoFiring = false
	}

	handleSkillRequests(ecs, e)

	player = components.Player.Get(e)
	actor := components.Actor.Get(e)
	physics := components.Physics.Get(e)

	switch {
	case actor.Dashing || actor.Jumping:
	case actor.Acting:
		physics.SpeedX = 0
	default:
		physics.SpeedX = clampAxis(player.MoveX) * actor.MoveSpeed
	}

	if !actor.Acting {
		if moving {
			actor.FacingX = cfg.DirectionRight
			if player.MoveX < 0 {
				actor.FacingX = cfg.DirectionLeft
			}
		} else if target := liveTarget(ecs, e); target != nil {
			from := components.Object.Get(e).Feet().X
			faceToward(actor, from, components.Object.Get(target).Feet().X)
		}
	}

	updateAutoFire(ecs, e, moving)
}

// handleSkillRequests accepts at most one explicit request per tick. A
// request is rejected while its slot cools down or while another explicit
// skill resolves; an auto-fire in progress gives way to it.
func handleSkillRequests(ecs *ecs.ECS, e *donburi.Entry) {
	player := components.Player.Get(e)
	requests := player.SkillRequests
	player.SkillRequests = [cfg.MaxLoadout]bool{}

	for slot, requested := range requests {
		if !requested {
			continue
		}
		if player.ExplicitResolving || !IsSkillReady(e, slot) {
			continue
		}
		if player.AutoFiring {
			CancelAction(ecs, e)
			player.AutoFiring = false
		}
		if components.Actor.Get(e).Acting {
			continue
		}

		skill := components.Actor.Get(e).SkillAt(slot)
		started := StartAction(ecs, e, slot, playerWindup(skill), cfg.Player.Recovery, func() {
			p := components.Player.Get(e)
			p.ExplicitResolving = false
			p.IdleTime = 0
		})
		if !started {
			continue
		}
		player.ExplicitResolving = true
		player.IdleTime = 0
		TriggerCooldown(ecs, e, slot)
		return
	}
}

// updateAutoFire looses the default skill after standing idle for the fire
// delay. Auto-fire is paced by the delay alone and does not touch the
// slot's cooldown.
func updateAutoFire(ecs *ecs.ECS, e *donburi.Entry, moving bool) {
	player := components.Player.Get(e)
	actor := components.Actor.Get(e)

	if moving {
		player.IdleTime = 0
		return
	}
	if !player.AutoFireEnabled || actor.Acting || liveTarget(ecs, e) == nil {
		return
	}
	player.IdleTime += cfg.C.TickDelta
	if player.IdleTime < cfg.Player.FireDelay-1e-9 {
		return
	}

	slot := actor.SlotOf(player.DefaultSkill)
	if slot < 0 {
		return
	}
	started := StartAction(ecs, e, slot, cfg.Player.WindupShort, cfg.Player.AutoFireRecovery, func() {
		p := components.Player.Get(e)
		p.AutoFiring = false
		p.IdleTime = 0
	})
	if started {
		player.AutoFiring = true
		player.IdleTime = 0
	}
}

func playerWindup(skill cfg.SkillType) float64 {
	switch skill {
	case cfg.SkillMultiShot, cfg.SkillDirectShot:
		return cfg.Player.WindupLong
	case cfg.SkillClusterShot:
		return cfg.Player.WindupCluster
	default:
		return cfg.Player.WindupShort
	}
}

func clampAxis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// roundPlaying reports whether actors may act. A world without a round
// (tools, tests) always plays.
func roundPlaying(ecs *ecs.ECS) bool {
	e, ok := components.Round.First(ecs.World)
	if !ok {
		return true
	}
	return components.Round.Get(e).IsPlaying()
}

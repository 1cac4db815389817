package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/sched"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartAction runs the skill in slot as the actor's current action:
// wind-up, the skill itself, then recovery. The actor holds the action lock
// throughout, and the skill's own follow-up work (a burst, a jump or a
// dash) finishes before recovery starts.
// done runs when the lock is released, not when the action is cancelled.
func StartAction(ecs *ecs.ECS, actor *donburi.Entry, slot int, windup, recovery float64, done func()) bool {
	ctx := combatContext(ecs)
	if ctx == nil || actor == nil || !actor.Valid() {
		return false
	}
	a := components.Actor.Get(actor)
	if a.Stopped {
		return false
	}
	a.Acting = true
	a.ActingSlot = slot

	ctx.Tasks.Start(actor.Entity(), sched.KindAction, sched.Then(
		sched.Wait(windup),
		sched.Do(func() { UseSkill(ecs, actor, slot) }),
		sched.Until(func() bool { return !skillResolving(ctx, actor, slot) }),
		sched.Wait(recovery),
		sched.Do(func() {
			releaseAction(actor)
			if done != nil {
				done()
			}
		}),
	))
	return true
}

// CancelAction drops the actor's pending action and releases the lock.
func CancelAction(ecs *ecs.ECS, actor *donburi.Entry) {
	if ctx := combatContext(ecs); ctx != nil {
		ctx.Tasks.Cancel(actor.Entity(), sched.KindAction)
	}
	releaseAction(actor)
}

func releaseAction(actor *donburi.Entry) {
	if !actor.Valid() {
		return
	}
	a := components.Actor.Get(actor)
	a.Acting = false
	a.ActingSlot = -1
}

// StartDash pushes the actor horizontally for the dash duration, then stops
// it. Movement input is ignored while dashing.
func StartDash(ecs *ecs.ECS, actor *donburi.Entry, direction float64) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	components.Actor.Get(actor).Dashing = true
	components.Physics.Get(actor).SpeedX = direction * cfg.Skills.DashImpulse

	ctx.Tasks.Start(actor.Entity(), sched.KindDash, sched.After(cfg.Skills.DashDuration, func() {
		if !actor.Valid() {
			return
		}
		components.Actor.Get(actor).Dashing = false
		components.Physics.Get(actor).SpeedX = 0
	}))
}

// StartJumpShot leaps up and backwards, spins once, looses an arrow halfway
// through the spin and waits to land.
func StartJumpShot(ecs *ecs.ECS, actor *donburi.Entry, info *cfg.SkillInfo) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	a := components.Actor.Get(actor)
	physics := components.Physics.Get(actor)

	g := physics.Gravity
	vy := gamemath.JumpVelocity(g, cfg.Skills.JumpHeight)
	hang := gamemath.HangTime(g, vy)
	back := -a.FacingX
	physics.SpeedY = vy
	if hang > 0 {
		physics.SpeedX = back * cfg.Skills.JumpBackDistance / hang
	}
	physics.OnGround = nil
	a.Jumping = true
	a.Spin = 0

	PlayEffect(ecs, cfg.Skills.JumpEffect, components.Object.Get(actor).Feet())

	caster := NewCaster(ecs, actor)
	spin := gween.New(0, 360, float32(cfg.Skills.JumpSpinDuration), ease.Linear)
	fireAt := float32(360 * cfg.Skills.JumpFireAt)
	fired, spun := false, false

	ctx.Tasks.Start(actor.Entity(), sched.KindJump, sched.Func(func(dt float64) bool {
		if !actor.Valid() {
			return true
		}
		a := components.Actor.Get(actor)
		if !spun {
			deg, done := spin.Update(float32(dt))
			a.Spin = float64(deg)
			if !fired && deg >= fireAt {
				fired = true
				fireJumpArrow(ecs, caster, info)
			}
			if done {
				spun = true
				a.Spin = 0
			}
			return false
		}
		if !Landed(actor) {
			return false
		}
		components.Physics.Get(actor).SpeedX = 0
		a.Jumping = false
		return true
	}))
}

func fireJumpArrow(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	g := cfg.Skills.ProjectileGravity
	if target, ok := aimAt(c, cfg.Skills.JumpAimOffsetY); ok {
		v := gamemath.ComputeLaunchVelocity(c.FirePosition(), target, cfg.Skills.JumpFlightTime, g)
		fireArrow(ecs, c, info, v, g)
		return
	}
	dir := gamemath.Normalize(gamemath.Vec2{X: c.FacingX(), Y: 0.5})
	fireArrow(ecs, c, info, gamemath.Scale(dir, cfg.Skills.JumpFallbackSpeed), g)
}

// ForceStop ends an actor's part in the round: every task it owns is
// cancelled, physics and collision are switched off and the death timer
// starts. Calling it again is a no-op.
func ForceStop(ecs *ecs.ECS, actor *donburi.Entry) {
	if actor == nil || !actor.Valid() {
		return
	}
	a := components.Actor.Get(actor)
	if a.Stopped {
		return
	}
	if ctx := combatContext(ecs); ctx != nil {
		ctx.Tasks.CancelOwner(actor.Entity())
	}

	a.Stopped = true
	a.Acting = false
	a.ActingSlot = -1
	a.Dashing = false
	a.Jumping = false
	a.Spin = 0

	physics := components.Physics.Get(actor)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Simulated = false
	physics.OnGround = nil

	obj := components.Object.Get(actor)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}

	if actor.HasComponent(components.Enemy) {
		components.Enemy.Get(actor).Phase = cfg.EnemyStopped
	}
	if actor.HasComponent(components.Player) {
		p := components.Player.Get(actor)
		p.AutoFiring = false
		p.ExplicitResolving = false
	}

	if !actor.HasComponent(components.Death) {
		donburi.Add(actor, components.Death, &components.DeathData{
			Timer: cfg.Round.DeathDeactivateDelay,
		})
	}
}

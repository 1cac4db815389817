package systems

import (
	"math"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/sched"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// normalShot lobs an arrow onto the target, or shoots flat along facing.
type normalShot struct{}

func (normalShot) Profile() Profile { return ProfileInstant }

func (normalShot) Use(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	g := cfg.Skills.ProjectileGravity
	if target, ok := aimAt(c, cfg.Skills.NormalAimOffsetY); ok {
		start := c.FirePosition()
		v := gamemath.ComputeLaunchVelocity(start, target, cfg.Skills.NormalFlightTime, g)
		// Tilt upward on either side.
		rot := cfg.Skills.NormalRotation
		if target.X < start.X {
			rot = -rot
		}
		fireArrow(ecs, c, info, gamemath.Rotate(v, rot), g)
		return
	}
	fireArrow(ecs, c, info, gamemath.Vec2{X: c.FacingX() * flatSpeed(info)}, g)
}

func flatSpeed(info *cfg.SkillInfo) float64 {
	if info.ProjectileSpeed > 0 {
		return info.ProjectileSpeed
	}
	return cfg.Skills.DefaultFlatSpeed
}

// multiShot fires a burst, each arrow aimed on its own with random spread.
type multiShot struct{}

func (multiShot) Profile() Profile { return ProfileSequence }

func (multiShot) Use(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	shoot := func() {
		if !c.Entry().Valid() {
			return
		}
		g := cfg.Skills.ProjectileGravity
		spread := (ctx.Rand.Float64()*2 - 1) * cfg.Skills.MultiShotSpread
		var v gamemath.Vec2
		if target, ok := aimAt(c, cfg.Skills.NormalAimOffsetY); ok {
			v = gamemath.ComputeLaunchVelocity(c.FirePosition(), target, cfg.Skills.NormalFlightTime, g)
		} else {
			v = gamemath.Vec2{X: c.FacingX() * flatSpeed(info)}
		}
		fireArrow(ecs, c, info, gamemath.Rotate(v, spread), g)
	}

	shoot()
	if cfg.Skills.MultiShotCount <= 1 {
		return
	}
	steps := make([]sched.Task, 0, 2*(cfg.Skills.MultiShotCount-1))
	for i := 1; i < cfg.Skills.MultiShotCount; i++ {
		steps = append(steps, sched.Wait(cfg.Skills.MultiShotInterval), sched.Do(shoot))
	}
	ctx.Tasks.Start(c.Entry().Entity(), sched.KindSkill, sched.Then(steps...))
}

// directShot flies straight with no gravity.
type directShot struct{}

func (directShot) Profile() Profile { return ProfileInstant }

func (directShot) Use(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	speed := cfg.Skills.DirectShotSpeed
	if info.ProjectileSpeed > 0 {
		speed = info.ProjectileSpeed
	}
	dir := gamemath.Vec2{X: c.FacingX()}
	if target, ok := aimAt(c, cfg.Skills.DirectShotAimY); ok {
		start := c.FirePosition()
		d := gamemath.Normalize(gamemath.Vec2{X: target.X - start.X, Y: target.Y - start.Y})
		if d.X != 0 || d.Y != 0 {
			dir = d
		}
	}
	fireArrow(ecs, c, info, gamemath.Scale(dir, speed), 0)
}

// dash shoves the caster along its movement, or its facing when still.
type dash struct{}

func (dash) Profile() Profile { return ProfileDelegated }

func (dash) Use(_ *ecs.ECS, c Caster, _ *cfg.SkillInfo) {
	dir := c.FacingX()
	if vx := c.Velocity().X; math.Abs(vx) > cfg.Skills.DashMinMoveSpeed {
		dir = gamemath.Sign(vx)
	}
	c.StartDash(dir)
}

// jumpShot hands over to the caster's jump routine.
type jumpShot struct{}

func (jumpShot) Profile() Profile { return ProfileDelegated }

func (jumpShot) Use(_ *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	c.StartJumpShot(info)
}

// clusterShot lobs a carrier that bursts into fragments at the apex of its
// planned flight.
type clusterShot struct{}

func (clusterShot) Profile() Profile { return ProfileInstant }

func (clusterShot) Use(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo) {
	g := cfg.Skills.ProjectileGravity
	start := c.FirePosition()
	flight := cfg.Skills.ClusterFlightTime

	target, ok := aimAt(c, cfg.Skills.ClusterAimOffsetY)
	if !ok {
		target = gamemath.Vec2{
			X: start.X + c.FacingX()*cfg.Skills.ClusterFallbackX,
			Y: start.Y + cfg.Skills.ClusterFallbackY,
		}
	}
	v := gamemath.ComputeLaunchVelocity(start, target, flight, g)

	ctx := combatContext(ecs)
	if info.Projectile == "" {
		warnOnce(ctx, "projectile:"+info.Name, "skill %s has no projectile", info.Name)
		return
	}
	arrow := SpawnArrow(ecs, info.Projectile, start, v)
	if arrow == nil {
		warnOnce(ctx, "prototype:"+string(info.Projectile), "arrow prototype %q not available", info.Projectile)
		return
	}
	components.Arrow.Get(arrow).Fuse = flight
	LaunchArrow(ecs, arrow, info, v, c.Entry(), g)
}

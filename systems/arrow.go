package systems

import (
	"math"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/pool"
	"github.com/automoto/archerduel/sched"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type arrowHit struct {
	arrow  *donburi.Entry
	target *donburi.Entry
}

type arrowStick struct {
	arrow   *donburi.Entry
	surface *donburi.Entry
}

// UpdateArrows steps every flying arrow, then resolves hits, sticks and
// cluster bursts once iteration is over so the world is not mutated while
// it is being walked.
func UpdateArrows(ecs *ecs.ECS) {
	ctx := combatContext(ecs)
	if ctx == nil {
		return
	}
	dt := cfg.C.TickDelta

	var hits []arrowHit
	var sticks []arrowStick
	var bursts []*donburi.Entry

	tags.Arrow.Each(ecs.World, func(e *donburi.Entry) {
		arrow := components.Arrow.Get(e)
		if arrow.State != cfg.ArrowFlying {
			return
		}
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		physics.SpeedY -= physics.Gravity * dt
		obj.Move(physics.SpeedX*dt, physics.SpeedY*dt)
		obj.Update()
		arrow.FlightTime += dt

		v := gamemath.Vec2{X: physics.SpeedX, Y: physics.SpeedY}
		if gamemath.LengthSq(v) > cfg.Arrow.MinRotateSpeedSq {
			arrow.Rotation = gamemath.AngleDegrees(v)
		}

		if arrow.Behavior == cfg.BehaviorClusterCarrier {
			// Carriers ignore contacts and only burst on the fuse.
			if sched.Reached(arrow.FlightTime, arrow.Fuse) {
				bursts = append(bursts, e)
			}
			return
		}

		if target := arrowTarget(ecs, obj.Object, arrow); target != nil {
			hits = append(hits, arrowHit{arrow: e, target: target})
			return
		}
		if surface := arrowSurface(obj.Object); surface != nil {
			sticks = append(sticks, arrowStick{arrow: e, surface: surface})
		}
	})

	for _, h := range hits {
		if !h.arrow.Valid() || components.Arrow.Get(h.arrow).State != cfg.ArrowFlying {
			continue
		}
		onArrowHit(ecs, ctx, h.arrow, h.target)
		releaseArrow(ctx, h.arrow)
	}
	for _, s := range sticks {
		if !s.arrow.Valid() || components.Arrow.Get(s.arrow).State != cfg.ArrowFlying {
			continue
		}
		stickArrow(ctx, s.arrow, s.surface)
	}
	for _, b := range bursts {
		if !b.Valid() || components.Arrow.Get(b).State != cfg.ArrowFlying {
			continue
		}
		explodeCluster(ecs, ctx, b)
	}
}

// LaunchArrow puts a pooled arrow into flight. Any pending life or stuck
// timer is replaced, the arrow is detached from whatever it was stuck in,
// and a new life timer returns it to the pool if nothing else ends the
// flight first.
func LaunchArrow(ecs *ecs.ECS, arrow *donburi.Entry, info *cfg.SkillInfo, velocity gamemath.Vec2, owner *donburi.Entry, gravity float64) {
	ctx := combatContext(ecs)
	if ctx == nil || arrow == nil || !arrow.Valid() {
		return
	}
	ownerEntity := donburi.Null
	faction := cfg.FactionPlayer
	if owner != nil && owner.Valid() {
		ownerEntity = owner.Entity()
		if owner.HasComponent(components.Actor) {
			faction = components.Actor.Get(owner).Faction
		}
	}
	launch(ecs, ctx, arrow, info, velocity, ownerEntity, faction, gravity)
}

func launch(ecs *ecs.ECS, ctx *components.CombatData, e *donburi.Entry, info *cfg.SkillInfo, velocity gamemath.Vec2, owner donburi.Entity, faction cfg.Faction, gravity float64) {
	ctx.Tasks.Cancel(e.Entity(), sched.KindLifecycle)

	if e.HasComponent(components.Attachment) {
		e.RemoveComponent(components.Attachment)
	}
	obj := components.Object.Get(e)
	if obj.Space == nil {
		if se, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(se).Add(obj.Object)
		}
	}

	physics := components.Physics.Get(e)
	physics.SpeedX = velocity.X
	physics.SpeedY = velocity.Y
	physics.Gravity = gravity
	physics.Simulated = true

	arrow := components.Arrow.Get(e)
	arrow.Skill = info
	arrow.InitialVelocity = velocity
	arrow.Owner = owner
	arrow.OwnerFaction = faction
	arrow.Gravity = gravity
	arrow.Launched = true
	arrow.State = cfg.ArrowFlying
	arrow.FlightTime = 0
	if gamemath.LengthSq(velocity) > cfg.Arrow.MinRotateSpeedSq {
		arrow.Rotation = gamemath.AngleDegrees(velocity)
	}
	if arrow.Behavior == cfg.BehaviorClusterCarrier && arrow.Fuse <= 0 {
		arrow.Fuse = cfg.Cluster.DefaultFuse
	}
	ctx.ArrowsFired++

	ctx.Tasks.Start(e.Entity(), sched.KindLifecycle, sched.After(cfg.Arrow.LifeTime, func() {
		releaseArrow(ctx, e)
	}))
}

// releaseArrow returns an arrow to its pool and drops its pending timer.
func releaseArrow(ctx *components.CombatData, e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	ctx.Tasks.Cancel(e.Entity(), sched.KindLifecycle)
	ctx.Arrows.Release(components.Arrow.Get(e).Prototype, e.Entity())
}

// arrowTarget returns the first actor the arrow overlaps that is neither its
// owner nor on the owner's side.
func arrowTarget(ecs *ecs.ECS, obj *resolv.Object, arrow *components.ArrowData) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvPlayer, tags.ResolvEnemy)
	if check == nil {
		return nil
	}
	for _, o := range check.Objects {
		if !components.Overlaps(obj, 0, 0, o) {
			continue
		}
		target, ok := o.Data.(*donburi.Entry)
		if !ok || !target.Valid() || target.Entity() == arrow.Owner {
			continue
		}
		if target.HasComponent(components.Actor) && components.Actor.Get(target).Faction == arrow.OwnerFaction {
			continue
		}
		return target
	}
	return nil
}

// arrowSurface returns the ground entity the arrow overlaps, if any.
func arrowSurface(obj *resolv.Object) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvGround)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tags.ResolvGround) {
		if !components.Overlaps(obj, 0, 0, o) {
			continue
		}
		if surface, ok := o.Data.(*donburi.Entry); ok && surface.Valid() {
			return surface
		}
	}
	return nil
}

func onArrowHit(ecs *ecs.ECS, ctx *components.CombatData, e, target *donburi.Entry) {
	receiver := ResolveDamageable(target)
	if receiver == nil {
		return
	}
	arrow := components.Arrow.Get(e)
	physics := components.Physics.Get(e)

	damage := cfg.Arrow.DefaultDamage
	if arrow.Skill != nil && arrow.Skill.Damage > 0 {
		damage = arrow.Skill.Damage
	}

	dir := gamemath.Normalize(gamemath.Vec2{X: physics.SpeedX, Y: physics.SpeedY})
	if dir.X == 0 && dir.Y == 0 {
		rad := arrow.Rotation * math.Pi / 180
		dir = gamemath.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
	}

	ctx.Hits++
	ApplyDamage(receiver, damage, dir)
}

// stickArrow embeds a flying arrow in a surface. It follows the surface
// until the stuck timer returns it to the pool.
func stickArrow(ctx *components.CombatData, e, surface *donburi.Entry) {
	arrow := components.Arrow.Get(e)
	arrow.Launched = false
	arrow.State = cfg.ArrowStuck

	physics := components.Physics.Get(e)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.Simulated = false

	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	Attach(e, surface)

	ctx.Tasks.Start(e.Entity(), sched.KindLifecycle, sched.After(cfg.Arrow.StuckTime, func() {
		releaseArrow(ctx, e)
	}))
}

// explodeCluster bursts a carrier into fragments at its position, then
// returns the carrier to the pool.
func explodeCluster(ecs *ecs.ECS, ctx *components.CombatData, e *donburi.Entry) {
	arrow := components.Arrow.Get(e)
	at := components.Object.Get(e).Center()

	PlayEffect(ecs, cfg.Cluster.ExplosionEffect, at)

	info, owner, faction := arrow.Skill, arrow.Owner, arrow.OwnerFaction
	for i := 0; i < cfg.Cluster.FragmentCount; i++ {
		frag, ok := ctx.Arrows.Acquire(cfg.Cluster.FragmentPrototype, pool.Placement{X: at.X, Y: at.Y})
		if !ok {
			break
		}
		spread := gamemath.Normalize(gamemath.Vec2{
			X: (ctx.Rand.Float64()*2 - 1) * cfg.Cluster.SpreadX,
			Y: -1,
		})
		velocity := gamemath.Scale(spread, cfg.Cluster.SpreadPower)
		fe := ecs.World.Entry(frag)
		components.Arrow.Get(fe).Reset()
		launch(ecs, ctx, fe, info, velocity, owner, faction, cfg.Cluster.FragmentGravity)
	}

	releaseArrow(ctx, e)
}

// SpawnArrow acquires an arrow of proto at the given point, facing along
// velocity. It returns nil when the pool cannot supply one.
func SpawnArrow(ecs *ecs.ECS, proto cfg.PrototypeID, at, velocity gamemath.Vec2) *donburi.Entry {
	ctx := combatContext(ecs)
	if ctx == nil || proto == "" {
		return nil
	}
	e, ok := ctx.Arrows.Acquire(proto, pool.Placement{X: at.X, Y: at.Y, Rotation: gamemath.AngleDegrees(velocity)})
	if !ok {
		return nil
	}
	entry := ecs.World.Entry(e)
	components.Arrow.Get(entry).Reset()
	components.Arrow.Get(entry).Rotation = gamemath.AngleDegrees(velocity)
	return entry
}

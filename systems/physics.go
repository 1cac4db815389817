package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/automoto/archerduel/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActorPhysics integrates gravity and velocity for both duellists and
// lands them on ground surfaces. Platforms are one-way: actors pass through
// from below and land only while falling.
func UpdateActorPhysics(ecs *ecs.ECS) {
	bounds := arenaBounds(ecs)
	step := func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		if !physics.Simulated {
			return
		}
		obj := components.Object.Get(e)
		stepBody(physics, obj, bounds)
	}
	tags.Player.Each(ecs.World, step)
	tags.Enemy.Each(ecs.World, step)
}

func stepBody(physics *components.PhysicsData, obj *components.ObjectData, bounds *components.ArenaData) {
	dt := cfg.C.TickDelta
	ppu := cfg.Arena.PixelsPerUnit

	physics.SpeedY -= physics.Gravity * dt
	if physics.MaxFallSpeed > 0 && physics.SpeedY < -physics.MaxFallSpeed {
		physics.SpeedY = -physics.MaxFallSpeed
	}

	obj.Move(physics.SpeedX*dt, 0)
	if bounds != nil {
		w, _ := obj.Size()
		x := obj.Position().X
		if x < 0 {
			obj.SetPosition(0, obj.Position().Y)
		} else if x+w > bounds.Width {
			obj.SetPosition(bounds.Width-w, obj.Position().Y)
		}
	}

	physics.OnGround = nil
	dy := physics.SpeedY * dt * ppu
	if dy <= 0 {
		skin := cfg.Physics.GroundSkin * ppu
		if ground := groundBelow(obj.Object, dy-skin); ground != nil {
			obj.Y = ground.Y + ground.H
			physics.SpeedY = 0
			physics.OnGround = ground
			obj.Update()
			return
		}
	}
	obj.Y += dy
	obj.Update()
}

// groundBelow returns the highest ground surface whose top lies between the
// object's feet and its feet moved by dy (dy <= 0), in pixels.
func groundBelow(obj *resolv.Object, dy float64) *resolv.Object {
	const eps = 0.001
	check := obj.Check(0, dy, tags.ResolvGround)
	if check == nil {
		return nil
	}
	var best *resolv.Object
	for _, g := range check.ObjectsByTags(tags.ResolvGround) {
		if obj.X+obj.W <= g.X || g.X+g.W <= obj.X {
			continue
		}
		top := g.Y + g.H
		if top > obj.Y+eps || top < obj.Y+dy-eps {
			continue
		}
		if best == nil || top > best.Y+best.H {
			best = g
		}
	}
	return best
}

// Landed reports whether an actor stands on ground and is not rising.
func Landed(e *donburi.Entry) bool {
	physics := components.Physics.Get(e)
	return physics.OnGround != nil && physics.SpeedY <= cfg.Physics.LandedSpeedY
}

func arenaBounds(ecs *ecs.ECS) *components.ArenaData {
	e, ok := components.Arena.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Arena.Get(e)
}

// distanceX returns the horizontal distance between two actors' feet.
func distanceX(a, b *donburi.Entry) float64 {
	pa := components.Object.Get(a).Feet()
	pb := components.Object.Get(b).Feet()
	d := pb.X - pa.X
	if d < 0 {
		return -d
	}
	return d
}

// faceToward turns an actor toward a point, keeping its facing when level.
func faceToward(actor *components.ActorData, from, to float64) {
	actor.FacingX = gamemath.FacingSign(to-from, actor.FacingX)
}

package systems

import (
	"log"

	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/sched"
	"github.com/automoto/archerduel/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Profile describes how a strategy spends its time.
type Profile int

const (
	// ProfileInstant resolves within the call.
	ProfileInstant Profile = iota
	// ProfileSequence schedules follow-up work on the caster.
	ProfileSequence
	// ProfileDelegated hands control to one of the caster's routines.
	ProfileDelegated
)

// Caster is what a skill strategy needs from whoever uses it.
type Caster interface {
	Entry() *donburi.Entry
	Position() gamemath.Vec2
	FirePosition() gamemath.Vec2
	FacingX() float64
	// Target returns the current opponent's feet, false when there is none.
	Target() (gamemath.Vec2, bool)
	Velocity() gamemath.Vec2
	StartDash(direction float64)
	StartJumpShot(info *cfg.SkillInfo)
}

// SkillStrategy performs one skill.
type SkillStrategy interface {
	Profile() Profile
	Use(ecs *ecs.ECS, caster Caster, info *cfg.SkillInfo)
}

var strategies = map[cfg.SkillType]SkillStrategy{
	cfg.SkillNormal:      normalShot{},
	cfg.SkillMultiShot:   multiShot{},
	cfg.SkillDirectShot:  directShot{},
	cfg.SkillDash:        dash{},
	cfg.SkillJumpShot:    jumpShot{},
	cfg.SkillClusterShot: clusterShot{},
}

// StrategyFor returns the strategy registered for a skill.
func StrategyFor(skill cfg.SkillType) (SkillStrategy, bool) {
	s, ok := strategies[skill]
	return s, ok
}

// skillResolving reports whether the skill used from slot still has work in
// flight, judged by its strategy's profile.
func skillResolving(ctx *components.CombatData, actor *donburi.Entry, slot int) bool {
	if !actor.Valid() {
		return false
	}
	a := components.Actor.Get(actor)
	strategy, ok := StrategyFor(a.SkillAt(slot))
	if !ok {
		return false
	}
	switch strategy.Profile() {
	case ProfileSequence:
		return ctx.Tasks.Active(actor.Entity(), sched.KindSkill)
	case ProfileDelegated:
		return a.Jumping || a.Dashing
	}
	return false
}

// warnOnce logs a configuration problem the first time key is seen in this
// combat context.
func warnOnce(ctx *components.CombatData, key, format string, args ...any) {
	if ctx == nil {
		log.Printf("Warning: "+format, args...)
		return
	}
	if ctx.Warned == nil {
		ctx.Warned = make(map[string]bool)
	}
	if ctx.Warned[key] {
		return
	}
	ctx.Warned[key] = true
	log.Printf("Warning: "+format, args...)
}

// UseSkill performs the skill in an actor's loadout slot. It reports false
// when nothing could be used: empty slot, no combat context, or no table
// entry or strategy for the skill.
func UseSkill(ecs *ecs.ECS, actor *donburi.Entry, slot int) bool {
	ctx := combatContext(ecs)
	if ctx == nil || actor == nil || !actor.Valid() {
		return false
	}
	skill := components.Actor.Get(actor).SkillAt(slot)
	if skill == cfg.SkillNone {
		return false
	}
	info, ok := ctx.Skills.GetSkill(skill)
	if !ok {
		warnOnce(ctx, "skill:"+skill.String(), "skill %s not found in skill table", skill)
		return false
	}
	strategy, ok := StrategyFor(skill)
	if !ok {
		warnOnce(ctx, "strategy:"+skill.String(), "no strategy for skill %s", skill)
		return false
	}
	strategy.Use(ecs, NewCaster(ecs, actor), info)
	return true
}

// actorCaster adapts a duellist entity to Caster.
type actorCaster struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

// NewCaster wraps an actor entity.
func NewCaster(ecs *ecs.ECS, actor *donburi.Entry) Caster {
	return &actorCaster{ecs: ecs, entry: actor}
}

func (c *actorCaster) Entry() *donburi.Entry { return c.entry }

func (c *actorCaster) Position() gamemath.Vec2 {
	return components.Object.Get(c.entry).Feet()
}

func (c *actorCaster) FirePosition() gamemath.Vec2 {
	actor := components.Actor.Get(c.entry)
	p := c.Position()
	return gamemath.Vec2{
		X: p.X + actor.FireOffset.X*actor.FacingX,
		Y: p.Y + actor.FireOffset.Y,
	}
}

func (c *actorCaster) FacingX() float64 {
	return components.Actor.Get(c.entry).FacingX
}

func (c *actorCaster) Target() (gamemath.Vec2, bool) {
	target := liveTarget(c.ecs, c.entry)
	if target == nil {
		return gamemath.Vec2{}, false
	}
	return components.Object.Get(target).Feet(), true
}

func (c *actorCaster) Velocity() gamemath.Vec2 {
	physics := components.Physics.Get(c.entry)
	return gamemath.Vec2{X: physics.SpeedX, Y: physics.SpeedY}
}

func (c *actorCaster) StartDash(direction float64) {
	StartDash(c.ecs, c.entry, direction)
}

func (c *actorCaster) StartJumpShot(info *cfg.SkillInfo) {
	StartJumpShot(c.ecs, c.entry, info)
}

// liveTarget resolves an actor's opponent, nil when it is gone or dead.
func liveTarget(ecs *ecs.ECS, actor *donburi.Entry) *donburi.Entry {
	target := entryOf(ecs, components.Actor.Get(actor).Target)
	if target == nil || target.HasComponent(components.Death) {
		return nil
	}
	if target.HasComponent(components.Health) && components.Health.Get(target).Dead {
		return nil
	}
	return target
}

// fireArrow spawns the skill's projectile at the caster's bow and launches
// it. A skill without a projectile, or a prototype the pool cannot supply,
// is skipped.
func fireArrow(ecs *ecs.ECS, c Caster, info *cfg.SkillInfo, velocity gamemath.Vec2, gravity float64) *donburi.Entry {
	ctx := combatContext(ecs)
	if info.Projectile == "" {
		warnOnce(ctx, "projectile:"+info.Name, "skill %s has no projectile", info.Name)
		return nil
	}
	arrow := SpawnArrow(ecs, info.Projectile, c.FirePosition(), velocity)
	if arrow == nil {
		warnOnce(ctx, "prototype:"+string(info.Projectile), "arrow prototype %q not available", info.Projectile)
		return nil
	}
	LaunchArrow(ecs, arrow, info, velocity, c.Entry(), gravity)
	return arrow
}

// aimAt returns the caster's target raised by offsetY.
func aimAt(c Caster, offsetY float64) (gamemath.Vec2, bool) {
	target, ok := c.Target()
	if !ok {
		return target, false
	}
	target.Y += offsetY
	return target, true
}

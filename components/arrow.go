package components

import (
	"github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ArrowData is the projectile state. One pooled entity serves both ballistic
// arrows and cluster carriers; Behavior picks the stepping logic.
type ArrowData struct {
	Prototype config.PrototypeID
	State     config.ArrowState
	Behavior  config.ArrowBehavior
	Launched  bool

	Skill           *config.SkillInfo
	InitialVelocity dmath.Vec2
	Owner           donburi.Entity
	OwnerFaction    config.Faction
	Gravity         float64
	Rotation        float64 // degrees, atan2(vy, vx)
	FlightTime      float64 // seconds since launch

	// Cluster carrier only
	Fuse float64
}

var Arrow = donburi.NewComponentType[ArrowData]()

// Reset clears transient flight state before a pooled arrow is reused.
func (a *ArrowData) Reset() {
	proto, behavior := a.Prototype, a.Behavior
	*a = ArrowData{Prototype: proto, Behavior: behavior}
}

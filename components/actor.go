package components

import (
	"github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
)

// ActorData is shared by both duellists.
type ActorData struct {
	Name    string
	Faction config.Faction
	Loadout []config.SkillType // fixed order, addressed by slot

	FacingX    float64
	MoveSpeed  float64
	FireOffset Vector // from the feet, mirrored by facing
	Target     donburi.Entity

	Acting  bool // one skill resolves at a time
	Dashing bool
	Jumping bool
	Stopped bool

	// ActingSlot is the slot whose action is resolving, -1 for none.
	ActingSlot int
	// Spin is the jump-shot body rotation in degrees.
	Spin float64
}

var Actor = donburi.NewComponentType[ActorData]()

// Vector represents a 2D offset.
type Vector struct {
	X, Y float64
}

// SkillAt returns the skill in slot, or SkillNone when out of range.
func (a *ActorData) SkillAt(slot int) config.SkillType {
	if slot < 0 || slot >= len(a.Loadout) {
		return config.SkillNone
	}
	return a.Loadout[slot]
}

// SlotOf returns the first slot holding skill, or -1.
func (a *ActorData) SlotOf(skill config.SkillType) int {
	for i, s := range a.Loadout {
		if s == skill {
			return i
		}
	}
	return -1
}

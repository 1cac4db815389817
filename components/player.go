package components

import (
	"github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
)

// PlayerData holds the input-driven half of the player's control loop.
// The front-end (or a test) writes MoveX and SkillRequests each tick.
type PlayerData struct {
	MoveX         float64
	SkillRequests [config.MaxLoadout]bool

	DefaultSkill      config.SkillType
	AutoFireEnabled   bool
	AutoFiring        bool    // the in-flight action is an auto-fire
	ExplicitResolving bool    // an explicit skill owns the action lock
	IdleTime          float64 // seconds idle since the last action or move
}

var Player = donburi.NewComponentType[PlayerData]()

// RequestSkill queues an explicit skill request for the next tick.
func (p *PlayerData) RequestSkill(slot int) {
	if slot >= 0 && slot < len(p.SkillRequests) {
		p.SkillRequests[slot] = true
	}
}

package components

import (
	"github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
)

// EnemyData drives the autonomous loop.
type EnemyData struct {
	Phase      config.EnemyPhase
	PhaseTimer float64 // seconds left in the current timed phase
	Clock      float64 // seconds alive, drives the weave

	MoveDir     float64 // chosen direction for this move phase
	PendingSlot int
	Decisions   int // completed skill choices, for tests and the HUD
}

var Enemy = donburi.NewComponentType[EnemyData]()

package components

import (
	cfg "github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the current duel state.
// This is a singleton component - only one round exists at a time.
type RoundData struct {
	State    cfg.RoundStateID
	Timer    float64 // seconds left in the playing phase
	Duration float64

	CountdownIndex   int     // index into config.Round.CountdownLabels
	CountdownElapsed float64 // seconds into the current label
	Label            string  // countdown text being shown, "" when none

	Outcome string

	Player donburi.Entity
	Enemy  donburi.Entity

	// OnOutcome runs once when the round resolves.
	OnOutcome []func(outcome string)
}

var Round = donburi.NewComponentType[RoundData]()

// IsPlaying reports whether actors may act.
func (r *RoundData) IsPlaying() bool {
	return r.State == cfg.RoundPlaying
}

// Finish records the outcome and notifies listeners. Later calls are ignored.
func (r *RoundData) Finish(outcome string) bool {
	if r.State == cfg.RoundGameOver {
		return false
	}
	r.State = cfg.RoundGameOver
	r.Outcome = outcome
	r.Label = outcome
	for _, fn := range r.OnOutcome {
		fn(outcome)
	}
	return true
}

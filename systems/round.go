package systems

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// StartRound wires the duellists to each other and to the round: targets,
// damage popups, death listeners and the player's opening cooldowns. Call
// once after the round singleton and both actors exist.
func StartRound(ecs *ecs.ECS) {
	re, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	player := entryOf(ecs, round.Player)
	enemy := entryOf(ecs, round.Enemy)
	if player == nil || enemy == nil {
		return
	}

	components.Actor.Get(player).Target = enemy.Entity()
	components.Actor.Get(enemy).Target = player.Entity()

	AttachDamagePopups(ecs, player)
	AttachDamagePopups(ecs, enemy)

	onDeath := func(outcome string) func() {
		return func() { EndRound(ecs, outcome) }
	}
	ph := components.Health.Get(player)
	ph.OnDead = append(ph.OnDead, onDeath(cfg.OutcomeLose))
	eh := components.Health.Get(enemy)
	eh.OnDead = append(eh.OnDead, onDeath(cfg.OutcomeWin))

	TriggerAllCooldowns(ecs, player)

	round.State = cfg.RoundReady
	round.Timer = round.Duration
	round.Outcome = cfg.OutcomeNone
	round.Label = ""
}

// UpdateRound drives the countdown, the round timer and the time-out draw.
func UpdateRound(ecs *ecs.ECS) {
	re, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	dt := cfg.C.TickDelta
	labels := cfg.Round.CountdownLabels

	switch round.State {
	case cfg.RoundReady:
		round.CountdownIndex = 0
		round.CountdownElapsed = 0
		if len(labels) == 0 {
			round.State = cfg.RoundPlaying
			return
		}
		round.State = cfg.RoundCountdown
		round.Label = labels[0]

	case cfg.RoundCountdown:
		round.CountdownElapsed += dt
		if round.CountdownElapsed < cfg.Round.CountdownStep-1e-9 {
			return
		}
		round.CountdownElapsed = 0
		round.CountdownIndex++
		if round.CountdownIndex >= len(labels) {
			round.State = cfg.RoundPlaying
			round.Label = ""
			return
		}
		round.Label = labels[round.CountdownIndex]

	case cfg.RoundPlaying:
		round.Timer -= dt
		if round.Timer <= 1e-9 {
			round.Timer = 0
			EndRound(ecs, cfg.OutcomeDraw)
		}
	}
}

// EndRound records the outcome and stops both duellists. Only the first
// call has any effect.
func EndRound(ecs *ecs.ECS, outcome string) {
	re, ok := components.Round.First(ecs.World)
	if !ok {
		return
	}
	round := components.Round.Get(re)
	player, enemy := round.Player, round.Enemy
	if !round.Finish(outcome) {
		return
	}
	for _, e := range []donburi.Entity{player, enemy} {
		if entry := entryOf(ecs, e); entry != nil {
			ForceStop(ecs, entry)
		}
	}
}

// RoundOutcome returns the outcome label, empty while undecided.
func RoundOutcome(ecs *ecs.ECS) string {
	re, ok := components.Round.First(ecs.World)
	if !ok {
		return cfg.OutcomeNone
	}
	return components.Round.Get(re).Outcome
}

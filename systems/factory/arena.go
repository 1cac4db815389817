package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena adds the arena bounds singleton plus every ground rect and
// moving platform. The collision space must already exist.
func CreateArena(ecs *ecs.ECS, data *leveldata.ArenaData) *donburi.Entry {
	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{
		Name:   data.Name,
		Width:  data.Width,
		Height: data.Height,
	})

	for _, r := range data.Ground {
		CreateGround(ecs, r)
	}
	for _, p := range data.Platforms {
		CreateMovingPlatform(ecs, p)
	}
	return arena
}

// CreateRound adds the round singleton for the given duellists.
func CreateRound(ecs *ecs.ECS, player, enemy *donburi.Entry, duration float64) *donburi.Entry {
	round := archetypes.Round.Spawn(ecs)
	components.Round.SetValue(round, components.RoundData{
		Timer:    duration,
		Duration: duration,
		Player:   player.Entity(),
		Enemy:    enemy.Entity(),
	})
	return round
}

package systems

import "github.com/yohamta/donburi/ecs"

// Pipeline returns the combat systems in tick order. Input polling is left
// to the front-end so the same order runs headless.
func Pipeline() []ecs.System {
	return []ecs.System{
		UpdateRound,
		UpdatePlayers,
		UpdateEnemies,
		UpdateTasks,
		UpdateActorPhysics,
		UpdatePlatforms,
		UpdateAttachments,
		UpdateArrows,
		UpdateEffects,
		UpdateDeaths,
	}
}

// AddPipeline registers Pipeline on an ECS.
func AddPipeline(e *ecs.ECS) {
	for _, s := range Pipeline() {
		e.AddSystem(s)
	}
}

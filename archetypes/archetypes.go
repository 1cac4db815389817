package archetypes

import (
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Platform = newArchetype(
		tags.Ground,
		tags.Platform,
		components.Object,
		components.Platform,
		components.Tween,
	)
	Player = newArchetype(
		tags.Player,
		components.Actor,
		components.Player,
		components.Object,
		components.Physics,
		components.Health,
		components.Cooldown,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Actor,
		components.Enemy,
		components.Object,
		components.Physics,
		components.Health,
		components.Cooldown,
	)
	Arrow = newArchetype(
		tags.Arrow,
		components.Arrow,
		components.Object,
		components.Physics,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
	)
	Popup = newArchetype(
		tags.Popup,
		components.Popup,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Arena = newArchetype(
		components.Arena,
	)
	Round = newArchetype(
		components.Round,
	)
	Combat = newArchetype(
		components.Combat,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}

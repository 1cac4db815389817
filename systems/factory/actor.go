package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	cfg "github.com/automoto/archerduel/config"
	"github.com/automoto/archerduel/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player archer with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := components.NewObject(x-cfg.Player.CollisionWidth/2, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight)
	obj.AddTags(tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	if space := spaceOf(ecs); space != nil {
		space.Add(obj)
	}

	components.Actor.SetValue(player, components.ActorData{
		Name:       cfg.Player.Name,
		Faction:    cfg.FactionPlayer,
		Loadout:    loadout(cfg.Player.Loadout),
		FacingX:    cfg.DirectionRight,
		MoveSpeed:  cfg.Player.MoveSpeed,
		FireOffset: components.Vector{X: cfg.Player.FireOffsetX, Y: cfg.Player.FireOffsetY},
		Target:     donburi.Null,
		ActingSlot: -1,
	})
	defaultSkill := cfg.SkillNone
	if len(cfg.Player.Loadout) > 0 {
		defaultSkill = cfg.Player.Loadout[0]
	}
	components.Player.SetValue(player, components.PlayerData{
		DefaultSkill:    defaultSkill,
		AutoFireEnabled: cfg.Player.AutoFireWhenIdle,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Simulated:    true,
	})
	components.Health.Set(player, components.NewHealth(cfg.Player.Health))
	components.Cooldown.Set(player, components.NewCooldowns(len(cfg.Player.Loadout)))

	return player
}

// CreateEnemy spawns the AI archer with its feet at (x, y), facing left.
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	obj := components.NewObject(x-cfg.Enemy.CollisionWidth/2, y, cfg.Enemy.CollisionWidth, cfg.Enemy.CollisionHeight)
	obj.AddTags(tags.ResolvEnemy)
	obj.Data = enemy
	components.Object.SetValue(enemy, components.ObjectData{Object: obj})
	if space := spaceOf(ecs); space != nil {
		space.Add(obj)
	}

	components.Actor.SetValue(enemy, components.ActorData{
		Name:       cfg.Enemy.Name,
		Faction:    cfg.FactionEnemy,
		Loadout:    loadout(cfg.Enemy.Loadout),
		FacingX:    cfg.DirectionLeft,
		MoveSpeed:  cfg.Enemy.MoveSpeed,
		FireOffset: components.Vector{X: cfg.Enemy.FireOffsetX, Y: cfg.Enemy.FireOffsetY},
		Target:     donburi.Null,
		ActingSlot: -1,
	})
	components.Enemy.SetValue(enemy, components.EnemyData{
		Phase:       cfg.EnemySpawnDelay,
		PhaseTimer:  cfg.Enemy.SpawnDelay,
		PendingSlot: -1,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		Simulated:    true,
	})
	components.Health.Set(enemy, components.NewHealth(cfg.Enemy.Health))
	components.Cooldown.Set(enemy, components.NewCooldowns(len(cfg.Enemy.Loadout)))

	return enemy
}

// loadout copies a configured loadout, capped at MaxLoadout slots.
func loadout(skills []cfg.SkillType) []cfg.SkillType {
	n := len(skills)
	if n > cfg.MaxLoadout {
		n = cfg.MaxLoadout
	}
	out := make([]cfg.SkillType, n)
	copy(out, skills[:n])
	return out
}

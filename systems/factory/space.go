package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// spaceOf returns the world's collision space, or nil before one exists.
func spaceOf(ecs *ecs.ECS) *resolv.Space {
	e, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

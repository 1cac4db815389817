package factory

import (
	"github.com/automoto/archerduel/archetypes"
	"github.com/automoto/archerduel/components"
	"github.com/automoto/archerduel/shared/leveldata"
	"github.com/automoto/archerduel/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround adds a static surface. Arrows stick to it and actors stand
// on it.
func CreateGround(ecs *ecs.ECS, r leveldata.Rect) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	object := components.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvGround)
	object.Data = ground
	components.Object.SetValue(ground, components.ObjectData{Object: object})
	if space := spaceOf(ecs); space != nil {
		space.Add(object)
	}
	return ground
}

// CreateMovingPlatform adds a surface that travels to its offset and back
// once per period.
func CreateMovingPlatform(ecs *ecs.ECS, p leveldata.MovingPlatform) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := components.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvGround)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	if space := spaceOf(ecs); space != nil {
		space.Add(object)
	}

	components.Platform.SetValue(platform, components.PlatformData{
		BaseX:   p.X,
		BaseY:   p.Y,
		TravelX: p.TravelX,
		TravelY: p.TravelY,
	})

	// The sequence drives progress 0 -> 1 -> 0; the platform system maps it
	// onto the travel offset and restarts it when it completes.
	half := float32(p.Period / 2)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, half, ease.InOutSine),
		gween.New(1, 0, half, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	return platform
}

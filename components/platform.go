package components

import "github.com/yohamta/donburi"

// PlatformData tracks a tweened platform's motion so riders can follow it.
type PlatformData struct {
	BaseX, BaseY   float64
	TravelX        float64
	TravelY        float64
	DeltaX, DeltaY float64 // movement applied this tick
}

var Platform = donburi.NewComponentType[PlatformData]()

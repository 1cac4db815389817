package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	SpeedX       float64 // world units / s
	SpeedY       float64
	Gravity      float64
	MaxFallSpeed float64
	Simulated    bool           // false freezes the body (stuck arrows, dead actors)
	OnGround     *resolv.Object // surface under the feet, nil while airborne
}

var Physics = donburi.NewComponentType[PhysicsData]()

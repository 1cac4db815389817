package components

import "github.com/yohamta/donburi"

// DeathData marks an actor that has been force-stopped. Timer counts down
// in seconds; at zero the actor is deactivated.
type DeathData struct {
	Timer       float64
	Deactivated bool
}

var Death = donburi.NewComponentType[DeathData]()

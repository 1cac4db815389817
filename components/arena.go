package components

import "github.com/yohamta/donburi"

// ArenaData holds the playable bounds in world units. Singleton.
type ArenaData struct {
	Name          string
	Width, Height float64
}

var Arena = donburi.NewComponentType[ArenaData]()

// Package leveldata provides TMX arena parsing. It has no dependencies on
// ebitengine, donburi, or resolv. Pure data only.
package leveldata

// ArenaData holds everything the duel needs from a TMX arena, converted to
// world units (y-up, origin at the bottom-left of the map).
type ArenaData struct {
	Name      string
	Width     float64
	Height    float64
	Ground    []Rect
	Platforms []MovingPlatform
	Spawns    map[string]Point
}

// Rect is an axis-aligned box; X, Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// MovingPlatform is a ground rect that travels back and forth.
type MovingPlatform struct {
	Rect
	TravelX float64 // world units
	TravelY float64
	Period  float64 // seconds for a full there-and-back cycle
}

// Point is a spawn location (feet position).
type Point struct {
	X, Y float64
}

// Spawn names
const (
	SpawnPlayer = "player"
	SpawnEnemy  = "enemy"
)

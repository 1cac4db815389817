package components

import (
	"github.com/automoto/archerduel/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// ObjectData wraps the entity's collision box. The resolv object is kept in
// arena pixels (world units * PixelsPerUnit, y-up, Y at the bottom edge) so
// the space's cell grid stays pixel sized; gameplay code goes through the
// world-unit accessors below.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// NewObject builds a collision box from world-unit bounds.
func NewObject(x, y, w, h float64, tags ...string) *resolv.Object {
	ppu := config.Arena.PixelsPerUnit
	return resolv.NewObject(x*ppu, y*ppu, w*ppu, h*ppu, tags...)
}

// Position returns the bottom-left corner in world units.
func (o *ObjectData) Position() dmath.Vec2 {
	ppu := config.Arena.PixelsPerUnit
	return dmath.Vec2{X: o.X / ppu, Y: o.Y / ppu}
}

// SetPosition moves the bottom-left corner, in world units.
func (o *ObjectData) SetPosition(x, y float64) {
	ppu := config.Arena.PixelsPerUnit
	o.X = x * ppu
	o.Y = y * ppu
}

// Move shifts the box by a world-unit delta.
func (o *ObjectData) Move(dx, dy float64) {
	ppu := config.Arena.PixelsPerUnit
	o.X += dx * ppu
	o.Y += dy * ppu
}

// Size returns width and height in world units.
func (o *ObjectData) Size() (float64, float64) {
	ppu := config.Arena.PixelsPerUnit
	return o.W / ppu, o.H / ppu
}

// Center returns the middle of the box in world units.
func (o *ObjectData) Center() dmath.Vec2 {
	ppu := config.Arena.PixelsPerUnit
	return dmath.Vec2{X: (o.X + o.W/2) / ppu, Y: (o.Y + o.H/2) / ppu}
}

// Feet returns the bottom-center point in world units.
func (o *ObjectData) Feet() dmath.Vec2 {
	ppu := config.Arena.PixelsPerUnit
	return dmath.Vec2{X: (o.X + o.W/2) / ppu, Y: o.Y / ppu}
}

// Top returns the top edge in world units.
func (o *ObjectData) Top() float64 {
	return (o.Y + o.H) / config.Arena.PixelsPerUnit
}

// Overlaps reports whether two boxes intersect after moving a by (dx, dy)
// pixels. Touching edges do not count.
func Overlaps(a *resolv.Object, dx, dy float64, b *resolv.Object) bool {
	return a.X+dx < b.X+b.W && b.X < a.X+dx+a.W &&
		a.Y+dy < b.Y+b.H && b.Y < a.Y+dy+a.H
}

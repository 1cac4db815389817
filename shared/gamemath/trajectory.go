package gamemath

import (
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the world-space vector type (world units, y-up).
type Vec2 = dmath.Vec2

// ComputeLaunchVelocity returns the initial velocity that carries a projectile
// from start to target in exactly flightTime seconds under a constant downward
// gravity. flightTime must be positive.
func ComputeLaunchVelocity(start, target Vec2, flightTime, gravity float64) Vec2 {
	if flightTime <= 0 {
		panic(fmt.Sprintf("gamemath: flight time must be positive, got %v", flightTime))
	}
	dx := target.X - start.X
	dy := target.Y - start.Y

	vx := math.Abs(dx) / flightTime * Sign(dx)
	vy := (dy + 0.5*gravity*flightTime*flightTime) / flightTime
	return Vec2{X: vx, Y: vy}
}

// PositionAt evaluates p(t) = start + v*t - 0.5*g*t^2 (gravity pulls toward -y).
func PositionAt(start, velocity Vec2, gravity, t float64) Vec2 {
	return Vec2{
		X: start.X + velocity.X*t,
		Y: start.Y + velocity.Y*t - 0.5*gravity*t*t,
	}
}

// Rotate rotates v counter-clockwise by degrees.
func Rotate(v Vec2, degrees float64) Vec2 {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sincos(rad)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Length returns |v|.
func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// LengthSq returns |v|^2.
func LengthSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length, or the zero vector.
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Scale returns v*s.
func Scale(v Vec2, s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AngleDegrees returns atan2(vy, vx) in degrees.
func AngleDegrees(v Vec2) float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

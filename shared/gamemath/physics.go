package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// FacingSign returns the facing direction for a horizontal delta, keeping
// the current facing when the delta is zero.
func FacingSign(dx, current float64) float64 {
	if dx > 0 {
		return 1
	}
	if dx < 0 {
		return -1
	}
	return current
}

// JumpVelocity returns the upward speed needed to reach height under gravity.
func JumpVelocity(gravity, height float64) float64 {
	return math.Sqrt(2 * gravity * height)
}

// HangTime returns the time to rise and fall back to the launch height.
func HangTime(gravity, vy float64) float64 {
	if gravity <= 0 {
		return 0
	}
	return 2 * vy / gravity
}

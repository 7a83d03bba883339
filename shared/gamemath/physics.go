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

// Decay applies exponential slowing: v - v*factor*dt.
func Decay(v, factor, dt float64) float64 {
	return v - v*factor*dt
}

// Accelerate adds input*max*accel*dt to v and clamps the result to ±max.
func Accelerate(v, input, max, accel, dt float64) float64 {
	return ClampSpeed(v+input*max*accel*dt, max)
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

// Opposes reports whether a and b point in opposite directions.
func Opposes(a, b float64) bool {
	return Sign(a)*Sign(b) < 0
}

// Snap returns ±1 with the sign of v for any non-zero v and 0 otherwise.
func Snap(v float64) float64 {
	return math.Copysign(math.Ceil(math.Abs(v)), v)
}

// Facing returns dir's sign, keeping fallback when dir is zero.
func Facing(dir, fallback float64) float64 {
	if s := Sign(dir); s != 0 {
		return s
	}
	return fallback
}

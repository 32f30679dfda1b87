package common

import "math"

// Tween returns the step that moves current toward target when applied as
// current += Tween(current, target, rate). The gap shrinks by a constant
// factor each frame and never closes exactly. Rates below 1 snap.
func Tween(current, target, rate float64) float64 {
	if rate < 1 || math.IsNaN(rate) {
		rate = 1
	}
	return (target - current) / rate
}

// Approach applies one Tween step to v in place.
func Approach(v *float64, target, rate float64) {
	if v == nil {
		return
	}
	*v += Tween(*v, target, rate)
}

func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// NormalizeAngle maps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// WrappedDelta returns the shortest signed turn from−to, in (-π, π].
func WrappedDelta(from, to float64) float64 {
	return NormalizeAngle(from - to)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func Deg(d float64) float64 {
	return d * math.Pi / 180
}

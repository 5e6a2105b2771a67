package cubeanim

import "math"

// EaseInOutCubic maps linear progress t in [0,1] to eased progress with zero
// velocity at both ends. Values outside [0,1] are clamped.
func EaseInOutCubic(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

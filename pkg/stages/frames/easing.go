package frames

import "math"

// easeOutCubic maps a linear progress value onto a fast-start
// slow-finish curve. Input is clamped to [0, 1].
func easeOutCubic(t float64) float64 {
	t = clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// linear is an identity easing clamped to [0, 1], used for edge fades.
func linear(t float64) float64 {
	return clamp01(t)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

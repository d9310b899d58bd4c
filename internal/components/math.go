package components

import "math"

func sqrtf(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func acosf(x float32) float32 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return float32(math.Acos(float64(x)))
}

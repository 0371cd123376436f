package core

import "math"

// Color is a Vec3 holding linear RGB components
type Color = Vec3

// RGB is a display-ready 8-bit color
type RGB struct {
	R, G, B uint8
}

var intensity = NewInterval(0.000, 0.999)

// LinearToGamma applies the gamma 2 transform to a linear component
func LinearToGamma(linear float64) float64 {
	return math.Sqrt(linear)
}

// ToRGB maps a linear color to 8-bit channels: gamma, clamp to [0, 0.999], scale by 255.999
func ToRGB(c Color) RGB {
	return RGB{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
	}
}

func toByte(linear float64) uint8 {
	return uint8(255.999 * intensity.Clamp(LinearToGamma(linear)))
}

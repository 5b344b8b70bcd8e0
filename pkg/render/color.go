// Package render implements the software rasterization and procedural
// shading pipeline for the orrery renderer.
package render

import "image/color"

// Color is an alias for color.RGBA for convenience.
type Color = color.RGBA

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Colors for convenience
var (
	ColorBlack = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite = Color{R: 255, G: 255, B: 255, A: 255}
	ColorSpace = Color{R: 5, G: 6, B: 18, A: 255}
)

// Lerp linearly interpolates from a to b by t in [0, 1]. The endpoints
// are exact: Lerp(a, b, 0) == a and Lerp(a, b, 1) == b.
func Lerp(a, b Color, t float64) Color {
	return Color{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return clampChannel(v)
}

// MultiplyColor scales each channel by s, clamping into [0, 255].
func MultiplyColor(c Color, s float64) Color {
	return Color{
		R: clampChannel(float64(c.R) * s),
		G: clampChannel(float64(c.G) * s),
		B: clampChannel(float64(c.B) * s),
		A: c.A,
	}
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// Hex packs a color into 0xRRGGBB form for packed pixel buffers.
func Hex(c Color) uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// FromHex unpacks a 0xRRGGBB value into an opaque Color.
func FromHex(v uint32) Color {
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
}

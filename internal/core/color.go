package core

import (
	"fmt"
	"math"
)

// Color is an opaque RGB color with channels in [0, 1].
// It implements image/color.Color so presenters can pass it straight to drawing APIs.
type Color struct {
	R, G, B float64
}

// RGB is shorthand for building a Color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colors used by the render model.
var (
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(1, 1, 1)
	ColorBackground = RGB(0.1, 0.1, 0.2) // Dark blue
	ColorPaddle     = RGB(0.0, 0.7, 1.0) // Blue
	ColorBall       = RGB(1.0, 0.8, 0.0) // Yellow
)

// Scale multiplies every channel by f, capping each at 1.
func (c Color) Scale(f float64) Color {
	return Color{
		R: math.Min(c.R*f, 1),
		G: math.Min(c.G*f, 1),
		B: math.Min(c.B*f, 1),
	}
}

// Lerp interpolates from c toward other; t=0 yields c, t=1 yields other.
func (c Color) Lerp(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel8(c.R), channel8(c.G), channel8(c.B))
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

// RGBA is a Color with straight (non-premultiplied) alpha in [0, 1].
type RGBA struct {
	Color
	A float64
}

// WithAlpha attaches an alpha value to c.
func (c Color) WithAlpha(a float64) RGBA {
	return RGBA{Color: c, A: ClampF(a, 0, 1)}
}

// Over composites the translucent color over an opaque backdrop.
func (c RGBA) Over(backdrop Color) Color {
	return backdrop.Lerp(c.Color, c.A)
}

// RGBA implements image/color.Color with premultiplied channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = channel16(c.A)
	return channel16(c.R * c.A), channel16(c.G * c.A), channel16(c.B * c.A), a
}

func channel8(v float64) uint8 {
	return uint8(math.Round(ClampF(v, 0, 1) * 0xff))
}

func channel16(v float64) uint32 {
	return uint32(math.Round(ClampF(v, 0, 1) * 0xffff))
}

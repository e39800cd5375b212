// Package colors provides the hex color helpers used to shade voxel faces.
package colors

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a "#rgb" or "#rrggbb" color. The leading '#' is optional.
// The returned color is fully opaque.
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %v", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as lowercase "#rrggbb". Alpha is ignored.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lighten adds round(2.55*percent) to every channel of c, clamped to [0,255].
// Halves round toward positive infinity.
func Lighten(c color.RGBA, percent float64) color.RGBA {
	amt := int(math.Floor(2.55*percent + 0.5))
	return color.RGBA{
		R: clamp(int(c.R) + amt),
		G: clamp(int(c.G) + amt),
		B: clamp(int(c.B) + amt),
		A: c.A,
	}
}

// Darken is Lighten with a negated amount.
func Darken(c color.RGBA, amount float64) color.RGBA {
	return Lighten(c, -amount)
}

// HueShift rotates the hue of c by degrees in HSL space.
// The resulting hue is wrapped into [0,360).
func HueShift(c color.RGBA, degrees float64) color.RGBA {
	cf := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	h, s, l := cf.Hsl()
	h = math.Mod(h+degrees, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: c.A}
}

func clamp(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

package voxels

import (
	"image/color"

	"github.com/gmlewis/isovox/colors"
)

type faceColorKey struct {
	o Orientation
	c color.RGBA
}

// FaceColor returns the displayed color of an o-facing face of a voxel
// with color base. Unknown orientations return base unchanged.
func (s *Scene) FaceColor(o Orientation, base color.RGBA) color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.faceColor(o, base)
}

func (s *Scene) faceColor(o Orientation, base color.RGBA) color.RGBA {
	if !o.valid() {
		return base
	}
	key := faceColorKey{o: o, c: base}
	if c, ok := s.faceColors[key]; ok {
		return c
	}

	lc := s.p.Light
	c := base
	switch o {
	case lc.LightFace:
		c = colors.Lighten(colors.HueShift(base, lc.LightHue), lc.Light)
	case lc.ShadowFace:
		c = colors.Darken(colors.HueShift(base, lc.ShadowHue), lc.Shadow)
	}
	s.faceColors[key] = c
	return c
}

// Package preview rasterizes merged outlines into PNG images.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"github.com/gmlewis/isovox/voxels"
	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/path"
)

// Background is the default preview background.
var Background = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// Draw fills p with c on dst using the non-zero winding rule.
func Draw(dst draw.Image, p path.Path, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	ox, oy := float32(b.Min.X), float32(b.Min.Y)

	empty := true
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			z.MoveTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
		case path.CmdLineTo:
			z.LineTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy)
			empty = false
		case path.CmdQuadTo:
			z.QuadTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy, float32(pts[1].X)-ox, float32(pts[1].Y)-oy)
			empty = false
		case path.CmdCubeTo:
			z.CubeTo(float32(pts[0].X)-ox, float32(pts[0].Y)-oy,
				float32(pts[1].X)-ox, float32(pts[1].Y)-oy,
				float32(pts[2].X)-ox, float32(pts[2].Y)-oy)
			empty = false
		case path.CmdClose:
			z.ClosePath()
		}
	}
	if empty {
		return
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Render draws the outlines of res, in order, on a width x height image.
func Render(res *voxels.Result, width, height float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(width)), int(math.Ceil(height))))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	for _, o := range res.Outlines {
		Draw(img, o.Path(), o.Color)
	}
	return img
}

// WritePNG writes img to filename.
func WritePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("Create: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("PNG encode: %v", err)
	}
	return f.Close()
}

package voxels

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Orientation is one of the three visible faces of a voxel.
type Orientation int

const (
	Top Orientation = iota
	Right
	Left
)

// orientations lists the faces in emission order.
var orientations = [...]Orientation{Top, Right, Left}

func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

func (o Orientation) valid() bool {
	return o == Top || o == Right || o == Left
}

// ParseOrientation parses "top", "right" or "left".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown orientation %q", s)
}

// Triangle is a screen-space triangle.
type Triangle [3]mgl64.Vec2

// FaceTriangles splits one face of a voxel, given its Corners, into two
// triangles. The vertex order is significant: neighboring faces must wind
// consistently for their shared edges to cancel.
func FaceTriangles(c [8]mgl64.Vec2, o Orientation) [2]Triangle {
	switch o {
	case Top:
		return [2]Triangle{{c[4], c[5], c[7]}, {c[5], c[6], c[7]}}
	case Right:
		return [2]Triangle{{c[7], c[6], c[2]}, {c[7], c[2], c[3]}}
	case Left:
		return [2]Triangle{{c[4], c[7], c[0]}, {c[0], c[7], c[3]}}
	}
	panic(fmt.Sprintf("FaceTriangles: invalid orientation %v", o))
}

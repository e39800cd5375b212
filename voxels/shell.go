package voxels

import "fmt"

// Shell is one of the three outward surfaces of the whole solid.
type Shell byte

const (
	ShellTop   Shell = 't'
	ShellLeft  Shell = 'l'
	ShellRight Shell = 'r'
)

// ShellKey identifies the cell of a shell covered by a triangle.
// Triangles of different voxels with equal keys project onto the same
// screen cell, and only the front-most one is visible.
type ShellKey struct {
	Shell Shell
	X, Y  int
}

func (k ShellKey) String() string {
	return fmt.Sprintf("f%cx%vy%v", k.Shell, k.X, k.Y)
}

// shellGrid holds the grid dimensions used by the shell and adjacency
// coordinate systems of one render pass.
type shellGrid struct {
	size int
	maxZ int
}

// shellKey classifies face triangle face (1 or 2) of orientation o of the
// voxel at pos onto the right, left or top shell, in that precedence.
func (g shellGrid) shellKey(pos Position, o Orientation, face int) ShellKey {
	px, py := pos.X, pos.Y
	zDiff := g.maxZ - pos.Z

	offX := b2i(!(o == Top || (o == Left && face == 1)))
	offX2 := b2i(!(o == Right || (o == Top && face == 2)))
	offY := b2i(!(o == Top || (o == Right && face == 1)))
	offY2 := b2i(!(o == Left || (o == Top && face == 1)))

	switch {
	case g.size-px-offX < zDiff && py > g.size-px+offX2:
		return ShellKey{
			Shell: ShellRight,
			X:     g.rightFaceX(pos, o, face),
			Y:     g.rightFaceY(pos, o, face, zDiff),
		}
	case py-1-offY < zDiff && g.size-px+1 > py-1+offY2:
		return ShellKey{
			Shell: ShellLeft,
			X:     g.leftFaceX(pos, o, face),
			Y:     g.leftFaceY(pos, o, face, zDiff),
		}
	}
	return ShellKey{
		Shell: ShellTop,
		X:     g.topFaceX(pos, o, face, zDiff),
		Y:     g.topFaceY(pos, o, face, zDiff),
	}
}

// Per orientation and face, the y offsets of the shell coordinates.
var (
	topRightYOffsets = [...][2]int{Top: {-1, 0}, Right: {1, 2}, Left: {0, 1}}
	leftYOffsets     = [...][2]int{Top: {0, -1}, Right: {0, 1}, Left: {1, 2}}
)

func (g shellGrid) topFaceX(pos Position, o Orientation, face, zDiff int) int {
	off := -b2i(o == Left || (o == Right && face == 2))
	return off - zDiff + pos.Y
}

func (g shellGrid) topFaceY(pos Position, o Orientation, face, zDiff int) int {
	return topRightYOffsets[o][face-1] + (pos.X+zDiff)*2
}

func (g shellGrid) rightFaceX(pos Position, o Orientation, face int) int {
	off := -b2i(o == Left || (o == Top && face == 1))
	return off + pos.X + pos.Y - g.size
}

func (g shellGrid) rightFaceY(pos Position, o Orientation, face, zDiff int) int {
	return topRightYOffsets[o][face-1] + (zDiff-(g.size-pos.X))*2
}

func (g shellGrid) leftFaceX(pos Position, o Orientation, face int) int {
	off := -b2i(o == Left || (o == Top && face == 1))
	return off + pos.X + pos.Y
}

func (g shellGrid) leftFaceY(pos Position, o Orientation, face, zDiff int) int {
	return leftYOffsets[o][face-1] + (zDiff-pos.Y+1)*2
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

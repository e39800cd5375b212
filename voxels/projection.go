package voxels

import "github.com/go-gl/mathgl/mgl64"

// Origin returns the screen coordinates of the left corner of the bottom
// rhombus of the voxel at pos.
func (s *Scene) Origin(pos Position) mgl64.Vec2 {
	halfX, halfY := 0.5*s.voxelXSize, 0.5*s.voxelYSize
	return mgl64.Vec2{
		s.offset + halfX*float64(pos.X-1) + halfX*float64(pos.Y-1),
		s.stageY(pos.Z) + halfY*float64(pos.X-1) - halfY*float64(pos.Y-1),
	}
}

// stageY returns the screen y coordinate of the given stage.
func (s *Scene) stageY(stage int) float64 {
	return s.p.Height - (float64(s.p.Size)/2*s.voxelYSize + s.offset + float64(stage-1)*s.voxelYSize)
}

// Corners returns the 8 projected corners of the voxel at pos.
// The first 4 are the bottom rhombus (left, back, right, front) and the
// last 4 are the same points raised by one voxel height.
func (s *Scene) Corners(pos Position) [8]mgl64.Vec2 {
	o := s.Origin(pos)
	halfX, halfY := 0.5*s.voxelXSize, 0.5*s.voxelYSize
	var c [8]mgl64.Vec2
	c[0] = o
	c[1] = o.Add(mgl64.Vec2{halfX, -halfY})
	c[2] = o.Add(mgl64.Vec2{s.voxelXSize, 0})
	c[3] = o.Add(mgl64.Vec2{halfX, halfY})
	up := mgl64.Vec2{0, -s.voxelYSize}
	for i := 0; i < 4; i++ {
		c[i+4] = c[i].Add(up)
	}
	return c
}

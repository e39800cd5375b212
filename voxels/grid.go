package voxels

// The adjacency grid is a rhombic grid of triangles, 2*(size+maxZ) wide.
// Every visible triangle is indexed by its top-shell coordinates, whatever
// shell it really belongs to, so that neighbors across shells share one
// coordinate system.

// gridIndex returns the adjacency index of top-shell coordinates (x, y).
func (g shellGrid) gridIndex(x, y int) int {
	return (g.size+g.maxZ)*2*(x+g.maxZ-1) + y
}

// neighbors returns the adjacency indexes of the three triangles sharing an
// edge with the triangle at index.
func (g shellGrid) neighbors(index int) [3]int {
	offset := (g.size+g.maxZ)*2 - 1
	if index%2 != 0 {
		return [3]int{index - 1, index + 1, index - offset}
	}
	return [3]int{index + offset, index + 1, index - 1}
}

// indexFacets sets the adjacency coordinates of every facet.
func (g shellGrid) indexFacets(facets []*Facet) {
	for _, f := range facets {
		zDiff := g.maxZ - f.Voxel.Z
		x := g.topFaceX(f.Voxel, f.Orientation, f.FaceIndex, zDiff)
		y := g.topFaceY(f.Voxel, f.Orientation, f.FaceIndex, zDiff)
		f.TopFaceX = x + g.maxZ
		f.TopFaceY = y
		f.GridIndex = g.gridIndex(x, y)
	}
}

package voxels

import "image/color"

// Facet is one of the two triangles of a visible voxel face.
type Facet struct {
	Points      Triangle
	Color       color.RGBA
	Orientation Orientation
	FaceIndex   int // 1 or 2
	ShellKey    ShellKey

	// Adjacency coordinates, set once the visible facets are known.
	TopFaceX  int
	TopFaceY  int
	GridIndex int

	// Voxel is the position of the owning voxel.
	Voxel Position
}

// buildFacets emits the six triangles of every voxel, back to front.
func (s *Scene) buildFacets(g shellGrid) []*Facet {
	sorted := s.sortedVoxels()
	facets := make([]*Facet, 0, 6*len(sorted))
	for _, v := range sorted {
		corners := s.Corners(v.Position)
		for _, o := range orientations {
			c := s.faceColor(o, v.Color)
			for i, tri := range FaceTriangles(corners, o) {
				face := i + 1
				facets = append(facets, &Facet{
					Points:      tri,
					Color:       c,
					Orientation: o,
					FaceIndex:   face,
					ShellKey:    g.shellKey(v.Position, o, face),
					Voxel:       v.Position,
				})
			}
		}
	}
	return facets
}

// eraseUndershell keeps, for every shell key, only the facet of the voxel
// with the greatest ZIndex. The result keeps the order in which keys were
// first seen.
func (s *Scene) eraseUndershell(facets []*Facet) []*Facet {
	index := make(map[ShellKey]int, len(facets))
	var result []*Facet
	for _, f := range facets {
		i, ok := index[f.ShellKey]
		if !ok {
			index[f.ShellKey] = len(result)
			result = append(result, f)
			continue
		}
		if s.voxels[result[i].Voxel].ZIndex < s.voxels[f.Voxel].ZIndex {
			result[i] = f
		}
	}
	return result
}

// Package voxels converts a sparse voxel grid into the merged flat-shaded
// outlines of its isometric projection.
package voxels

import (
	"fmt"
	"image/color"
	"sort"
	"sync"
)

// Position is the 1-based grid position of a voxel.
// X and Y lie in [1,Size] and Z is the stage (height layer).
type Position struct {
	X, Y, Z int
}

func (p Position) String() string {
	return fmt.Sprintf("voxel-x%v-y%v-z%v", p.X, p.Y, p.Z)
}

// Voxel is a colored unit cube of the grid.
type Voxel struct {
	Position
	Color color.RGBA
	// ZIndex orders voxels from back to front. It is only used for
	// depth comparisons.
	ZIndex int
}

// Sizes represents the extent of a box of voxels.
// A zero component is treated as 1.
type Sizes struct {
	X, Y, Z int
}

// Scene holds the voxels of one rendering surface.
// A Scene is safe for concurrent use; mutations and renders are serialized.
type Scene struct {
	p Params

	voxelXSize float64
	voxelYSize float64
	offset     float64

	mu     sync.Mutex
	voxels map[Position]*Voxel

	// caches, reset on every mutation
	maxZ       int
	maxZValid  bool
	faceColors map[faceColorKey]color.RGBA
}

// New returns an empty scene for the provided parameters.
func New(p Params) (*Scene, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	voxelXSize := p.Width / (2*p.VoxelOffset + float64(p.Size))
	return &Scene{
		p:          p,
		voxelXSize: voxelXSize,
		voxelYSize: p.DepthRatio * voxelXSize,
		offset:     p.Width / float64(p.Size) * p.VoxelOffset,
		voxels:     map[Position]*Voxel{},
		faceColors: map[faceColorKey]color.RGBA{},
	}, nil
}

// Params returns the parameters the scene was created with.
func (s *Scene) Params() Params { return s.p }

// ZIndex returns the depth order of a position.
func (s *Scene) ZIndex(pos Position) int {
	maxPerStage := pos.Z * (2*s.p.Size - 1)
	return maxPerStage - (s.p.Size - pos.X) - (pos.Y - 1)
}

// AddVoxel stores a voxel at pos, replacing any voxel already there.
func (s *Scene) AddVoxel(pos Position, c color.RGBA) Voxel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addVoxel(pos, c)
}

func (s *Scene) addVoxel(pos Position, c color.RGBA) Voxel {
	v := &Voxel{Position: pos, Color: c, ZIndex: s.ZIndex(pos)}
	s.voxels[pos] = v
	s.invalidate()
	return *v
}

// DeleteVoxel removes the voxel at pos. It is a no-op if there is none.
func (s *Scene) DeleteVoxel(pos Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteVoxel(pos)
}

func (s *Scene) deleteVoxel(pos Position) {
	if _, ok := s.voxels[pos]; !ok {
		return
	}
	delete(s.voxels, pos)
	s.invalidate()
}

// AddBox fills the box starting at pos with voxels of color c.
func (s *Scene) AddBox(pos Position, c color.RGBA, sizes Sizes) []Voxel {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []Voxel
	for _, p := range boxPositions(pos, sizes) {
		result = append(result, s.addVoxel(p, c))
	}
	return result
}

// DeleteBox removes every voxel of the box starting at pos.
func (s *Scene) DeleteBox(pos Position, sizes Sizes) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range boxPositions(pos, sizes) {
		s.deleteVoxel(p)
	}
}

// AddFullSlab fills one stage of the grid, leaving a margin of offset
// voxels on every side.
func (s *Scene) AddFullSlab(stage int, c color.RGBA, offset int) []Voxel {
	n := s.p.Size - 2*offset
	if n <= 0 {
		return nil
	}
	return s.AddBox(Position{X: 1 + offset, Y: 1 + offset, Z: stage}, c, Sizes{X: n, Y: n, Z: 1})
}

// VoxelAt returns the voxel stored at pos.
func (s *Scene) VoxelAt(pos Position) (Voxel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.voxels[pos]
	if !ok {
		return Voxel{}, false
	}
	return *v, true
}

// Len returns the number of stored voxels.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.voxels)
}

// MaxZ returns the highest stage holding a voxel, or 0 for an empty scene.
func (s *Scene) MaxZ() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getMaxZ()
}

func (s *Scene) getMaxZ() int {
	if !s.maxZValid {
		s.maxZ = 0
		for pos := range s.voxels {
			if pos.Z > s.maxZ {
				s.maxZ = pos.Z
			}
		}
		s.maxZValid = true
	}
	return s.maxZ
}

// Voxels returns all voxels sorted back to front.
func (s *Scene) Voxels() []Voxel {
	s.mu.Lock()
	defer s.mu.Unlock()
	sorted := s.sortedVoxels()
	result := make([]Voxel, 0, len(sorted))
	for _, v := range sorted {
		result = append(result, *v)
	}
	return result
}

// sortedVoxels orders by ZIndex. Equal ZIndex values only occur within one
// stage, where X and then Y break the tie.
func (s *Scene) sortedVoxels() []*Voxel {
	result := make([]*Voxel, 0, len(s.voxels))
	for _, v := range s.voxels {
		result = append(result, v)
	}
	sort.Slice(result, func(a, b int) bool {
		va, vb := result[a], result[b]
		if va.ZIndex != vb.ZIndex {
			return va.ZIndex < vb.ZIndex
		}
		if va.X != vb.X {
			return va.X < vb.X
		}
		return va.Y < vb.Y
	})
	return result
}

// Stage returns a new scene with the same parameters holding only the
// voxels of stage z.
func (s *Scene) Stage(z int) *Scene {
	s.mu.Lock()
	defer s.mu.Unlock()
	stage := &Scene{
		p:          s.p,
		voxelXSize: s.voxelXSize,
		voxelYSize: s.voxelYSize,
		offset:     s.offset,
		voxels:     map[Position]*Voxel{},
		faceColors: map[faceColorKey]color.RGBA{},
	}
	for pos, v := range s.voxels {
		if pos.Z == z {
			vc := *v
			stage.voxels[pos] = &vc
		}
	}
	return stage
}

func (s *Scene) invalidate() {
	s.maxZValid = false
	clear(s.faceColors)
}

func boxPositions(pos Position, sizes Sizes) []Position {
	nx, ny, nz := max(sizes.X, 1), max(sizes.Y, 1), max(sizes.Z, 1)
	result := make([]Position, 0, nx*ny*nz)
	for dx := 0; dx < nx; dx++ {
		for dy := 0; dy < ny; dy++ {
			for dz := 0; dz < nz; dz++ {
				result = append(result, Position{X: pos.X + dx, Y: pos.Y + dy, Z: pos.Z + dz})
			}
		}
	}
	return result
}

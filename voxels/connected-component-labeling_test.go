package voxels

import (
	"fmt"
	"image/color"
	"reflect"
	"testing"
)

func renderChunks(s *Scene) ([]*Facet, []*Chunk) {
	g := shellGrid{size: s.p.Size, maxZ: s.getMaxZ()}
	facets := s.eraseUndershell(s.buildFacets(g))
	g.indexFacets(facets)
	return facets, chunkFacets(facets, g)
}

func TestChunkFacets(t *testing.T) {
	tests := []struct {
		name string
		size int
		// setup fills the scene with red voxels.
		setup func(s *Scene)
		// want is the number of chunks per orientation.
		want map[Orientation]int
		// wantFacets is the total facet count per orientation.
		wantFacets map[Orientation]int
	}{
		{
			name:       "single voxel",
			size:       1,
			setup:      func(s *Scene) { s.AddVoxel(Position{X: 1, Y: 1, Z: 1}, red) },
			want:       map[Orientation]int{Top: 1, Right: 1, Left: 1},
			wantFacets: map[Orientation]int{Top: 2, Right: 2, Left: 2},
		},
		{
			name: "pair along x",
			size: 2,
			setup: func(s *Scene) {
				s.AddVoxel(Position{X: 1, Y: 1, Z: 1}, red)
				s.AddVoxel(Position{X: 2, Y: 1, Z: 1}, red)
			},
			want:       map[Orientation]int{Top: 1, Right: 1, Left: 1},
			wantFacets: map[Orientation]int{Top: 4, Right: 2, Left: 4},
		},
		{
			name: "ring",
			size: 3,
			setup: func(s *Scene) {
				s.AddFullSlab(1, red, 0)
				s.DeleteVoxel(Position{X: 2, Y: 2, Z: 1})
			},
			want: map[Orientation]int{Top: 1, Right: 2, Left: 2},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			s := newScene(t, tt.size, 100, 100)
			tt.setup(s)
			facets, chunks := renderChunks(s)

			got := map[Orientation]int{}
			gotFacets := map[Orientation]int{}
			seen := map[int]bool{}
			groups := map[ChunkID]bool{}
			for _, c := range chunks {
				if groups[c.ID] {
					t.Errorf("duplicate chunk id %v", c.ID)
				}
				groups[c.ID] = true

				o := facets[c.Facets[0]].Orientation
				got[o]++
				for _, fi := range c.Facets {
					f := facets[fi]
					if f.Color != c.ID.Color {
						t.Errorf("chunk %v holds facet of color %v", c.ID, f.Color)
					}
					if f.Orientation != o {
						t.Errorf("chunk %v mixes %v and %v facets", c.ID, o, f.Orientation)
					}
					if seen[fi] {
						t.Errorf("facet %v is in two chunks", fi)
					}
					seen[fi] = true
					gotFacets[o]++
				}
			}
			if len(seen) != len(facets) {
				t.Errorf("chunks hold %v of %v facets", len(seen), len(facets))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("chunks per orientation = %v, want %v", got, tt.want)
			}
			if tt.wantFacets != nil && !reflect.DeepEqual(gotFacets, tt.wantFacets) {
				t.Errorf("facets per orientation = %v, want %v", gotFacets, tt.wantFacets)
			}
		})
	}
}

func TestChunkGroupsNumberedPerColor(t *testing.T) {
	s := newScene(t, 3, 100, 100)
	s.AddFullSlab(1, red, 0)
	s.DeleteVoxel(Position{X: 2, Y: 2, Z: 1})
	_, chunks := renderChunks(s)

	next := map[color.RGBA]int{}
	for _, c := range chunks {
		next[c.ID.Color]++
		if c.ID.Group != next[c.ID.Color] {
			t.Errorf("chunk %v: group = %v, want %v", c.ID, c.ID.Group, next[c.ID.Color])
		}
	}
}

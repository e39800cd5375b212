package voxels

import (
	"fmt"
	"image/color"

	"github.com/gmlewis/isovox/colors"
)

// ChunkID identifies a chunk: its group number (1-based, per color) and
// its color.
type ChunkID struct {
	Group int
	Color color.RGBA
}

func (id ChunkID) String() string {
	return fmt.Sprintf("%v%v", id.Group, colors.Hex(id.Color))
}

// Chunk is a connected region of same-colored, grid-adjacent facets.
type Chunk struct {
	ID ChunkID
	// Facets index into the facets of the render pass.
	Facets []int
}

// chunkFacets flood-fills the adjacency grid one color at a time.
// Colors are processed in order of first appearance.
func chunkFacets(facets []*Facet, g shellGrid) []*Chunk {
	var colorOrder []color.RGBA
	byColor := map[color.RGBA][]int{}
	for i, f := range facets {
		if _, ok := byColor[f.Color]; !ok {
			colorOrder = append(colorOrder, f.Color)
		}
		byColor[f.Color] = append(byColor[f.Color], i)
	}

	var chunks []*Chunk
	for _, c := range colorOrder {
		// pool maps grid index to facet; a later facet at the same grid
		// index replaces an earlier one.
		pool := map[int]int{}
		var order []int
		for _, fi := range byColor[c] {
			gi := facets[fi].GridIndex
			if _, ok := pool[gi]; !ok {
				order = append(order, gi)
			}
			pool[gi] = fi
		}

		group := 1
		for _, gi := range order {
			fi, ok := pool[gi]
			if !ok {
				continue
			}
			delete(pool, gi)

			chunk := &Chunk{ID: ChunkID{Group: group, Color: c}}
			stack := []int{fi}
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				chunk.Facets = append(chunk.Facets, cur)

				for _, n := range g.neighbors(facets[cur].GridIndex) {
					if nfi, ok := pool[n]; ok {
						delete(pool, n)
						stack = append(stack, nfi)
					}
				}
			}
			chunks = append(chunks, chunk)
			group++
		}
	}
	return chunks
}

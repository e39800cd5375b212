package voxels

import "github.com/go-gl/mathgl/mgl64"

// vertex is a triangle corner in shell-grid coordinates, along with the
// screen point it came from.
type vertex struct {
	x, y int
	p    mgl64.Vec2
}

func (v vertex) at(o vertex) bool { return v.x == o.x && v.y == o.y }

// Edge is a directed triangle edge in shell-grid coordinates.
type Edge struct {
	v1, v2 vertex
	// facet indexes the owning facet of the render pass.
	facet int
}

type edgeKey struct {
	x1, y1, x2, y2 int
}

func (e Edge) key() edgeKey        { return edgeKey{e.v1.x, e.v1.y, e.v2.x, e.v2.y} }
func (e Edge) reverseKey() edgeKey { return edgeKey{e.v2.x, e.v2.y, e.v1.x, e.v1.y} }
func (e Edge) reversed() Edge      { return Edge{v1: e.v2, v2: e.v1, facet: e.facet} }

// direction is |dx|-|dy|, one of -1, 0 or 1 for triangle edges.
func (e Edge) direction() int {
	return abs(e.v1.x-e.v2.x) - abs(e.v1.y-e.v2.y)
}

// facetEdges returns the three edges of a facet. Odd and even grid indexes
// are the two triangle orientations of the adjacency grid.
func facetEdges(f *Facet, fi int) [3]Edge {
	x, y := f.TopFaceX, floorDiv(f.TopFaceY, 2)
	p1, p2, p3 := f.Points[0], f.Points[1], f.Points[2]
	if f.GridIndex%2 != 0 {
		a := vertex{x - 1, y, p1}
		b := vertex{x, y, p2}
		c := vertex{x - 1, y + 1, p3}
		return [3]Edge{{a, b, fi}, {b, c, fi}, {c, a, fi}}
	}
	a := vertex{x, y - 1, p1}
	b := vertex{x, y, p2}
	c := vertex{x - 1, y, p3}
	return [3]Edge{{a, b, fi}, {b, c, fi}, {c, a, fi}}
}

// findEdges returns the boundary edges of a chunk. An edge present twice,
// in either direction, is shared by two facets of the chunk and cancels.
// Surviving edges keep their insertion order.
func findEdges(facets []*Facet, chunk *Chunk) []Edge {
	var all []Edge
	var alive []bool
	index := map[edgeKey]int{}

	for _, fi := range chunk.Facets {
		for _, e := range facetEdges(facets[fi], fi) {
			k, r := e.key(), e.reverseKey()
			i, ok := index[k]
			if !ok {
				i, ok = index[r]
			}
			if ok {
				alive[i] = false
				delete(index, k)
				delete(index, r)
				continue
			}
			index[k] = len(all)
			all = append(all, e)
			alive = append(alive, true)
		}
	}

	edges := make([]Edge, 0, len(index))
	for i, e := range all {
		if alive[i] {
			edges = append(edges, e)
		}
	}
	return edges
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

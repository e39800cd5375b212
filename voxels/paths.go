package voxels

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Outline is the merged polygon of one chunk.
type Outline struct {
	ID     ChunkID
	Color  color.RGBA
	Points []mgl64.Vec2

	// Length is the number of boundary edges the walk could not reach.
	// It is 0 for a closed outline and positive when the chunk has a hole
	// or a vertex joining more than two boundary edges.
	Length int
}

// Closed reports whether the walk consumed every boundary edge.
func (o *Outline) Closed() bool { return o.Length == 0 }

// Path returns the outline as a closed vector path.
func (o *Outline) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if len(o.Points) == 0 {
			return
		}
		var buf [1]vec.Vec2
		for i, p := range o.Points {
			buf[0] = vec.Vec2{X: p[0], Y: p[1]}
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		yield(path.CmdClose, nil)
	}
}

// mergeChunk walks the boundary edges of a chunk into one outline.
//
// The walk starts on an edge of the facet with the greatest grid index and
// follows shared vertices. Only turns are recorded, so collinear edges
// collapse into one segment. The walk stops when no unused edge touches the
// current vertex; the edges left over are counted in Length.
func mergeChunk(facets []*Facet, chunk *Chunk) *Outline {
	outline := &Outline{ID: chunk.ID, Color: chunk.ID.Color}
	edges := findEdges(facets, chunk)
	if len(edges) == 0 {
		return outline
	}

	first := 0
	for i, e := range edges {
		if facets[e.facet].GridIndex > facets[edges[first].facet].GridIndex {
			first = i
		}
	}
	used := make([]bool, len(edges))
	used[first] = true
	remaining := len(edges) - 1

	last := edges[first]
	if last.v1.x+last.v1.y > last.v2.x+last.v2.y {
		last = last.reversed()
	}
	points := []vertex{last.v1}
	firstDirection := last.direction()
	lastDirection := firstDirection

	for remaining > 0 {
		at := last.v2
		next := -1
		for i, e := range edges {
			if !used[i] && (e.v1.at(at) || e.v2.at(at)) {
				next = i
				break
			}
		}
		if next < 0 {
			break
		}

		e := edges[next]
		if e.v2.at(at) {
			e = e.reversed()
		}
		direction := e.direction()
		if direction != lastDirection {
			points = append(points, e.v1)
		}
		lastDirection = direction
		last = e
		used[next] = true
		remaining--
	}

	// The walk closed on the direction it started with, so the starting
	// point lies inside a straight segment.
	if firstDirection == lastDirection {
		points = points[1:]
	}

	outline.Length = remaining
	outline.Points = make([]mgl64.Vec2, 0, len(points))
	for _, v := range points {
		outline.Points = append(outline.Points, v.p)
	}
	return outline
}

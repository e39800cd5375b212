package voxels

import (
	"cmp"
	"context"
	"log"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Result is the output of one render pass.
type Result struct {
	// Facets are the visible triangles, after hidden ones were erased.
	Facets []*Facet
	// Outlines are in draw order: outlines with unreached edges first.
	Outlines []*Outline
	// Incomplete lists the chunks whose boundary walk did not close.
	Incomplete []ChunkID
}

// Render is RenderContext with a context that is never canceled.
func (s *Scene) Render() *Result {
	res, _ := s.RenderContext(context.Background())
	return res
}

// RenderContext projects every voxel, erases hidden facets, chunks the
// visible ones by color and adjacency, and merges every chunk into one
// outline. It only fails when ctx is done before all chunks are merged.
func (s *Scene) RenderContext(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g := shellGrid{size: s.p.Size, maxZ: s.getMaxZ()}
	facets := s.eraseUndershell(s.buildFacets(g))
	g.indexFacets(facets)
	chunks := chunkFacets(facets, g)

	outlines := make([]*Outline, len(chunks))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, chunk := range chunks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outlines[i] = mergeChunk(facets, chunk)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	res := &Result{Facets: facets}
	for _, o := range outlines {
		if !o.Closed() {
			log.Printf("voxels.Render: outline %v is open: %v boundary edges unreached", o.ID, o.Length)
			res.Incomplete = append(res.Incomplete, o.ID)
		}
		if len(o.Points) > 0 {
			res.Outlines = append(res.Outlines, o)
		}
	}
	slices.SortStableFunc(res.Outlines, func(a, b *Outline) int {
		return cmp.Compare(b.Length, a.Length)
	})
	return res, nil
}

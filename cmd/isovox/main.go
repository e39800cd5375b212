// isovox renders a voxel scene as the merged, flat-shaded outlines of its
// isometric projection.
//
// Scene operations are given as arguments and applied in order:
//
//	voxel:X,Y,Z[:COLOR]             add one voxel (default color #ff0000)
//	del:X,Y,Z                       delete one voxel
//	box:X,Y,Z:DX,DY,DZ[:COLOR]      add a box of voxels
//	delbox:X,Y,Z:DX,DY,DZ           delete a box of voxels
//	slab:STAGE[:COLOR[:OFFSET]]     fill one stage (default color #00ff00)
//
// To generate output, at least one of -svg, -png, -glb or -zip must be supplied.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/gmlewis/isovox/glb"
	"github.com/gmlewis/isovox/preview"
	"github.com/gmlewis/isovox/svg"
	"github.com/gmlewis/isovox/voxels"
	"github.com/gmlewis/isovox/zipper"
)

var (
	id          = flag.String("id", "isovox", "Document id")
	width       = flag.Float64("width", 500, "Image width")
	height      = flag.Float64("height", 500, "Image height")
	size        = flag.Int("size", 16, "Grid edge length in voxels")
	depth       = flag.Float64("depth", 0.5, "Depth ratio (y/x display ratio of a voxel)")
	voxelOffset = flag.Float64("offset", 1, "Horizontal margin in voxels")

	light      = flag.Float64("light", 10, "Lighten percentage of the lit face")
	lightFace  = flag.String("light-face", "top", "Lit face: top, left or right")
	lightHue   = flag.Float64("light-hue", 5, "Hue shift in degrees of the lit face")
	shadow     = flag.Float64("shadow", 30, "Darken percentage of the shadowed face")
	shadowFace = flag.String("shadow-face", "right", "Shadowed face: top, left or right")
	shadowHue  = flag.Float64("shadow-hue", 20, "Hue shift in degrees of the shadowed face")

	writeSVG = flag.String("svg", "", "Write the outlines to this SVG file (.svgz compresses)")
	writePNG = flag.String("png", "", "Write a PNG preview to this file")
	writeGLB = flag.String("glb", "", "Write the visible facets to this glTF binary file")
	writeZip = flag.String("zip", "", "Write every stage to BASENAME-stages.zip")
)

func main() {
	flag.Parse()

	if *writeSVG == "" && *writePNG == "" && *writeGLB == "" && *writeZip == "" {
		log.Printf("-svg, -png, -glb, or -zip must be supplied to generate output. Testing scene operations only.")
	}

	lf, err := voxels.ParseOrientation(*lightFace)
	check("-light-face: %v", err)
	sf, err := voxels.ParseOrientation(*shadowFace)
	check("-shadow-face: %v", err)

	p := voxels.Params{
		ID:          *id,
		Width:       *width,
		Height:      *height,
		Size:        *size,
		DepthRatio:  *depth,
		VoxelOffset: *voxelOffset,
		Light: voxels.LightConfig{
			Light:      *light,
			LightFace:  lf,
			LightHue:   *lightHue,
			Shadow:     *shadow,
			ShadowFace: sf,
			ShadowHue:  *shadowHue,
		},
	}
	scene, err := voxels.New(p)
	check("voxels.New: %v", err)

	for _, arg := range flag.Args() {
		op, err := parseOp(arg)
		check("%v: %v", arg, err)
		op.apply(scene)
	}
	log.Printf("Scene holds %v voxels in %v stages.", scene.Len(), scene.MaxZ())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := scene.RenderContext(ctx)
	check("Render: %v", err)
	log.Printf("Rendered %v visible facets into %v outlines.", len(res.Facets), len(res.Outlines))
	if len(res.Incomplete) > 0 {
		log.Printf("WARNING: %v outlines are open: %v", len(res.Incomplete), res.Incomplete)
	}

	if *writeSVG != "" {
		log.Printf("Writing %v...", *writeSVG)
		c, err := svg.New(*writeSVG, svg.Header{ID: p.ID, Width: p.Width, Height: p.Height})
		check("svg.New: %v", err)
		for _, o := range res.Outlines {
			err := c.Write(&svg.Shape{ID: o.ID.String(), Fill: o.Color, Path: o.Path()})
			check("svg.Write: %v", err)
		}
		check("svg.Close: %v", c.Close())
	}

	if *writePNG != "" {
		log.Printf("Writing %v...", *writePNG)
		err := preview.WritePNG(*writePNG, preview.Render(res, p.Width, p.Height))
		check("preview.WritePNG: %v", err)
	}

	if *writeGLB != "" {
		log.Printf("Writing %v...", *writeGLB)
		check("glb.Write: %v", glb.Write(*writeGLB, res.Facets, p.Height))
	}

	if *writeZip != "" {
		baseName := strings.TrimSuffix(*writeZip, ".zip")
		log.Printf("Slicing %v stages into %v-stages.zip...", scene.MaxZ(), baseName)
		check("zipper.Slice: %v", zipper.Slice(baseName, scene))
	}

	log.Println("Done.")
}

func check(fmtStr string, args ...interface{}) {
	err := args[len(args)-1]
	if err != nil {
		log.Fatalf(fmtStr, args...)
	}
}

// -*- compile-command: "go run main.go"; -*-

// test-voxels writes out simple SVG example files.
package main

import (
	"log"
	"os"

	"github.com/gmlewis/isovox/colors"
	"github.com/gmlewis/isovox/svg"
	"github.com/gmlewis/isovox/voxels"
)

func main() {
	p := voxels.DefaultParams()
	p.ID, p.Size, p.VoxelOffset = "cube", 1, 0
	cube, err := voxels.New(p)
	check("voxels.New: %v", err)
	cube.AddVoxel(voxels.Position{X: 1, Y: 1, Z: 1}, colors.MustParseHex("#ff0000"))
	write("cube.svg", cube)

	p.ID, p.Size, p.VoxelOffset = "slab", 4, 1
	slab, err := voxels.New(p)
	check("voxels.New: %v", err)
	slab.AddFullSlab(1, colors.MustParseHex("#00ff00"), 0)
	slab.AddBox(voxels.Position{X: 4, Y: 1, Z: 2}, colors.MustParseHex("#0000ff"), voxels.Sizes{Z: 2})
	write("slab.svg", slab)

	log.Printf("Done.")
}

func write(filename string, s *voxels.Scene) {
	out, err := os.Create(filename)
	check("Create: %v", err)
	p := s.Params()
	err = svg.Render(out, svg.Header{ID: p.ID, Width: p.Width, Height: p.Height}, s.Render())
	check("svg.Render: %v", err)
	log.Printf("Wrote %v.", filename)
}

func check(fmtStr string, args ...interface{}) {
	if err := args[len(args)-1]; err != nil {
		log.Fatalf(fmtStr, args...)
	}
}

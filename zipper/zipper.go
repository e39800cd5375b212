// Package zipper writes the per-stage renders of a scene to a ZIP file.
package zipper

import (
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gmlewis/isovox/preview"
	"github.com/gmlewis/isovox/svg"
	"github.com/gmlewis/isovox/voxels"
	"github.com/klauspost/compress/zip"
)

// StageSlicer represents a scene that can be split into its z stages.
type StageSlicer interface {
	Params() voxels.Params
	MaxZ() int
	Stage(z int) *voxels.Scene
}

// Slice renders every non-empty stage of slicer on its own and writes
// the SVG and PNG of each one to "<baseFilename>-stages.zip", along with
// a manifest.
func Slice(baseFilename string, slicer StageSlicer) error {
	zipName := baseFilename + "-stages.zip"
	zf, err := os.Create(zipName)
	if err != nil {
		return fmt.Errorf("Create: %v", err)
	}

	zp := &zipper{w: zip.NewWriter(zf), p: slicer.Params()}
	if err := zp.slice(slicer); err != nil {
		zp.w.Close()
		zf.Close()
		return err
	}

	if err := zp.w.Close(); err != nil {
		zf.Close()
		return fmt.Errorf("Unable to close ZIP writer: %v", err)
	}

	if err := zf.Close(); err != nil {
		return fmt.Errorf("Unable to close ZIP file: %v", err)
	}
	return nil
}

// zipper writes the stages of one scene to a ZIP file.
type zipper struct {
	w       *zip.Writer
	p       voxels.Params
	entries []entry
}

func (zp *zipper) slice(slicer StageSlicer) error {
	maxZ := slicer.MaxZ()
	log.Printf("Writing %v stages of %vx%v image...", maxZ, zp.p.Width, zp.p.Height)

	for z := 1; z <= maxZ; z++ {
		stage := slicer.Stage(z)
		if stage.Len() == 0 {
			continue
		}
		if err := zp.processStage(z, stage.Render()); err != nil {
			return err
		}
	}
	return zp.writeManifest(maxZ)
}

func (zp *zipper) processStage(z int, res *voxels.Result) error {
	h := svg.Header{ID: fmt.Sprintf("%vstage%v", zp.p.ID, z), Width: zp.p.Width, Height: zp.p.Height}
	err := zp.create(z, fmt.Sprintf("stages/stage%04d.svg", z), func(w io.Writer) error {
		return svg.Render(nopCloser{w}, h, res)
	})
	if err != nil {
		return err
	}

	img := preview.Render(res, zp.p.Width, zp.p.Height)
	return zp.create(z, fmt.Sprintf("stages/stage%04d.png", z), func(w io.Writer) error {
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("PNG encode: %v", err)
		}
		return nil
	})
}

// create adds a deflated entry and records its size and digest.
func (zp *zipper) create(z int, filename string, write func(w io.Writer) error) error {
	fh := &zip.FileHeader{
		Name:     filename,
		Comment:  fmt.Sprintf("z=%v", z),
		Method:   zip.Deflate,
		Modified: time.Now(),
	}
	f, err := zp.w.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("Unable to create ZIP file %q: %v", filename, err)
	}

	d := xxhash.New()
	cw := &countWriter{}
	if err := write(io.MultiWriter(f, d, cw)); err != nil {
		return fmt.Errorf("%v: %v", filename, err)
	}
	zp.entries = append(zp.entries, entry{name: filename, stage: z, size: cw.n, digest: d.Sum64()})
	return nil
}

type countWriter struct{ n int64 }

func (c *countWriter) Write(p []byte) (int, error) {
	c.n += int64(len(p))
	return len(p), nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

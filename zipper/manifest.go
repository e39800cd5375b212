package zipper

import (
	"fmt"
	"html"
	"io"
	"time"

	"github.com/klauspost/compress/zip"
)

// entry is a manifest line for one stage file.
type entry struct {
	name   string
	stage  int
	size   int64
	digest uint64 // xxhash64 of the uncompressed contents
}

func (zp *zipper) writeManifest(maxZ int) error {
	fh := &zip.FileHeader{
		Name:     "manifest.xml",
		Method:   zip.Deflate,
		Modified: time.Now(),
	}
	f, err := zp.w.CreateHeader(fh)
	if err != nil {
		return fmt.Errorf("Unable to create ZIP file %q: %v", fh.Name, err)
	}
	return zp.manifest(f, maxZ)
}

func (zp *zipper) manifest(f io.Writer, maxZ int) error {
	if _, err := fmt.Fprintf(f, manifestHeaderFmt,
		html.EscapeString(zp.p.ID),
		zp.p.Width,
		zp.p.Height,
		zp.p.Size,
		maxZ); err != nil {
		return fmt.Errorf("manifest header: %v", err)
	}
	for _, e := range zp.entries {
		if _, err := fmt.Fprintf(f, manifestEntryFmt, e.stage, e.name, e.size, e.digest); err != nil {
			return fmt.Errorf("manifest entry %v: %v", e.name, err)
		}
	}
	if _, err := fmt.Fprint(f, manifestFooter); err != nil {
		return fmt.Errorf("manifest footer: %v", err)
	}
	return nil
}

var manifestHeaderFmt = `<?xml version="1.0"?>

<stages version="1.0" id="%v" width="%v" height="%v" gridSize="%v" maxZ="%v" >
`

var manifestEntryFmt = `    <stage z="%v" file="%v" size="%v" xxhash="%016x" />
`

var manifestFooter = `</stages>
`

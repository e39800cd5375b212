package zipper

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/gmlewis/isovox/voxels"
	"github.com/klauspost/compress/zip"
)

func TestSlice(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *voxels.Scene)
		want  []string
	}{
		{
			name: "empty scene",
			want: []string{"manifest.xml"},
		},
		{
			name: "tower skips empty stages",
			setup: func(s *voxels.Scene) {
				s.AddFullSlab(1, color.RGBA{G: 0xff, A: 0xff}, 0)
				s.AddVoxel(voxels.Position{X: 2, Y: 2, Z: 3}, color.RGBA{R: 0xff, A: 0xff})
			},
			want: []string{
				"stages/stage0001.svg",
				"stages/stage0001.png",
				"stages/stage0003.svg",
				"stages/stage0003.png",
				"manifest.xml",
			},
		},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			p := voxels.DefaultParams()
			p.ID, p.Size, p.Width, p.Height = "tower", 4, 80, 60
			s, err := voxels.New(p)
			if err != nil {
				t.Fatalf("voxels.New: %v", err)
			}
			if tt.setup != nil {
				tt.setup(s)
			}

			base := filepath.Join(t.TempDir(), "tower")
			if err := Slice(base, s); err != nil {
				t.Fatalf("Slice: %v", err)
			}

			r, err := zip.OpenReader(base + "-stages.zip")
			if err != nil {
				t.Fatalf("zip.OpenReader: %v", err)
			}
			defer r.Close()

			var got []string
			contents := map[string][]byte{}
			for _, f := range r.File {
				got = append(got, f.Name)
				rc, err := f.Open()
				if err != nil {
					t.Fatalf("Open(%v): %v", f.Name, err)
				}
				buf, err := io.ReadAll(rc)
				rc.Close()
				if err != nil {
					t.Fatalf("ReadAll(%v): %v", f.Name, err)
				}
				contents[f.Name] = buf
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("entries = %v, want %v", got, tt.want)
			}

			manifest := string(contents["manifest.xml"])
			for name, buf := range contents {
				if name == "manifest.xml" {
					continue
				}
				line := fmt.Sprintf(`file="%v" size="%v" xxhash="%016x"`, name, len(buf), xxhash.Sum64(buf))
				if !strings.Contains(manifest, line) {
					t.Errorf("manifest =\n%v\nwant it to contain %v", manifest, line)
				}
			}
			if svgDoc := string(contents["stages/stage0003.svg"]); svgDoc != "" && strings.Count(svgDoc, "<path ") != 3 {
				t.Errorf("stage 3 svg = %v, want 3 paths", svgDoc)
			}
		})
	}
}

func TestManifestWriteErrors(t *testing.T) {
	zp := &zipper{
		p: voxels.DefaultParams(),
		entries: []entry{
			{name: "stages/stage0001.svg", stage: 1, size: 10, digest: 0xabc},
			{name: "stages/stage0001.png", stage: 1, size: 20, digest: 0xdef},
		},
	}

	var full strings.Builder
	if err := zp.manifest(&full, 1); err != nil {
		t.Fatalf("manifest: %v", err)
	}
	if want := `<stage z="1" file="stages/stage0001.png" size="20" xxhash="0000000000000def" />`; !strings.Contains(full.String(), want) {
		t.Errorf("manifest =\n%v\nwant it to contain %v", full.String(), want)
	}

	// Fail each write in turn: header, both entries and footer.
	for n := 0; n < 4; n++ {
		t.Run(fmt.Sprintf("test #%v: fail write %v", n, n+1), func(t *testing.T) {
			w := &failingWriter{okWrites: n}
			if err := zp.manifest(w, 1); err == nil {
				t.Errorf("manifest = nil, want error from write %v", n+1)
			}
		})
	}
}

type failingWriter struct {
	okWrites int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.okWrites == 0 {
		return 0, errors.New("disk full")
	}
	f.okWrites--
	return len(p), nil
}

package voxels

import (
	"fmt"
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

func newScene(t *testing.T, size int, width, height float64) *Scene {
	t.Helper()
	p := DefaultParams()
	p.Size = size
	p.Width = width
	p.Height = height
	s, err := New(p)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(p *Params)
		wantErr bool
	}{
		{name: "defaults", modify: func(p *Params) {}},
		{name: "zero size", modify: func(p *Params) { p.Size = 0 }, wantErr: true},
		{name: "zero width", modify: func(p *Params) { p.Width = 0 }, wantErr: true},
		{name: "negative height", modify: func(p *Params) { p.Height = -1 }, wantErr: true},
		{name: "zero depth ratio", modify: func(p *Params) { p.DepthRatio = 0 }, wantErr: true},
		{name: "negative voxel offset", modify: func(p *Params) { p.VoxelOffset = -1 }, wantErr: true},
		{name: "no margin", modify: func(p *Params) { p.VoxelOffset = 0 }},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			_, err := New(p)
			if gotErr := err != nil; gotErr != tt.wantErr {
				t.Errorf("New error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddVoxelReplaces(t *testing.T) {
	s := newScene(t, 4, 100, 100)
	pos := Position{X: 2, Y: 3, Z: 1}
	s.AddVoxel(pos, red)
	s.AddVoxel(pos, blue)

	if got := s.Len(); got != 1 {
		t.Fatalf("Len = %v, want 1", got)
	}
	v, ok := s.VoxelAt(pos)
	if !ok {
		t.Fatalf("VoxelAt(%v) not found", pos)
	}
	if v.Color != blue {
		t.Errorf("VoxelAt(%v).Color = %v, want %v", pos, v.Color, blue)
	}
}

func TestDeleteVoxel(t *testing.T) {
	s := newScene(t, 4, 100, 100)
	s.AddVoxel(Position{X: 1, Y: 1, Z: 1}, red)

	s.DeleteVoxel(Position{X: 2, Y: 2, Z: 1})
	if got := s.Len(); got != 1 {
		t.Errorf("Len after deleting a missing voxel = %v, want 1", got)
	}

	s.DeleteVoxel(Position{X: 1, Y: 1, Z: 1})
	if got := s.Len(); got != 0 {
		t.Errorf("Len = %v, want 0", got)
	}
	if _, ok := s.VoxelAt(Position{X: 1, Y: 1, Z: 1}); ok {
		t.Errorf("VoxelAt found a deleted voxel")
	}
}

func TestMaxZ(t *testing.T) {
	s := newScene(t, 4, 100, 100)
	if got := s.MaxZ(); got != 0 {
		t.Errorf("MaxZ of empty scene = %v, want 0", got)
	}

	s.AddVoxel(Position{X: 1, Y: 1, Z: 1}, red)
	s.AddVoxel(Position{X: 1, Y: 1, Z: 3}, red)
	if got := s.MaxZ(); got != 3 {
		t.Errorf("MaxZ = %v, want 3", got)
	}

	s.DeleteVoxel(Position{X: 1, Y: 1, Z: 3})
	if got := s.MaxZ(); got != 1 {
		t.Errorf("MaxZ after delete = %v, want 1", got)
	}

	s.DeleteVoxel(Position{X: 1, Y: 1, Z: 1})
	if got := s.MaxZ(); got != 0 {
		t.Errorf("MaxZ after deleting everything = %v, want 0", got)
	}
}

func TestZIndex(t *testing.T) {
	s := newScene(t, 4, 100, 100)
	tests := []struct {
		pos  Position
		want int
	}{
		{pos: Position{X: 1, Y: 1, Z: 1}, want: 4},
		{pos: Position{X: 4, Y: 1, Z: 1}, want: 7},
		{pos: Position{X: 1, Y: 4, Z: 1}, want: 1},
		{pos: Position{X: 4, Y: 4, Z: 2}, want: 11},
		{pos: Position{X: 2, Y: 2, Z: 3}, want: 18},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.pos), func(t *testing.T) {
			if got := s.ZIndex(tt.pos); got != tt.want {
				t.Errorf("ZIndex(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestBoxes(t *testing.T) {
	s := newScene(t, 4, 100, 100)
	got := s.AddBox(Position{X: 1, Y: 1, Z: 1}, red, Sizes{X: 2, Y: 3})
	if len(got) != 6 || s.Len() != 6 {
		t.Fatalf("AddBox added %v voxels, Len = %v, want 6", len(got), s.Len())
	}
	if _, ok := s.VoxelAt(Position{X: 2, Y: 3, Z: 1}); !ok {
		t.Errorf("AddBox did not fill the far corner")
	}

	s.DeleteBox(Position{X: 2, Y: 1, Z: 1}, Sizes{X: 5, Y: 5, Z: 5})
	if got := s.Len(); got != 3 {
		t.Errorf("Len after DeleteBox = %v, want 3", got)
	}
}

func TestAddFullSlab(t *testing.T) {
	tests := []struct {
		name   string
		stage  int
		offset int
		want   int
		corner Position
	}{
		{name: "full", stage: 1, offset: 0, want: 16, corner: Position{X: 1, Y: 1, Z: 1}},
		{name: "inset", stage: 2, offset: 1, want: 4, corner: Position{X: 2, Y: 2, Z: 2}},
		{name: "too large an offset", stage: 1, offset: 2, want: 0},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprintf("test #%v: %v", i, tt.name), func(t *testing.T) {
			s := newScene(t, 4, 100, 100)
			s.AddFullSlab(tt.stage, green, tt.offset)
			if got := s.Len(); got != tt.want {
				t.Errorf("Len = %v, want %v", got, tt.want)
			}
			if tt.want == 0 {
				return
			}
			if _, ok := s.VoxelAt(tt.corner); !ok {
				t.Errorf("missing corner voxel %v", tt.corner)
			}
		})
	}
}

func TestVoxelsOrder(t *testing.T) {
	s := newScene(t, 3, 100, 100)
	s.AddFullSlab(1, red, 0)
	s.AddVoxel(Position{X: 1, Y: 3, Z: 2}, blue)

	got := s.Voxels()
	if len(got) != 10 {
		t.Fatalf("len(Voxels) = %v, want 10", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ZIndex > got[i].ZIndex {
			t.Errorf("Voxels()[%v].ZIndex = %v > Voxels()[%v].ZIndex = %v", i-1, got[i-1].ZIndex, i, got[i].ZIndex)
		}
	}
	if last := got[len(got)-1]; last.Position != (Position{X: 1, Y: 3, Z: 2}) {
		t.Errorf("front-most voxel = %v, want the stage 2 voxel", last.Position)
	}
}

func TestStage(t *testing.T) {
	s := newScene(t, 3, 100, 100)
	s.AddFullSlab(1, red, 0)
	s.AddVoxel(Position{X: 2, Y: 2, Z: 2}, blue)

	stage := s.Stage(2)
	if got := stage.Len(); got != 1 {
		t.Fatalf("Stage(2).Len = %v, want 1", got)
	}
	if got := stage.MaxZ(); got != 2 {
		t.Errorf("Stage(2).MaxZ = %v, want 2", got)
	}
	stage.DeleteVoxel(Position{X: 2, Y: 2, Z: 2})
	if got := s.Len(); got != 10 {
		t.Errorf("deleting from a stage changed the scene: Len = %v, want 10", got)
	}
}

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/gmlewis/isovox/colors"
	"github.com/gmlewis/isovox/voxels"
)

var (
	defaultVoxelColor = colors.MustParseHex("#ff0000")
	defaultSlabColor  = colors.MustParseHex("#00ff00")
)

type opKind string

const (
	opVoxel  opKind = "voxel"
	opDelete opKind = "del"
	opBox    opKind = "box"
	opDelBox opKind = "delbox"
	opSlab   opKind = "slab"
)

// op is one parsed scene operation.
type op struct {
	kind   opKind
	pos    voxels.Position
	sizes  voxels.Sizes
	color  color.RGBA
	stage  int
	offset int
}

func (o op) apply(s *voxels.Scene) {
	switch o.kind {
	case opVoxel:
		s.AddVoxel(o.pos, o.color)
	case opDelete:
		s.DeleteVoxel(o.pos)
	case opBox:
		s.AddBox(o.pos, o.color, o.sizes)
	case opDelBox:
		s.DeleteBox(o.pos, o.sizes)
	case opSlab:
		s.AddFullSlab(o.stage, o.color, o.offset)
	}
}

// parseOp parses "kind:args[:args...]".
func parseOp(arg string) (op, error) {
	parts := strings.Split(arg, ":")
	o := op{kind: opKind(parts[0])}
	args := parts[1:]

	var err error
	switch o.kind {
	case opVoxel, opDelete:
		maxArgs := 2
		if o.kind == opDelete {
			maxArgs = 1
		}
		if len(args) < 1 || len(args) > maxArgs {
			return op{}, fmt.Errorf("want %v:X,Y,Z", o.kind)
		}
		if o.pos, err = parsePosition(args[0]); err != nil {
			return op{}, err
		}
		o.color, err = parseColor(args[1:], defaultVoxelColor)
	case opBox, opDelBox:
		maxArgs := 3
		if o.kind == opDelBox {
			maxArgs = 2
		}
		if len(args) < 2 || len(args) > maxArgs {
			return op{}, fmt.Errorf("want %v:X,Y,Z:DX,DY,DZ", o.kind)
		}
		if o.pos, err = parsePosition(args[0]); err != nil {
			return op{}, err
		}
		var d [3]int
		if d, err = parseTriple(args[1]); err != nil {
			return op{}, err
		}
		o.sizes = voxels.Sizes{X: d[0], Y: d[1], Z: d[2]}
		o.color, err = parseColor(args[2:], defaultVoxelColor)
	case opSlab:
		if len(args) < 1 || len(args) > 3 {
			return op{}, fmt.Errorf("want slab:STAGE[:COLOR[:OFFSET]]")
		}
		if o.stage, err = strconv.Atoi(args[0]); err != nil {
			return op{}, fmt.Errorf("stage: %v", err)
		}
		if o.color, err = parseColor(args[1:], defaultSlabColor); err != nil {
			return op{}, err
		}
		if len(args) == 3 {
			if o.offset, err = strconv.Atoi(args[2]); err != nil {
				return op{}, fmt.Errorf("offset: %v", err)
			}
		}
	default:
		return op{}, fmt.Errorf("unknown operation %q", parts[0])
	}
	if err != nil {
		return op{}, err
	}
	return o, nil
}

func parsePosition(s string) (voxels.Position, error) {
	v, err := parseTriple(s)
	if err != nil {
		return voxels.Position{}, err
	}
	return voxels.Position{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseTriple(s string) ([3]int, error) {
	var v [3]int
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return v, fmt.Errorf("want 3 comma-separated integers, got %q", s)
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return v, fmt.Errorf("%q: %v", s, err)
		}
		v[i] = n
	}
	return v, nil
}

// parseColor parses the first of args, if present and not empty.
func parseColor(args []string, def color.RGBA) (color.RGBA, error) {
	if len(args) == 0 || args[0] == "" {
		return def, nil
	}
	return colors.ParseHex(args[0])
}

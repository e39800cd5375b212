package voxels

import "fmt"

// Params are the scene parameters. They are fixed for the lifetime of a Scene.
type Params struct {
	// ID names the target surface. Serializers use it as the image id.
	ID string

	Width  float64 // image width
	Height float64 // image height
	Size   int     // grid edge length in voxels

	// DepthRatio is the y/x display ratio of a voxel.
	DepthRatio float64
	// VoxelOffset is the horizontal margin, in voxels.
	VoxelOffset float64

	Light LightConfig
}

// LightConfig describes how faces are shaded.
type LightConfig struct {
	Light     float64 // lighten percentage applied to LightFace
	LightFace Orientation
	LightHue  float64 // hue shift in degrees applied to LightFace

	Shadow     float64 // darken percentage applied to ShadowFace
	ShadowFace Orientation
	ShadowHue  float64 // hue shift in degrees applied to ShadowFace
}

// DefaultLightConfig returns the standard lighting: a lit top and a
// shadowed right face.
func DefaultLightConfig() LightConfig {
	return LightConfig{
		Light:      10,
		LightFace:  Top,
		LightHue:   5,
		Shadow:     30,
		ShadowFace: Right,
		ShadowHue:  20,
	}
}

// DefaultParams returns a 16x16 grid on a 500x500 image.
func DefaultParams() Params {
	return Params{
		Width:       500,
		Height:      500,
		Size:        16,
		DepthRatio:  0.5,
		VoxelOffset: 1,
		Light:       DefaultLightConfig(),
	}
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	switch {
	case p.Size < 1:
		return fmt.Errorf("size must be at least 1, got %v", p.Size)
	case p.Width <= 0:
		return fmt.Errorf("width must be positive, got %v", p.Width)
	case p.Height <= 0:
		return fmt.Errorf("height must be positive, got %v", p.Height)
	case p.DepthRatio <= 0:
		return fmt.Errorf("depth ratio must be positive, got %v", p.DepthRatio)
	case p.VoxelOffset < 0:
		return fmt.Errorf("voxel offset must not be negative, got %v", p.VoxelOffset)
	}
	return nil
}

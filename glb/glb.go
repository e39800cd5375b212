// Package glb exports the visible facets of a render as a binary glTF mesh.
package glb

import (
	"fmt"

	"github.com/gmlewis/isovox/voxels"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a single vertex-colored triangle mesh from facets.
// Screen coordinates are flipped so +y points up on an image of the given
// height; every vertex lies in the z=0 plane facing +z.
func Document(facets []*voxels.Facet, height float64) *gltf.Document {
	positions := make([][3]float32, 0, 3*len(facets))
	normals := make([][3]float32, 0, 3*len(facets))
	colors := make([][4]float32, 0, 3*len(facets))
	indices := make([]uint32, 0, 3*len(facets))

	for _, f := range facets {
		c := [4]float32{
			float32(f.Color.R) / 255,
			float32(f.Color.G) / 255,
			float32(f.Color.B) / 255,
			float32(f.Color.A) / 255,
		}
		// Flipping y reverses the winding, so corners go in reverse.
		for i := len(f.Points) - 1; i >= 0; i-- {
			p := f.Points[i]
			indices = append(indices, uint32(len(positions)))
			positions = append(positions, [3]float32{float32(p[0]), float32(height - p[1]), 0})
			normals = append(normals, [3]float32{0, 0, 1})
			colors = append(colors, c)
		}
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "isovox"
	if len(facets) == 0 {
		return doc
	}

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]uint32{
			gltf.POSITION: uint32(posAccessor),
			gltf.NORMAL:   uint32(normalAccessor),
			gltf.COLOR_0:  uint32(colorAccessor),
		},
		Indices: gltf.Index(uint32(indicesAccessor)),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float32{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "Facets", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(0))
	return doc
}

// Write saves the facets as a .glb file.
func Write(filename string, facets []*voxels.Facet, height float64) error {
	if err := gltf.SaveBinary(Document(facets, height), filename); err != nil {
		return fmt.Errorf("SaveBinary: %v", err)
	}
	return nil
}

package scene

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/swraster/mini3d/pkg/math3d"
)

// GLTFLoader loads glTF/GLB files into Mesh, grounded on the
// teacher's pkg/models.GLTFLoader (same accessor-reading machinery),
// retargeted to this repo's Mesh/Vector types. This is the optional
// "-model" supplement described in SPEC_FULL.md §4: the hard-coded
// cube remains the default, this is an alternate source of the same
// Mesh shape.
type GLTFLoader struct {
	CalculateNormals bool
	SmoothNormals    bool
}

// NewGLTFLoader creates a loader that fills in missing normals with
// smooth (averaged) normals by default.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{CalculateNormals: true, SmoothNormals: true}
}

// LoadGLB is a convenience wrapper around (*GLTFLoader).Load with
// default options.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load reads a glTF or GLB file and returns its geometry as a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open gltf %q: %w", path, err)
	}

	mesh := NewMesh(filepath.Base(path))
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("scene: process mesh %q: %w", m.Name, err)
		}
	}

	hasNormals := false
	for _, v := range mesh.Vertices {
		if v.Normal.Length3() > 0.001 {
			hasNormals = true
			break
		}
	}
	if l.CalculateNormals && !hasNormals {
		if l.SmoothNormals {
			mesh.CalculateSmoothNormals()
		} else {
			mesh.CalculateNormals()
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// primitiveAttrs holds one primitive's decoded attribute streams
// before they're zipped into mesh.Vertices/mesh.Faces.
type primitiveAttrs struct {
	positions []math3d.Vector
	normals   []math3d.Vector
	uvs       []math3d.Vec2
	indices   []int // nil means sequential (unindexed) triangles
}

func (l *GLTFLoader) readPrimitive(doc *gltf.Document, prim *gltf.Primitive) (primitiveAttrs, bool, error) {
	var attrs primitiveAttrs

	posIdx, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return attrs, false, nil
	}
	positions, err := readVec3Accessor(doc, posIdx)
	if err != nil {
		return attrs, false, fmt.Errorf("read positions: %w", err)
	}
	attrs.positions = positions

	if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
		if attrs.normals, err = readVec3Accessor(doc, normIdx); err != nil {
			return attrs, false, fmt.Errorf("read normals: %w", err)
		}
	}
	if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
		if attrs.uvs, err = readVec2Accessor(doc, uvIdx); err != nil {
			return attrs, false, fmt.Errorf("read uvs: %w", err)
		}
	}
	if prim.Indices != nil {
		if attrs.indices, err = readIndices(doc, *prim.Indices); err != nil {
			return attrs, false, fmt.Errorf("read indices: %w", err)
		}
	}
	return attrs, true, nil
}

// windCW reverses a CCW-wound glTF triangle (a,b,c) to the CW winding
// this engine's Y-flipped screen convention treats as front-facing.
func windCW(a, b, c int) [3]int {
	return [3]int{a, c, b}
}

func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for i := range m.Primitives {
		prim := &m.Primitives[i]
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		attrs, hasPositions, err := l.readPrimitive(doc, prim)
		if err != nil {
			return err
		}
		if !hasPositions {
			continue
		}

		base := len(mesh.Vertices)
		for vi, p := range attrs.positions {
			v := MeshVertex{Position: math3d.Point(p.X, p.Y, p.Z)}
			if vi < len(attrs.normals) {
				n := attrs.normals[vi]
				v.Normal = math3d.Direction(n.X, n.Y, n.Z)
			}
			if vi < len(attrs.uvs) {
				// glTF has a top-left UV origin, the same as
				// Texture.Sample (v=0 is the image's top row).
				v.UV = attrs.uvs[vi]
			}
			mesh.Vertices = append(mesh.Vertices, v)
		}

		triangleIndices := attrs.indices
		if triangleIndices == nil {
			triangleIndices = make([]int, len(attrs.positions))
			for vi := range triangleIndices {
				triangleIndices[vi] = vi
			}
		}
		for t := 0; t+2 < len(triangleIndices); t += 3 {
			tri := windCW(triangleIndices[t], triangleIndices[t+1], triangleIndices[t+2])
			mesh.Faces = append(mesh.Faces, Face{V: [3]int{base + tri[0], base + tri[1], base + tri[2]}})
		}
	}
	return nil
}

// accessorBuffer resolves an accessor down to its backing byte slice
// plus the start offset and element stride to read it at, shared by
// every typed reader below.
func accessorBuffer(doc *gltf.Document, accessor *gltf.Accessor, defaultStride int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.URI != "" {
		return nil, 0, 0, fmt.Errorf("external buffers not supported")
	}
	if buffer.Data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = defaultStride
	}
	start := bufferView.ByteOffset + accessor.ByteOffset
	return buffer.Data, start, stride, nil
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vector, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, start, stride, err := accessorBuffer(doc, accessor, 12)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vector, accessor.Count)
	for i := range result {
		offset := start + i*stride
		result[i] = math3d.V4(
			readFloat32(data[offset:]),
			readFloat32(data[offset+4:]),
			readFloat32(data[offset+8:]),
			0)
	}
	return result, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, start, stride, err := accessorBuffer(doc, accessor, 8)
	if err != nil {
		return nil, err
	}
	result := make([]math3d.Vec2, accessor.Count)
	for i := range result {
		offset := start + i*stride
		result[i] = math3d.V2(readFloat32(data[offset:]), readFloat32(data[offset+4:]))
	}
	return result, nil
}

// readIndices reads a SCALAR accessor's component values, widening
// whichever of the three glTF index encodings is present to int.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR index accessor, got %v", accessor.Type)
	}

	componentSize := map[gltf.ComponentType]int{
		gltf.ComponentUbyte:  1,
		gltf.ComponentUshort: 2,
		gltf.ComponentUint:   4,
	}[accessor.ComponentType]
	if componentSize == 0 {
		return nil, fmt.Errorf("unsupported index component type: %v", accessor.ComponentType)
	}
	data, start, stride, err := accessorBuffer(doc, accessor, componentSize)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := start + i*stride
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result[i] = int(data[offset])
		case gltf.ComponentUshort:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case gltf.ComponentUint:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

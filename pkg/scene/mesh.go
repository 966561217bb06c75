// Package scene supplies the demo's content: a hard-coded cube and
// procedural checkerboard by default, or an externally loaded glTF
// mesh and image texture when -model/-texture are given. It sits
// above pkg/render the way the teacher's pkg/models sits above
// pkg/render: it produces render.Vertex/render.Texture data, it
// never rasterizes anything itself.
package scene

import "github.com/swraster/mini3d/pkg/math3d"

// Mesh is a triangle mesh in object space: positions, normals and
// texture coordinates per vertex, plus triangle indices. Grounded on
// the teacher's pkg/models.Mesh, retargeted from the teacher's
// float64 Vec3/Vec2 to this repo's float32 math3d.Vector/Vec2.
type Mesh struct {
	Name     string
	Vertices []MeshVertex
	Faces    []Face

	BoundsMin math3d.Vector
	BoundsMax math3d.Vector
}

// MeshVertex holds one vertex's object-space attributes.
type MeshVertex struct {
	Position math3d.Vector
	Normal   math3d.Vector
	UV       math3d.Vec2
}

// Face is a triangle as three indices into Mesh.Vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty, named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds recomputes the mesh's axis-aligned bounding box by
// folding every vertex position into a running min/max pair.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi := m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices {
		lo, hi = lo.Min3(v.Position), hi.Max3(v.Position)
	}
	m.BoundsMin, m.BoundsMax = lo, hi
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() math3d.Vector {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the bounding box's extent along each axis.
func (m *Mesh) Size() math3d.Vector {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of faces.
func (m *Mesh) TriangleCount() int { return len(m.Faces) }

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// faceWinding returns face f's three vertex positions in winding
// order, used to derive its unnormalized normal via a cross product.
func (m *Mesh) faceWinding(f Face) (v0, v1, v2 math3d.Vector) {
	return m.Vertices[f.V[0]].Position, m.Vertices[f.V[1]].Position, m.Vertices[f.V[2]].Position
}

func unnormalizedFaceNormal(v0, v1, v2 math3d.Vector) math3d.Vector {
	return v1.Sub(v0).Cross3(v2.Sub(v0))
}

// CalculateNormals assigns each face's flat normal to its three
// vertices. A vertex shared by multiple faces ends up carrying
// whichever face was written to it last; CalculateSmoothNormals
// exists for meshes where that matters.
func (m *Mesh) CalculateNormals() {
	for _, f := range m.Faces {
		normal := unnormalizedFaceNormal(m.faceWinding(f)).Normalize3()
		for _, idx := range f.V {
			m.Vertices[idx].Normal = normal
		}
	}
}

// CalculateSmoothNormals sums each vertex's incident, unnormalized
// face normals and renormalizes once all faces have contributed,
// producing continuous shading across shared edges.
func (m *Mesh) CalculateSmoothNormals() {
	accum := make([]math3d.Vector, len(m.Vertices))
	for _, f := range m.Faces {
		normal := unnormalizedFaceNormal(m.faceWinding(f))
		for _, idx := range f.V {
			accum[idx] = accum[idx].Add(normal)
		}
	}
	for i, n := range accum {
		m.Vertices[i].Normal = n.Normalize3()
	}
}

// Transform applies mat to every vertex position (as a point). Normals
// use mat's inverse transpose, the standard construction that keeps a
// normal perpendicular to its surface under non-uniform scaling, not
// just mat itself. Bounds are recomputed afterward.
func (m *Mesh) Transform(mat math3d.Matrix) {
	normalMat := mat.Inverse().Transpose()
	for i := range m.Vertices {
		m.Vertices[i].Position = math3d.Apply(m.Vertices[i].Position, mat)
		m.Vertices[i].Normal = math3d.Apply(m.Vertices[i].Normal, normalMat).Normalize3()
	}
	m.CalculateBounds()
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Name:      m.Name,
		Vertices:  make([]MeshVertex, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	return c
}

// NewCube builds the demo's default two-triangle-per-face unit cube,
// centered at the origin with side length 2, UVs spanning each face
// and flat per-face normals.
func NewCube() *Mesh {
	m := NewMesh("cube")

	type faceDef struct {
		corners [4]math3d.Vector
		normal  math3d.Vector
	}
	faces := []faceDef{
		{[4]math3d.Vector{pt(-1, -1, -1), pt(1, -1, -1), pt(1, 1, -1), pt(-1, 1, -1)}, math3d.Direction(0, 0, -1)},
		{[4]math3d.Vector{pt(-1, -1, 1), pt(1, -1, 1), pt(1, 1, 1), pt(-1, 1, 1)}, math3d.Direction(0, 0, 1)},
		{[4]math3d.Vector{pt(-1, -1, -1), pt(-1, -1, 1), pt(-1, 1, 1), pt(-1, 1, -1)}, math3d.Direction(-1, 0, 0)},
		{[4]math3d.Vector{pt(1, -1, -1), pt(1, -1, 1), pt(1, 1, 1), pt(1, 1, -1)}, math3d.Direction(1, 0, 0)},
		{[4]math3d.Vector{pt(-1, -1, -1), pt(1, -1, -1), pt(1, -1, 1), pt(-1, -1, 1)}, math3d.Direction(0, -1, 0)},
		{[4]math3d.Vector{pt(-1, 1, -1), pt(1, 1, -1), pt(1, 1, 1), pt(-1, 1, 1)}, math3d.Direction(0, 1, 0)},
	}
	uvs := [4]math3d.Vec2{math3d.V2(0, 1), math3d.V2(1, 1), math3d.V2(1, 0), math3d.V2(0, 0)}

	for _, f := range faces {
		base := len(m.Vertices)
		for i, c := range f.corners {
			m.Vertices = append(m.Vertices, MeshVertex{Position: c, Normal: f.normal, UV: uvs[i]})
		}
		// Wind both triangles so their winding normal points along
		// f.normal (outward), the winding the backface test keeps.
		i0, i1, i2, i3 := base, base+1, base+2, base+3
		if unnormalizedFaceNormal(f.corners[0], f.corners[1], f.corners[2]).Dot3(f.normal) < 0 {
			i1, i3 = i3, i1
		}
		m.Faces = append(m.Faces,
			Face{V: [3]int{i0, i1, i2}},
			Face{V: [3]int{i0, i2, i3}},
		)
	}

	m.CalculateBounds()
	return m
}

func pt(x, y, z float32) math3d.Vector {
	return math3d.Point(x, y, z)
}

package scene

import (
	"github.com/swraster/mini3d/pkg/math3d"
	"github.com/swraster/mini3d/pkg/render"
)

// Scene bundles the demo's drawable content: a mesh, a texture and a
// point light. Grounded on cmd/trophy/main.go's hard-coded demo setup
// (checker texture fallback, single-mesh viewer, light direction
// input) generalized to this repo's Device/Mesh types.
type Scene struct {
	Mesh    *Mesh
	Texture *render.Texture
	Light   render.Light
}

// NewDefaultScene builds the demo's built-in content: a unit cube and
// an 8x8-check checkerboard texture, with a point light positioned
// up and to the side of the cube.
func NewDefaultScene() *Scene {
	return &Scene{
		Mesh: NewCube(),
		Texture: render.NewCheckerTexture(64, 64, 8,
			render.RGB(0.8, 0.8, 0.8), render.RGB(0.4, 0.4, 0.4)),
		Light: render.Light{
			Position: math3d.Point(2, 1, 2),
			Color:    render.RGB(1, 1, 1),
		},
	}
}

// Load builds a Scene from optional external model/texture paths,
// falling back to the built-in cube and/or checkerboard for whichever
// path is empty. This is SPEC_FULL.md's "optional external
// mesh/texture loading" supplement: it only ever supplies alternate
// data to the same Device calls the built-in content uses.
func Load(modelPath, texturePath string) (*Scene, error) {
	s := NewDefaultScene()

	if modelPath != "" {
		mesh, err := LoadGLB(modelPath)
		if err != nil {
			return nil, err
		}
		normalizeToUnitCube(mesh)
		s.Mesh = mesh
	}

	if texturePath != "" {
		tex, err := LoadTexture(texturePath)
		if err != nil {
			return nil, err
		}
		s.Texture = tex
	}

	return s, nil
}

// normalizeToUnitCube recenters and rescales an externally loaded
// mesh to fit within a 2-unit cube, matching the built-in cube's
// scale so the demo's fixed camera distance still frames it.
func normalizeToUnitCube(m *Mesh) {
	m.CalculateBounds()
	center := m.Center()
	size := m.Size()
	extent := maxComponent(size)
	if extent == 0 {
		return
	}
	scale := 2 / extent
	mat := math3d.SetTranslate(-center.X, -center.Y, -center.Z).Mul(math3d.SetScale(scale, scale, scale))
	m.Transform(mat)
}

func maxComponent(v math3d.Vector) float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}

// Vertex converts mesh vertex i into a render.Vertex at unit white
// albedo (COLOR-mode triangles are modulated by light, not a
// per-vertex palette; TEXTURE-mode triangles read the bound texture
// instead of Color).
func (m *Mesh) Vertex(i int) render.Vertex {
	v := m.Vertices[i]
	return render.Vertex{
		Pos:    v.Position,
		Normal: v.Normal,
		TC:     v.UV,
		Color:  render.RGB(1, 1, 1),
	}
}

// Triangle returns the three render.Vertex values for face i, ready
// to pass to Device.DrawPrimitive.
func (m *Mesh) Triangle(i int) (render.Vertex, render.Vertex, render.Vertex) {
	f := m.Faces[i]
	return m.Vertex(f.V[0]), m.Vertex(f.V[1]), m.Vertex(f.V[2])
}

// Draw submits every triangle in the mesh to d.
func (m *Mesh) Draw(d *render.Device) {
	for i := range m.Faces {
		v1, v2, v3 := m.Triangle(i)
		d.DrawPrimitive(v1, v2, v3)
	}
}

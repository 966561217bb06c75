package scene

import (
	"testing"

	"github.com/swraster/mini3d/pkg/math3d"
)

func TestNewCubeShape(t *testing.T) {
	m := NewCube()
	if m.VertexCount() != 24 {
		t.Errorf("VertexCount = %d, want 24 (4 per face * 6 faces)", m.VertexCount())
	}
	if m.TriangleCount() != 12 {
		t.Errorf("TriangleCount = %d, want 12 (2 per face * 6 faces)", m.TriangleCount())
	}
	if m.BoundsMin != math3d.Point(-1, -1, -1) {
		t.Errorf("BoundsMin = %+v, want (-1,-1,-1)", m.BoundsMin)
	}
	if m.BoundsMax != math3d.Point(1, 1, 1) {
		t.Errorf("BoundsMax = %+v, want (1,1,1)", m.BoundsMax)
	}
}

func TestCalculateNormalsPerFace(t *testing.T) {
	m := NewCube()
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Direction(0, 0, 0)
	}
	m.CalculateNormals()
	for i, v := range m.Vertices {
		if v.Normal.Length3() == 0 {
			t.Fatalf("vertex %d has zero normal after CalculateNormals", i)
		}
	}
}

func TestCalculateSmoothNormalsUnitLength(t *testing.T) {
	m := NewCube()
	m.CalculateSmoothNormals()
	for i, v := range m.Vertices {
		if l := v.Normal.Length3(); l < 0.99 || l > 1.01 {
			t.Errorf("vertex %d smooth normal length = %v, want ~1", i, l)
		}
	}
}

func TestMeshTransformRecalculatesBounds(t *testing.T) {
	m := NewCube()
	m.Transform(math3d.SetScale(2, 2, 2))
	if m.BoundsMax != math3d.Point(2, 2, 2) {
		t.Errorf("BoundsMax after 2x scale = %+v, want (2,2,2)", m.BoundsMax)
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if s.Mesh == nil || s.Texture == nil {
		t.Fatal("NewDefaultScene left Mesh or Texture nil")
	}
	if s.Mesh.TriangleCount() != 12 {
		t.Errorf("default scene mesh has %d triangles, want 12", s.Mesh.TriangleCount())
	}
}

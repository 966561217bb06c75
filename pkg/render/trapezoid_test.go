package render

import (
	"testing"

	"github.com/swraster/mini3d/pkg/math3d"
)

func screenVertex(x, y float32) Vertex {
	return Vertex{Pos: math3d.V4(x, y, 0.5, 1)}
}

func TestTrapezoidsFromTriangleFlatTop(t *testing.T) {
	p1 := screenVertex(10, 0)
	p2 := screenVertex(30, 0)
	p3 := screenVertex(20, 20)
	traps := trapezoidsFromTriangle(p1, p2, p3)
	if len(traps) != 1 {
		t.Fatalf("flat-top triangle produced %d trapezoids, want 1", len(traps))
	}
	if traps[0].top != 0 || traps[0].bottom != 20 {
		t.Errorf("trapezoid span = [%v,%v], want [0,20]", traps[0].top, traps[0].bottom)
	}
}

func TestTrapezoidsFromTriangleFlatBottom(t *testing.T) {
	p1 := screenVertex(20, 0)
	p2 := screenVertex(10, 20)
	p3 := screenVertex(30, 20)
	traps := trapezoidsFromTriangle(p1, p2, p3)
	if len(traps) != 1 {
		t.Fatalf("flat-bottom triangle produced %d trapezoids, want 1", len(traps))
	}
}

func TestTrapezoidsFromTriangleGeneral(t *testing.T) {
	p1 := screenVertex(20, 0)
	p2 := screenVertex(5, 10)
	p3 := screenVertex(30, 30)
	traps := trapezoidsFromTriangle(p1, p2, p3)
	if len(traps) != 2 {
		t.Fatalf("general triangle produced %d trapezoids, want 2", len(traps))
	}
	if traps[0].bottom != traps[1].top {
		t.Errorf("trapezoids should share the split scanline: %v != %v", traps[0].bottom, traps[1].top)
	}
}

func TestTrapezoidsFromTriangleDegenerateFlat(t *testing.T) {
	p1 := screenVertex(0, 5)
	p2 := screenVertex(10, 5)
	p3 := screenVertex(20, 5)
	if traps := trapezoidsFromTriangle(p1, p2, p3); len(traps) != 0 {
		t.Errorf("zero-height triangle produced %d trapezoids, want 0", len(traps))
	}
}

func TestTrapezoidsFromTriangleDegenerateVertical(t *testing.T) {
	p1 := screenVertex(5, 0)
	p2 := screenVertex(5, 10)
	p3 := screenVertex(5, 20)
	if traps := trapezoidsFromTriangle(p1, p2, p3); len(traps) != 0 {
		t.Errorf("zero-width triangle produced %d trapezoids, want 0", len(traps))
	}
}

func TestVertexDivisionAndAdd(t *testing.T) {
	x1 := Vertex{Pos: math3d.V4(0, 0, 0, 1), Rhw: 1}
	x2 := Vertex{Pos: math3d.V4(10, 0, 0, 1), Rhw: 2}
	var step Vertex
	vertexDivision(&step, &x1, &x2, 10)
	if !approxEq32(step.Pos.X, 1, 1e-5) {
		t.Errorf("step.Pos.X = %v, want 1", step.Pos.X)
	}
	if !approxEq32(step.Rhw, 0.1, 1e-5) {
		t.Errorf("step.Rhw = %v, want 0.1", step.Rhw)
	}

	v := x1
	vertexAdd(&v, &step)
	if !approxEq32(v.Pos.X, 1, 1e-5) {
		t.Errorf("after one add, Pos.X = %v, want 1", v.Pos.X)
	}
}

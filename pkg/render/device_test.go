package render

import (
	"math"
	"testing"

	"github.com/swraster/mini3d/pkg/math3d"
)

func frontFacingTriangle(color Color) (Vertex, Vertex, Vertex) {
	// Clockwise in screen space once projected: clip-space x grows
	// right, y grows up, matching a front-facing triangle under the
	// device's Y-flip homogenize step.
	v1 := Vertex{Pos: math3d.Point(0, 0.5, 1), Color: color}
	v2 := Vertex{Pos: math3d.Point(0.5, -0.5, 1), Color: color}
	v3 := Vertex{Pos: math3d.Point(-0.5, -0.5, 1), Color: color}
	return v1, v2, v3
}

// newTestDevice wires a perspective projection with a 90-degree FOV
// and unit aspect, chosen so that fax=1 and a point's clip-space
// w equals its own z: x'=x, y'=y, w'=z. That keeps the screen-space
// math in the rest of this file simple while still exercising real
// rhw-based depth testing (unlike an identity projection, where every
// vertex would carry the same w=1 and the depth test could never
// distinguish near from far).
func newTestDevice(w, h int) *Device {
	d := NewDevice(w, h)
	d.Transform.Projection = math3d.SetPerspective(float32(math.Pi)/2, 1, 0.1, 10)
	d.Transform.Update()
	return d
}

func TestClearFillsBackground(t *testing.T) {
	d := NewDevice(4, 4)
	d.SetBackground(RGB(0.2, 0.3, 0.4))
	d.Clear()
	want := RGB(0.2, 0.3, 0.4).Pack()
	for i, px := range d.Framebuffer() {
		if px != want {
			t.Fatalf("pixel %d = %#x, want %#x", i, px, want)
		}
	}
}

func TestDrawPrimitiveCoversInterior(t *testing.T) {
	d := newTestDevice(64, 64)
	d.SetRenderState(RenderColor)
	d.Clear()
	v1, v2, v3 := frontFacingTriangle(RGB(1, 0, 0))
	d.DrawPrimitive(v1, v2, v3)

	cx, cy := 32, 32
	px := d.Framebuffer()[cy*64+cx]
	if px == 0 {
		t.Errorf("center pixel (%d,%d) untouched after drawing a covering triangle", cx, cy)
	}
	if d.Stats.Drawn != 1 {
		t.Errorf("Stats.Drawn = %d, want 1", d.Stats.Drawn)
	}
}

func TestDrawPrimitiveCullsBackface(t *testing.T) {
	d := newTestDevice(64, 64)
	d.SetRenderState(RenderColor)
	d.Clear()
	// Reverse winding of frontFacingTriangle: back-facing.
	v1 := Vertex{Pos: math3d.Point(-0.5, -0.5, 1), Color: RGB(1, 0, 0)}
	v2 := Vertex{Pos: math3d.Point(0.5, -0.5, 1), Color: RGB(1, 0, 0)}
	v3 := Vertex{Pos: math3d.Point(0, 0.5, 1), Color: RGB(1, 0, 0)}
	d.DrawPrimitive(v1, v2, v3)

	if d.Stats.Culled != 1 || d.Stats.Drawn != 0 {
		t.Errorf("Stats = %+v, want one culled triangle and zero drawn", d.Stats)
	}
	for i, px := range d.Framebuffer() {
		if px != 0 {
			t.Fatalf("pixel %d = %#x, want untouched background after backface cull", i, px)
		}
	}
}

func TestDrawPrimitiveRejectsOutsideCVV(t *testing.T) {
	d := newTestDevice(64, 64)
	d.SetRenderState(RenderColor)
	d.Clear()
	v1 := Vertex{Pos: math3d.Point(0, 0, -5)} // z<0, fails near-plane test
	v2 := Vertex{Pos: math3d.Point(1, 0, -5)}
	v3 := Vertex{Pos: math3d.Point(0, 1, -5)}
	d.DrawPrimitive(v1, v2, v3)

	if d.Stats.Culled != 1 {
		t.Errorf("Stats.Culled = %d, want 1 for an out-of-CVV triangle", d.Stats.Culled)
	}
}

func TestDrawPrimitiveDepthOrdering(t *testing.T) {
	d := newTestDevice(64, 64)
	d.SetRenderState(RenderColor)
	d.Clear()

	near := RGB(1, 0, 0)
	far := RGB(0, 0, 1)

	v1n, v2n, v3n := frontFacingTriangle(near)
	v1n.Pos.Z, v2n.Pos.Z, v3n.Pos.Z = 0.5, 0.5, 0.5
	d.DrawPrimitive(v1n, v2n, v3n)

	v1f, v2f, v3f := frontFacingTriangle(far)
	v1f.Pos.Z, v2f.Pos.Z, v3f.Pos.Z = 0.9, 0.9, 0.9
	d.DrawPrimitive(v1f, v2f, v3f)

	got := UnpackColor(d.Framebuffer()[32*64+32])
	if got.R < 0.5 || got.B > 0.5 {
		t.Errorf("center pixel = %+v, want the nearer (red) triangle to remain visible", got)
	}
}

func TestDrawPrimitiveWireframe(t *testing.T) {
	d := newTestDevice(64, 64)
	d.SetRenderState(RenderWireframe)
	d.SetForeground(RGB(1, 1, 1))
	d.Clear()
	v1, v2, v3 := frontFacingTriangle(RGB(1, 0, 0))
	d.DrawPrimitive(v1, v2, v3)

	any := false
	for _, px := range d.Framebuffer() {
		if px != 0 {
			any = true
			break
		}
	}
	if !any {
		t.Error("wireframe draw left the framebuffer entirely untouched")
	}
}

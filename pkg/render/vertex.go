package render

import "github.com/swraster/mini3d/pkg/math3d"

// Vertex is the per-vertex record passed to DrawPrimitive (Pos in
// world space) and, once projected to screen space, carried through
// triangle setup and scanline interpolation. Rhw is only meaningful
// from vertexRhwInit onward; before that it's left at whatever the
// caller set (normally 0).
type Vertex struct {
	Pos    math3d.Vector
	TC     math3d.Vec2
	Color  Color
	Normal math3d.Vector
	Rhw    float32
}

// vertexRhwInit premultiplies a vertex's interpolated attributes by
// 1/w (rhw), so that interpolating the premultiplied attributes
// linearly in screen space and dividing by the interpolated rhw at
// each pixel yields perspective-correct results. Normal is left
// un-premultiplied per spec: lighting reconstructs world position
// and uses the interpolated normal as the caller supplied it (no
// transform is applied to normals).
func vertexRhwInit(v *Vertex) {
	rhw := 1 / v.Pos.W
	v.Rhw = rhw
	v.TC = math3d.V2(v.TC.X*rhw, v.TC.Y*rhw)
	v.Color = v.Color.Scale(rhw)
}

// vertexInterp linearly interpolates every field of x1 and x2 at
// parameter t, including Rhw, and stores the result in y.
func vertexInterp(y *Vertex, x1, x2 *Vertex, t float32) {
	y.Pos = x1.Pos.Lerp(x2.Pos, t)
	y.TC = x1.TC.Lerp(x2.TC, t)
	y.Color = x1.Color.Lerp(x2.Color, t)
	y.Normal = x1.Normal.Lerp(x2.Normal, t)
	y.Rhw = x1.Rhw + (x2.Rhw-x1.Rhw)*t
}

// vertexDivision computes the per-unit step (x2-x1)/w for every
// field, used to build the per-pixel increment across a scanline of
// width w.
func vertexDivision(y *Vertex, x1, x2 *Vertex, w float32) {
	inv := float32(1)
	if w != 0 {
		inv = 1 / w
	}
	y.Pos = x2.Pos.Sub(x1.Pos).Scale(inv)
	y.TC = x2.TC.Sub(x1.TC).Scale(inv)
	y.Color = x2.Color.Sub(x1.Color).Scale(inv)
	y.Normal = x2.Normal.Sub(x1.Normal).Scale(inv)
	y.Rhw = (x2.Rhw - x1.Rhw) * inv
}

// vertexAdd accumulates step into y in place, advancing a scanline
// vertex by one pixel.
func vertexAdd(y *Vertex, step *Vertex) {
	y.Pos = y.Pos.Add(step.Pos)
	y.TC = y.TC.Add(step.TC)
	y.Color = y.Color.Add(step.Color)
	y.Normal = y.Normal.Add(step.Normal)
	y.Rhw += step.Rhw
}

// Package math3d provides the vector and matrix algebra behind the
// mini3d rasterizer: 4-component vectors and row-major, row-vector
// matrices over 32-bit floats, using a left-handed coordinate system.
package math3d

import "math"

// Vector is a homogeneous 4-component vector of 32-bit floats. It is
// used both as a point (w=1) and as a direction (w=0); clip-space and
// screen-space vertices carry a meaningful w throughout the pipeline.
type Vector struct {
	X, Y, Z, W float32
}

// V4 creates a Vector from four components.
func V4(x, y, z, w float32) Vector {
	return Vector{x, y, z, w}
}

// Point creates a Vector representing a point (w=1).
func Point(x, y, z float32) Vector {
	return Vector{x, y, z, 1}
}

// Direction creates a Vector representing a direction (w=0).
func Direction(x, y, z float32) Vector {
	return Vector{x, y, z, 0}
}

// Zero4 returns the zero vector.
func Zero4() Vector {
	return Vector{}
}

// Add returns a + b, componentwise including w.
func (a Vector) Add(b Vector) Vector {
	return Vector{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub returns a - b, componentwise including w.
func (a Vector) Sub(b Vector) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

// Scale returns a * s, componentwise including w.
func (a Vector) Scale(s float32) Vector {
	return Vector{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div returns a divided by s componentwise, including w.
func (a Vector) Div(s float32) Vector {
	inv := 1 / s
	return a.Scale(inv)
}

// Dot3 returns the 3-component dot product, ignoring w.
func (a Vector) Dot3(b Vector) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross3 returns the 3-component cross product, with w=0.
func (a Vector) Cross3(b Vector) Vector {
	return Vector{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
		0,
	}
}

// Length3 returns the 3-component magnitude, ignoring w.
func (a Vector) Length3() float32 {
	return float32(math.Sqrt(float64(a.Dot3(a))))
}

// Normalize3 returns a unit-length vector in the same 3-component
// direction as a, preserving w. Returns a unchanged if its length is
// zero.
func (a Vector) Normalize3() Vector {
	l := a.Length3()
	if l == 0 {
		return a
	}
	inv := 1 / l
	return Vector{a.X * inv, a.Y * inv, a.Z * inv, a.W}
}

// Min3 returns the componentwise minimum of a and b's xyz, used for
// axis-aligned bounding box accumulation. W is taken from a.
func (a Vector) Min3(b Vector) Vector {
	return Vector{minf(a.X, b.X), minf(a.Y, b.Y), minf(a.Z, b.Z), a.W}
}

// Max3 returns the componentwise maximum of a and b's xyz. W is
// taken from a.
func (a Vector) Max3(b Vector) Vector {
	return Vector{maxf(a.X, b.X), maxf(a.Y, b.Y), maxf(a.Z, b.Z), a.W}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// Lerp returns the linear interpolation between a and b at parameter
// t, componentwise including w. Used by vertex_interp.
func (a Vector) Lerp(b Vector, t float32) Vector {
	return Vector{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
		a.W + (b.W-a.W)*t,
	}
}

// Vec2 is a 2-component vector of 32-bit floats, used for texture
// coordinates.
type Vec2 struct {
	X, Y float32
}

// V2 creates a Vec2 from two components.
func V2(x, y float32) Vec2 {
	return Vec2{x, y}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns a * s.
func (a Vec2) Scale(s float32) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Lerp returns the linear interpolation between a and b at parameter t.
func (a Vec2) Lerp(b Vec2, t float32) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

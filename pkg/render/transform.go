package render

import "github.com/swraster/mini3d/pkg/math3d"

// Clip-volume rejection bits returned by checkCVV, one per plane.
const (
	cvvNear = 1 << iota
	cvvFar
	cvvLeft
	cvvRight
	cvvBottom
	cvvTop
)

// TransformStack composes the world/view/projection matrices used by
// a single Device and caches their product, following the teacher's
// Camera lazy-recompute pattern (ViewMatrix/ProjectionMatrix cached
// behind dirty flags) generalized to spec.md's explicit transform
// stack with its own vp/vp-inverse caching.
type TransformStack struct {
	World      math3d.Matrix
	View       math3d.Matrix
	Projection math3d.Matrix

	transform math3d.Matrix // World * View * Projection
	vp        math3d.Matrix // View * Projection
	vpInverse math3d.Matrix

	Width, Height int
}

// NewTransformStack creates a transform stack for a width x height
// target, with World/View/Projection initialized to identity. Callers
// must set View/Projection and call Update before use.
func NewTransformStack(width, height int) *TransformStack {
	ts := &TransformStack{
		World:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Width:      width,
		Height:     height,
	}
	ts.Update()
	return ts
}

// Update recomputes the cached composite transform, the view*projection
// matrix and its inverse. Call after changing World/View/Projection.
func (ts *TransformStack) Update() {
	ts.transform = ts.World.Mul(ts.View).Mul(ts.Projection)
	ts.vp = ts.View.Mul(ts.Projection)
	ts.vpInverse = ts.vp.Inverse()
}

// Apply transforms v by the cached world*view*projection matrix.
func (ts *TransformStack) Apply(v math3d.Vector) math3d.Vector {
	return math3d.Apply(v, ts.transform)
}

// checkCVV tests a clip-space vector against the canonical view
// volume (0 <= z <= w, -w <= x,y <= w). A zero result means v is
// inside the volume; spec.md treats any non-zero result as "reject
// the whole primitive," never split it.
func checkCVV(v math3d.Vector) int {
	w := v.W
	check := 0
	if v.Z < 0 {
		check |= cvvNear
	}
	if v.Z > w {
		check |= cvvFar
	}
	if v.X < -w {
		check |= cvvLeft
	}
	if v.X > w {
		check |= cvvRight
	}
	if v.Y < -w {
		check |= cvvBottom
	}
	if v.Y > w {
		check |= cvvTop
	}
	return check
}

// homogenize performs the perspective divide and maps the result into
// screen space: x,y in pixel coordinates with the Y axis flipped
// (NDC +Y is up, screen +Y is down), z left in NDC for reference.
func homogenize(ts *TransformStack, v math3d.Vector) math3d.Vector {
	rhw := 1 / v.W
	x := (v.X*rhw + 1) * float32(ts.Width) * 0.5
	y := (1 - v.Y*rhw) * float32(ts.Height) * 0.5
	z := v.Z * rhw
	return math3d.V4(x, y, z, 1)
}

// homogenizeReverse maps a screen-space point with a known rhw back
// to the clip-space vector it came from: the exact inverse of
// homogenize. Used by lighting to recover a pixel's view/world
// position from its interpolated screen coordinates and rhw.
func homogenizeReverse(ts *TransformStack, screen math3d.Vector, rhw float32) math3d.Vector {
	w := 1 / rhw
	ndcX := (screen.X/(float32(ts.Width)*0.5) - 1)
	ndcY := 1 - screen.Y/(float32(ts.Height)*0.5)
	return math3d.V4(ndcX*w, ndcY*w, screen.Z*w, w)
}

// worldPosition reconstructs the world-space position of a shaded
// pixel from its screen-space coordinates and rhw, by undoing the
// homogenize step and then applying the inverse view*projection
// matrix. World transform is assumed folded into the vertex stream
// already (mini3d's transform stack has no separate model matrix
// inverse requirement since lighting operates in view-independent
// world space prior to camera placement).
func worldPosition(ts *TransformStack, screen math3d.Vector, rhw float32) math3d.Vector {
	clip := homogenizeReverse(ts, screen, rhw)
	return math3d.Apply(clip, ts.vpInverse)
}

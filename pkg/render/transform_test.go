package render

import (
	"math"
	"testing"

	"github.com/swraster/mini3d/pkg/math3d"
)

func TestCheckCVVInside(t *testing.T) {
	v := math3d.V4(0, 0, 1, 2)
	if got := checkCVV(v); got != 0 {
		t.Errorf("checkCVV(inside) = %d, want 0", got)
	}
}

func TestCheckCVVRejectsEachPlane(t *testing.T) {
	cases := []struct {
		name string
		v    math3d.Vector
	}{
		{"behind near", math3d.V4(0, 0, -1, 2)},
		{"beyond far", math3d.V4(0, 0, 3, 2)},
		{"left of frustum", math3d.V4(-3, 0, 1, 2)},
		{"right of frustum", math3d.V4(3, 0, 1, 2)},
		{"below frustum", math3d.V4(0, -3, 1, 2)},
		{"above frustum", math3d.V4(0, 3, 1, 2)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := checkCVV(c.v); got == 0 {
				t.Errorf("checkCVV(%+v) = 0, want a reject bit set", c.v)
			}
		})
	}
}

func TestHomogenizeCentersOrigin(t *testing.T) {
	ts := NewTransformStack(800, 600)
	v := math3d.V4(0, 0, 1, 1)
	p := homogenize(ts, v)
	if !approxEq32(p.X, 400, 1e-3) || !approxEq32(p.Y, 300, 1e-3) {
		t.Errorf("homogenize(0,0) = (%v,%v), want (400,300)", p.X, p.Y)
	}
}

func TestHomogenizeReverseRoundTrip(t *testing.T) {
	ts := NewTransformStack(640, 480)
	v := math3d.V4(0.3, -0.2, 0.6, 2.5)
	screen := homogenize(ts, v)
	rhw := 1 / v.W
	back := homogenizeReverse(ts, screen, rhw)
	if !approxEq32(back.X, v.X, 1e-2) || !approxEq32(back.Y, v.Y, 1e-2) || !approxEq32(back.Z, v.Z, 1e-2) || !approxEq32(back.W, v.W, 1e-2) {
		t.Errorf("homogenizeReverse(homogenize(v)) = %+v, want %+v", back, v)
	}
}

func TestWorldPositionRoundTripsThroughViewProjection(t *testing.T) {
	ts := NewTransformStack(320, 240)
	ts.View = math3d.SetLookAt(math3d.Point(0, 0, -5), math3d.Point(0, 0, 0), math3d.Direction(0, 1, 0))
	ts.Projection = math3d.SetPerspective(float32(math.Pi)/2, 320.0/240.0, 1, 500)
	ts.Update()

	world := math3d.Point(1, 0.5, 0)
	clip := math3d.Apply(world, ts.vp)
	screen := homogenize(ts, clip)
	rhw := 1 / clip.W

	got := worldPosition(ts, screen, rhw)
	if !approxEq32(got.X, world.X, 1e-2) || !approxEq32(got.Y, world.Y, 1e-2) || !approxEq32(got.Z, world.Z, 1e-2) {
		t.Errorf("worldPosition reconstruction = %+v, want %+v", got, world)
	}
}

func approxEq32(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

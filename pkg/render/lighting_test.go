package render

import (
	"testing"

	"github.com/swraster/mini3d/pkg/math3d"
)

func TestShadeFacingLightIsBrighterThanFacingAway(t *testing.T) {
	pos := math3d.Point(0, 0, 0)
	cam := math3d.Point(0, 0, -2)
	light := Light{Position: math3d.Point(0, 0, -2), Color: RGB(1, 1, 1)}
	albedo := RGB(0.5, 0.5, 0.5)

	facing := Shade(pos, math3d.Direction(0, 0, -1), cam, light, albedo)
	away := Shade(pos, math3d.Direction(0, 0, 1), cam, light, albedo)

	if facing.R <= away.R {
		t.Errorf("facing-light shade R = %v, want brighter than facing-away shade R = %v", facing.R, away.R)
	}
}

func TestShadeCloserLightIsBrighter(t *testing.T) {
	pos := math3d.Point(0, 0, 0)
	cam := math3d.Point(0, 0, -5)
	normal := math3d.Direction(0, 0, -1)
	albedo := RGB(1, 1, 1)

	near := Shade(pos, normal, cam, Light{Position: math3d.Point(0, 0, -1), Color: RGB(1, 1, 1)}, albedo)
	far := Shade(pos, normal, cam, Light{Position: math3d.Point(0, 0, -10), Color: RGB(1, 1, 1)}, albedo)

	if near.R <= far.R {
		t.Errorf("near-light shade R = %v, want brighter than far-light shade R = %v", near.R, far.R)
	}
}

func TestShadeAtLightPositionReturnsAlbedo(t *testing.T) {
	pos := math3d.Point(1, 2, 3)
	light := Light{Position: pos, Color: RGB(1, 1, 1)}
	albedo := RGB(0.4, 0.5, 0.6)
	got := Shade(pos, math3d.Direction(0, 1, 0), math3d.Point(0, 0, 0), light, albedo)
	if got != albedo {
		t.Errorf("Shade at zero light distance = %+v, want unmodified albedo %+v", got, albedo)
	}
}

package render

import (
	"math"

	"github.com/swraster/mini3d/pkg/math3d"
)

// Blinn-Phong constants fixed by spec.md §4.7: a low, non-physical
// specular exponent and full gloss, so the demo's lit cube reads
// clearly at terminal resolution rather than aiming for realism.
const (
	specularExp = 2
	gloss       = 1
)

// Light is a single point light: position in world space and an
// unattenuated color.
type Light struct {
	Position math3d.Vector
	Color    Color
}

// Shade computes Blinn-Phong lighting for a point at worldPos with
// the given (already normalized-on-use) surface normal, viewed from
// camPos, lit by light, modulating the surface's albedo. Attenuation
// is 2/dist^2 per spec.md; diffuse and specular terms are both
// clamped at zero so a surface facing away from the light or the
// viewer contributes nothing.
func Shade(worldPos, normal math3d.Vector, camPos math3d.Vector, light Light, albedo Color) Color {
	n := normal.Normalize3()

	toLight := light.Position.Sub(worldPos)
	dist := toLight.Length3()
	if dist == 0 {
		return albedo
	}
	l := toLight.Normalize3()

	toEye := camPos.Sub(worldPos).Normalize3()
	half := l.Add(toEye).Normalize3()

	diff := n.Dot3(l)
	if diff < 0 {
		diff = 0
	}
	specDot := n.Dot3(half)
	if specDot < 0 {
		specDot = 0
	}
	spec := float32(math.Pow(float64(specDot), specularExp))

	atten := float32(2) / (dist * dist)

	diffuse := albedo.Modulate(light.Color).Scale(diff * atten)
	specular := light.Color.Scale(spec * gloss * atten)

	return diffuse.Add(specular)
}

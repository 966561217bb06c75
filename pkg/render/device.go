package render

import "github.com/swraster/mini3d/pkg/math3d"

// RenderState is a bitmask selecting which of the demo's three draw
// modes are active for a given primitive, matching spec.md §6
// exactly: a triangle can be filled with COLOR, textured, and/or
// outlined in WIREFRAME, combined freely.
type RenderState uint32

const (
	RenderWireframe RenderState = 1 << iota
	RenderTexture
	RenderColor
)

// Stats counts per-frame triangle outcomes, adapted from the
// teacher's CullingStats (meshes tested/culled/drawn) down to
// triangle granularity for this repo's single-mesh demo.
type Stats struct {
	Tested  int
	Culled  int
	Drawn   int
}

// Device owns the framebuffer, depth buffer, bound texture, transform
// stack and render state for one frame target, mirroring the
// teacher's Rasterizer (camera + framebuffer + zbuffer ownership,
// bounds-checked pixel accessors) generalized to spec.md's
// Device/render_state/trapezoid pipeline.
type Device struct {
	Transform *TransformStack

	width, height int
	framebuffer   []uint32
	zbuffer       []float32

	texture *Texture
	light   *Light

	state RenderState

	background uint32
	foreground uint32

	CameraPosition math3d.Vector

	DisableBackfaceCulling bool

	Stats Stats
}

// NewDevice creates a Device for a width x height target with COLOR
// rendering enabled by default.
func NewDevice(width, height int) *Device {
	d := &Device{
		Transform:  NewTransformStack(width, height),
		width:      width,
		height:     height,
		state:      RenderColor,
		foreground: 0xffffff,
	}
	d.framebuffer = make([]uint32, width*height)
	d.zbuffer = make([]float32, width*height)
	return d
}

// Width and Height report the device's pixel dimensions.
func (d *Device) Width() int  { return d.width }
func (d *Device) Height() int { return d.height }

// Framebuffer returns the packed 0x00RRGGBB pixel buffer, row-major.
func (d *Device) Framebuffer() []uint32 { return d.framebuffer }

// SetRenderState replaces the active render-state bitmask.
func (d *Device) SetRenderState(s RenderState) { d.state = s }

// RenderState returns the active render-state bitmask.
func (d *Device) RenderState() RenderState { return d.state }

// SetBackground sets the color Clear fills the framebuffer with.
func (d *Device) SetBackground(c Color) { d.background = c.Pack() }

// SetForeground sets the color wireframe edges are drawn in.
func (d *Device) SetForeground(c Color) { d.foreground = c.Pack() }

// SetTexture binds the texture sampled by RenderTexture primitives.
// A nil texture disables texturing even if RenderTexture is set.
func (d *Device) SetTexture(t *Texture) { d.texture = t }

// SetLight binds a point light that per-pixel Blinn-Phong shading is
// computed against. A nil light disables shading: COLOR/TEXTURE
// primitives are then drawn at their unlit albedo, as before.
func (d *Device) SetLight(l *Light) { d.light = l }

// Clear resets the framebuffer to the background color and the depth
// buffer to "nothing drawn yet" (rhw = 0, the minimum possible value,
// so the very first fragment at any pixel always passes the
// rhw >= zbuffer test).
func (d *Device) Clear() {
	for i := range d.framebuffer {
		d.framebuffer[i] = d.background
	}
	for i := range d.zbuffer {
		d.zbuffer[i] = 0
	}
	d.Stats = Stats{}
}

func (d *Device) getPixel(x, y int) (uint32, bool) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return 0, false
	}
	return d.framebuffer[y*d.width+x], true
}

func (d *Device) setPixel(x, y int, c uint32) {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return
	}
	d.framebuffer[y*d.width+x] = c
}

// DrawLine rasterizes a line segment with Bresenham's algorithm,
// clipping silently at the framebuffer bounds.
func (d *Device) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy
	x, y := x0, y0
	for {
		d.setPixel(x, y, c)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// backfaceCull reports whether the screen-space triangle p1,p2,p3
// (already homogenized) is back-facing: its signed screen-space area
// is <= 0 under the left-handed, Y-down screen convention where a
// front-facing triangle winds clockwise in pixel coordinates.
func backfaceCull(p1, p2, p3 math3d.Vector) bool {
	e1x, e1y := p2.X-p1.X, p2.Y-p1.Y
	e2x, e2y := p3.X-p1.X, p3.Y-p1.Y
	area2 := e1x*e2y - e1y*e2x
	return area2 <= 0
}

// DrawPrimitive transforms, clips, and rasterizes one triangle
// according to the active render state: COLOR and/or TEXTURE fill it
// via trapezoid/scanline rasterization, WIREFRAME additionally
// outlines it. Degenerate and fully-clipped triangles are silent
// no-ops.
func (d *Device) DrawPrimitive(v1, v2, v3 Vertex) {
	d.Stats.Tested++

	c1 := d.Transform.Apply(v1.Pos)
	c2 := d.Transform.Apply(v2.Pos)
	c3 := d.Transform.Apply(v3.Pos)

	if checkCVV(c1) != 0 || checkCVV(c2) != 0 || checkCVV(c3) != 0 {
		d.Stats.Culled++
		return
	}

	p1 := homogenize(d.Transform, c1)
	p2 := homogenize(d.Transform, c2)
	p3 := homogenize(d.Transform, c3)

	if !d.DisableBackfaceCulling && backfaceCull(p1, p2, p3) {
		d.Stats.Culled++
		return
	}

	if d.state&(RenderTexture|RenderColor) != 0 {
		t1, t2, t3 := v1, v2, v3
		t1.Pos, t2.Pos, t3.Pos = p1, p2, p3
		t1.Pos.W, t2.Pos.W, t3.Pos.W = c1.W, c2.W, c3.W

		vertexRhwInit(&t1)
		vertexRhwInit(&t2)
		vertexRhwInit(&t3)

		for _, trap := range trapezoidsFromTriangle(t1, t2, t3) {
			d.renderTrap(trap)
		}
	}

	if d.state&RenderWireframe != 0 {
		d.DrawLine(int(p1.X), int(p1.Y), int(p2.X), int(p2.Y), d.foreground)
		d.DrawLine(int(p1.X), int(p1.Y), int(p3.X), int(p3.Y), d.foreground)
		d.DrawLine(int(p3.X), int(p3.Y), int(p2.X), int(p2.Y), d.foreground)
	}

	d.Stats.Drawn++
}

func (d *Device) renderTrap(trap Trapezoid) {
	top := int(trap.top + 0.5)
	bottom := int(trap.bottom + 0.5)
	for y := top; y < bottom; y++ {
		if y < 0 {
			continue
		}
		if y >= d.height {
			break
		}
		trap.edgeInterp(float32(y) + 0.5)
		sl := trap.initScanLine(y)
		d.drawScanline(sl)
	}
}

func (d *Device) drawScanline(sl Scanline) {
	x, w := sl.x, sl.w
	v := sl.v
	row := sl.y * d.width
	for ; w > 0; x, w = x+1, w-1 {
		if x >= 0 && x < d.width {
			idx := row + x
			rhw := v.Rhw
			if rhw >= d.zbuffer[idx] {
				d.zbuffer[idx] = rhw
				invW := float32(1)
				if rhw != 0 {
					invW = 1 / rhw
				}

				var albedo Color
				wrote := false
				if d.state&RenderTexture != 0 && d.texture != nil {
					u := v.TC.X * invW
					tv := v.TC.Y * invW
					albedo = d.texture.Sample(u, tv)
					wrote = true
				} else if d.state&RenderColor != 0 {
					albedo = v.Color.Scale(invW)
					wrote = true
				}
				if wrote {
					if d.light != nil {
						screen := math3d.V4(float32(x), float32(sl.y), v.Pos.Z, 1)
						worldPos := worldPosition(d.Transform, screen, rhw)
						albedo = Shade(worldPos, v.Normal, d.CameraPosition, *d.light, albedo)
					}
					d.framebuffer[idx] = albedo.Pack()
				}
			}
		}
		vertexAdd(&v, &sl.step)
	}
}

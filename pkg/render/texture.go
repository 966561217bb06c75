package render

import "math"

// Texture is a bound image sampled with clamp-only addressing and
// bilinear filtering, matching spec.md's TexCoord/Device contract: no
// wrap/repeat, at most 1024x1024. Grounded on the teacher's Texture
// (sampleBilinear/wrapPixelCoord/lerpColor) but trimmed to the single
// addressing mode spec.md specifies.
type Texture struct {
	Width, Height int
	Pixels        []Color // row-major, Pixels[y*Width+x]
}

// NewTexture allocates a Width x Height texture, cleared to black.
func NewTexture(width, height int) *Texture {
	return &Texture{Width: width, Height: height, Pixels: make([]Color, width*height)}
}

// NewCheckerTexture builds a two-color checkerboard, the demo's
// default texture when none is loaded from disk.
func NewCheckerTexture(width, height, checkSize int, a, b Color) *Texture {
	t := NewTexture(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if (x/checkSize+y/checkSize)%2 == 1 {
				c = b
			}
			t.Pixels[y*width+x] = c
		}
	}
	return t
}

func (t *Texture) at(x, y int) Color {
	return t.Pixels[y*t.Width+x]
}

// SetPixel writes a texel, silently ignoring out-of-bounds coordinates.
func (t *Texture) SetPixel(x, y int, c Color) {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return
	}
	t.Pixels[y*t.Width+x] = c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sample performs bilinear filtering at texture coordinate (u,v),
// clamping both u and v to [0,1] and clamping sample footprints to
// the texture edge (no wrap), per spec.md §4.6: scale to texel space
// by max_u = Width-1 / max_v = Height-1 (not a -0.5 texel-center
// bias), take the fractional part, and blend the four clamped
// neighbors. Coordinates are indexed row-major ([y][x]); spec.md's
// column-major note is treated as an equivalent internal layout, per
// the normalization it explicitly allows.
func (t *Texture) Sample(u, v float32) Color {
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}

	maxU := float32(t.Width - 1)
	maxV := float32(t.Height - 1)

	fu := u * maxU
	fv := v * maxV

	x0 := int(math.Floor(float64(fu)))
	y0 := int(math.Floor(float64(fv)))
	tx := fu - float32(x0)
	ty := fv - float32(y0)

	x1 := x0 + 1
	y1 := y0 + 1

	x0 = clampInt(x0, 0, t.Width-1)
	x1 = clampInt(x1, 0, t.Width-1)
	y0 = clampInt(y0, 0, t.Height-1)
	y1 = clampInt(y1, 0, t.Height-1)

	c00 := t.at(x0, y0)
	c10 := t.at(x1, y0)
	c01 := t.at(x0, y1)
	c11 := t.at(x1, y1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/swraster/mini3d/pkg/render"
)

// LoadTexture decodes a PNG or JPEG file into a render.Texture,
// grounded on the teacher's texture.go LoadTexture (os.Open +
// image.Decode + 16-bit-to-8-bit channel narrowing).
func LoadTexture(path string) (*render.Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene: decode texture %q: %w", path, err)
	}
	return TextureFromImage(img), nil
}

// TextureFromImage converts a decoded image.Image into a render.Texture.
func TextureFromImage(img image.Image) *render.Texture {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	tex := render.NewTexture(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			tex.SetPixel(x, y, render.RGB(
				float32(r>>8)/255,
				float32(g>>8)/255,
				float32(b>>8)/255,
			))
		}
	}
	return tex
}

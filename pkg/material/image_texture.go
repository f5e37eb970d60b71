package material

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidTexture is returned when texture pixel data does not describe a usable grid
var ErrInvalidTexture = errors.New("invalid texture")

// ImageTexture provides color from a decoded 2D pixel grid
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture from already-decoded pixels
func NewImageTexture(width, height int, pixels []core.Vec3) (*ImageTexture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d", ErrInvalidTexture, width, height)
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%w: got %d pixels for %dx%d grid", ErrInvalidTexture, len(pixels), width, height)
	}

	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// NewImageTextureFromImage converts a decoded image into a texture.
// Decoding the file is the caller's job.
func NewImageTextureFromImage(img image.Image) (*ImageTexture, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", ErrInvalidTexture)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// Sample looks up the nearest pixel. u and v are clamped to [0, 1], NaN reads as 0;
// v=0 is the bottom row of the image.
func (t *ImageTexture) Sample(u, v float64, p core.Vec3) core.Vec3 {
	if math.IsNaN(u) {
		u = 0
	}
	if math.IsNaN(v) {
		v = 0
	}
	u = min(1, max(0, u))
	v = 1.0 - min(1, max(0, v))

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	// u or v of exactly 1 would index one past the edge
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

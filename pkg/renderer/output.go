package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxChannel keeps 256·c below 256 so the byte never wraps
const maxChannel = 0.999

// channelByte converts a gamma-corrected channel to 0..255; NaN maps to 0
func channelByte(c float64) byte {
	if math.IsNaN(c) {
		return 0
	}
	return byte(256 * min(maxChannel, max(0, c)))
}

// ColorToBytes converts an averaged linear color to 8-bit RGB with gamma 2
func ColorToBytes(linear core.Vec3) (r, g, b byte) {
	corrected := linear.GammaCorrect(2.0)
	return channelByte(corrected.X), channelByte(corrected.Y), channelByte(corrected.Z)
}

// PixelsToImage wraps row-major RGB triples into an opaque RGBA image
func PixelsToImage(width, height int, pixels []byte) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			offset := 3 * (j*width + i)
			img.SetRGBA(i, j, color.RGBA{
				R: pixels[offset],
				G: pixels[offset+1],
				B: pixels[offset+2],
				A: 255,
			})
		}
	}
	return img
}

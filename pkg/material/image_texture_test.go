package material

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// TestImageTextureSample tests basic texture sampling
func TestImageTextureSample(t *testing.T) {
	// Layout:
	//   white black
	//   black white
	pixels := []core.Vec3{
		core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0), // Row 0 (top in image coords)
		core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), // Row 1 (bottom in image coords)
	}
	texture, err := NewImageTexture(2, 2, pixels)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"bottom-left", 0.1, 0.1, black},
		{"bottom-right", 0.9, 0.1, white},
		{"top-left", 0.1, 0.9, white},
		{"top-right", 0.9, 0.9, black},
		{"u=1 v=1 stays in bounds", 1.0, 1.0, black},
		{"u=0 v=0 stays in bounds", 0.0, 0.0, black},
		{"out of range clamps", -3.0, 7.0, white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Sample(tt.u, tt.v, core.Vec3{})
			if !result.Equals(tt.expected) {
				t.Errorf("UV(%.1f,%.1f): expected %v, got %v", tt.u, tt.v, tt.expected, result)
			}
		})
	}
}

func TestNewImageTexture_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		pixels        []core.Vec3
	}{
		{"zero width", 0, 1, nil},
		{"negative height", 1, -1, nil},
		{"too few pixels", 2, 2, make([]core.Vec3, 3)},
		{"too many pixels", 1, 1, make([]core.Vec3, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewImageTexture(tt.width, tt.height, tt.pixels)
			if !errors.Is(err, ErrInvalidTexture) {
				t.Errorf("Expected ErrInvalidTexture, got %v", err)
			}
		})
	}
}

func TestNewImageTextureFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{B: 255, A: 255})

	texture, err := NewImageTextureFromImage(img)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if texture.Width != 2 || texture.Height != 1 {
		t.Fatalf("Expected 2x1 texture, got %dx%d", texture.Width, texture.Height)
	}

	if got := texture.Sample(0.25, 0.5, core.Vec3{}); !got.Equals(core.NewVec3(1, 0, 0)) {
		t.Errorf("Expected red on the left, got %v", got)
	}
	if got := texture.Sample(0.75, 0.5, core.Vec3{}); !got.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected blue on the right, got %v", got)
	}

	if _, err := NewImageTextureFromImage(nil); !errors.Is(err, ErrInvalidTexture) {
		t.Errorf("Expected ErrInvalidTexture for nil image, got %v", err)
	}
}

func TestImageTextureSample_NaN(t *testing.T) {
	pixels := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), // top row
		core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 0), // bottom row
	}
	texture, err := NewImageTexture(2, 2, pixels)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"NaN u reads as 0", math.NaN(), 0.75, pixels[0]},
		{"NaN v reads as 0", 0.75, math.NaN(), pixels[3]},
		{"both NaN", math.NaN(), math.NaN(), pixels[2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := texture.Sample(tt.u, tt.v, core.Vec3{})
			if !result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

package renderer

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewCamera_Validation(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CameraConfig)
		wantErr bool
	}{
		{"default", func(c *CameraConfig) {}, false},
		{"narrow fov", func(c *CameraConfig) { c.VFov = 0.5 }, false},
		{"zero fov", func(c *CameraConfig) { c.VFov = 0 }, true},
		{"negative fov", func(c *CameraConfig) { c.VFov = -30 }, true},
		{"straight angle fov", func(c *CameraConfig) { c.VFov = 180 }, true},
		{"nan fov", func(c *CameraConfig) { c.VFov = math.NaN() }, true},
		{"zero aspect", func(c *CameraConfig) { c.AspectRatio = 0 }, true},
		{"negative aspect", func(c *CameraConfig) { c.AspectRatio = -1 }, true},
		{"infinite aspect", func(c *CameraConfig) { c.AspectRatio = math.Inf(1) }, true},
		{"center on look-at", func(c *CameraConfig) { c.LookAt = c.Center }, true},
		{"up along view", func(c *CameraConfig) { c.Up = core.NewVec3(0, 0, 1) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCameraConfig()
			tt.modify(&config)

			camera, err := NewCamera(config)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCamera) {
					t.Errorf("Expected ErrInvalidCamera, got %v", err)
				}
				if camera != nil {
					t.Error("Expected no camera on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
		})
	}
}

func TestCamera_GetRay_Pinhole(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90,
		AspectRatio: 2,
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	// 90° vertical fov at unit distance gives a 2-high, 4-wide viewport
	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"lower left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"upper right", 1, 1, core.NewVec3(2, 1, -1)},
		{"top middle", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, nil)
			if !ray.Origin.Equals(core.Vec3{}) {
				t.Errorf("Pinhole rays should start at the camera center, got %v", ray.Origin)
			}
			if ray.Direction.Subtract(tt.direction).Length() > 1e-9 {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_GetRay_LookAtBasis(t *testing.T) {
	camera, err := NewCamera(CameraConfig{
		Center:      core.NewVec3(3, 0, 0),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        60,
		AspectRatio: 1,
	})
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}

	center := camera.GetRay(0.5, 0.5, nil)
	if center.Direction.Normalize().Subtract(core.NewVec3(-1, 0, 0)).Length() > 1e-9 {
		t.Errorf("Center ray should point at the look-at point, got %v", center.Direction)
	}

	top := camera.GetRay(0.5, 1, nil)
	if top.Direction.Y <= 0 {
		t.Errorf("t = 1 should be the top of the image, got %v", top.Direction)
	}
	right := camera.GetRay(1, 0.5, nil)
	// Looking down -X with +Y up, screen right is -Z
	if right.Direction.Z >= 0 {
		t.Errorf("s = 1 should be the right of the image, got %v", right.Direction)
	}
}

func TestCamera_SetDepthOfField(t *testing.T) {
	camera, err := NewCamera(DefaultCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	if err := camera.SetDepthOfField(5, 0.5); err != nil {
		t.Fatalf("SetDepthOfField failed: %v", err)
	}
	if camera.LensRadius() != 0.5 {
		t.Errorf("Expected lens radius 0.5, got %f", camera.LensRadius())
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	focusPoint := core.NewVec3(0, 0, -5)
	sawOffset := false

	for i := 0; i < 100; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		offset := ray.Origin.Subtract(camera.Origin())
		if offset.Length() >= 0.5+1e-12 {
			t.Fatalf("Lens offset %v exceeds the lens radius", offset)
		}
		if math.Abs(offset.Z) > 1e-12 {
			t.Fatalf("Lens offset %v should lie in the lens plane", offset)
		}
		if offset.Length() > 1e-6 {
			sawOffset = true
		}

		// Every ray through the image center converges on the focus plane
		if ray.At(1).Subtract(focusPoint).Length() > 1e-9 {
			t.Fatalf("Ray should pass through %v, reached %v", focusPoint, ray.At(1))
		}
	}

	if !sawOffset {
		t.Error("Expected lens sampling to move ray origins")
	}
}

func TestCamera_SetDepthOfField_Validation(t *testing.T) {
	tests := []struct {
		name       string
		focus      float64
		lensRadius float64
		wantErr    bool
	}{
		{"pinhole refocus", 2, 0, false},
		{"open lens", 10, 0.1, false},
		{"zero focus", 0, 0.1, true},
		{"negative focus", -1, 0.1, true},
		{"infinite focus", math.Inf(1), 0.1, true},
		{"negative radius", 1, -0.1, true},
		{"nan radius", 1, math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			camera, err := NewCamera(DefaultCameraConfig())
			if err != nil {
				t.Fatalf("NewCamera failed: %v", err)
			}
			err = camera.SetDepthOfField(tt.focus, tt.lensRadius)
			if tt.wantErr != (err != nil) {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrInvalidCamera) {
				t.Errorf("Expected ErrInvalidCamera, got %v", err)
			}
		})
	}
}

func TestCamera_PinholeRefocusKeepsDirections(t *testing.T) {
	camera, err := NewCamera(DefaultCameraConfig())
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	before := camera.GetRay(0.2, 0.7, nil).Direction.Normalize()

	if err := camera.SetDepthOfField(7, 0); err != nil {
		t.Fatalf("SetDepthOfField failed: %v", err)
	}
	after := camera.GetRay(0.2, 0.7, nil).Direction.Normalize()

	if before.Subtract(after).Length() > 1e-9 {
		t.Errorf("Moving the image plane should not change pinhole directions: %v vs %v", before, after)
	}
}

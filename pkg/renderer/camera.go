package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrInvalidCamera is returned for camera parameters that cannot produce a viewport
var ErrInvalidCamera = errors.New("invalid camera")

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	Center      core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera is looking at
	Up          core.Vec3 // Up direction (usually (0,1,0))
	VFov        float64   // Vertical field of view in degrees, in (0, 180)
	AspectRatio float64   // Viewport width / height
}

// DefaultCameraConfig returns a camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 16.0 / 9.0,
	}
}

// Camera generates primary rays from image-plane coordinates.
// It is a pinhole camera until SetDepthOfField is called, which must happen before rendering starts.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis: right, up, backward
	viewportWidth   float64
	viewportHeight  float64
	lensRadius      float64
}

// NewCamera creates a pinhole camera with its image plane at unit distance
func NewCamera(config CameraConfig) (*Camera, error) {
	if !isFinite(config.VFov) || config.VFov <= 0 || config.VFov >= 180 {
		return nil, fmt.Errorf("%w: vertical field of view must be in (0, 180) degrees, got %v", ErrInvalidCamera, config.VFov)
	}
	if !isFinite(config.AspectRatio) || config.AspectRatio <= 0 {
		return nil, fmt.Errorf("%w: aspect ratio must be positive, got %v", ErrInvalidCamera, config.AspectRatio)
	}

	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	if w.NearZero() {
		return nil, fmt.Errorf("%w: camera center and look-at point coincide", ErrInvalidCamera)
	}
	if u.NearZero() {
		return nil, fmt.Errorf("%w: up vector is parallel to the view direction", ErrInvalidCamera)
	}
	v := w.Cross(u)

	theta := core.DegreesToRadians(config.VFov)
	viewportHeight := 2.0 * math.Tan(theta/2)

	c := &Camera{
		origin:         config.Center,
		u:              u,
		v:              v,
		w:              w,
		viewportWidth:  config.AspectRatio * viewportHeight,
		viewportHeight: viewportHeight,
	}
	c.setImagePlane(1.0)

	return c, nil
}

// SetDepthOfField moves the image plane to focusDistance and opens the lens to lensRadius.
// A zero radius keeps the pinhole behaviour.
func (c *Camera) SetDepthOfField(focusDistance, lensRadius float64) error {
	if !isFinite(focusDistance) || focusDistance <= 0 {
		return fmt.Errorf("%w: focus distance must be positive, got %v", ErrInvalidCamera, focusDistance)
	}
	if !isFinite(lensRadius) || lensRadius < 0 {
		return fmt.Errorf("%w: lens radius must be non-negative, got %v", ErrInvalidCamera, lensRadius)
	}

	c.setImagePlane(focusDistance)
	c.lensRadius = lensRadius
	return nil
}

// setImagePlane places the viewport at distance d in front of the camera
func (c *Camera) setImagePlane(d float64) {
	c.horizontal = c.u.Multiply(d * c.viewportWidth)
	c.vertical = c.v.Multiply(d * c.viewportHeight)
	c.lowerLeftCorner = c.origin.
		Subtract(c.horizontal.Multiply(0.5)).
		Subtract(c.vertical.Multiply(0.5)).
		Subtract(c.w.Multiply(d))
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1,
// with (0,0) at the lower-left. The sampler is only drawn from when the lens is open.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// LensRadius returns the current lens radius, zero for a pinhole camera
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

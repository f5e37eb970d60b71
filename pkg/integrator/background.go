package integrator

import "github.com/df07/go-pathtracer/pkg/core"

// Background supplies the radiance of rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Vec3
}

// FlatBackground returns the same color in every direction
type FlatBackground struct {
	Value core.Vec3
}

// NewFlatBackground creates a constant background
func NewFlatBackground(color core.Vec3) FlatBackground {
	return FlatBackground{Value: color}
}

// Color implements Background
func (b FlatBackground) Color(ray core.Ray) core.Vec3 {
	return b.Value
}

// SkyGradient blends vertically from Bottom (looking straight down) to Top (straight up)
type SkyGradient struct {
	Top    core.Vec3
	Bottom core.Vec3
}

// NewSkyGradient creates the default white to sky-blue gradient
func NewSkyGradient() SkyGradient {
	return SkyGradient{
		Top:    core.NewVec3(0.5, 0.7, 1.0),
		Bottom: core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Color implements Background
func (g SkyGradient) Color(ray core.Ray) core.Vec3 {
	// Map the direction's y from [-1,1] to [0,1]
	t := 0.5 * (ray.Direction.Normalize().Y + 1.0)
	return g.Bottom.Multiply(1.0 - t).Add(g.Top.Multiply(t))
}

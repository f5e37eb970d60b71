package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Checker is a solid 3D checker pattern that switches between two textures
// based on the sign of sin(s·x)·sin(s·y)·sin(s·z). It ignores the surface parameterization.
type Checker struct {
	Even  Texture
	Odd   Texture
	Scale float64
}

// DefaultCheckerScale is the lattice frequency used by NewChecker
const DefaultCheckerScale = 10.0

// NewChecker creates a checker texture from two child textures
func NewChecker(even, odd Texture) *Checker {
	return &Checker{Even: even, Odd: odd, Scale: DefaultCheckerScale}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(even, odd core.Vec3) *Checker {
	return NewChecker(NewSolidColor(even), NewSolidColor(odd))
}

// Sample delegates to the even or odd texture
func (c *Checker) Sample(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Sample(u, v, p)
	}
	return c.Even.Sample(u, v, p)
}

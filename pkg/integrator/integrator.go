package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// World is anything a ray can be intersected against as one unit
// (scene.Scene and scene.Index both qualify)
type World interface {
	// Hit returns the nearest intersection with t in [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// Resolve returns the radiance arriving along ray, following at most depth bounces
	Resolve(ray core.Ray, world World, depth int, sampler core.Sampler) core.Vec3
}

// EmissionPolicy decides how a surface that emits at the hit point combines emission with scattering
type EmissionPolicy int

const (
	// EmissionTerminates ends the path with the emitted radiance; the surface only
	// scatters where it does not emit
	EmissionTerminates EmissionPolicy = iota
	// EmissionAccumulates adds the emitted radiance and keeps scattering
	EmissionAccumulates
)

// String returns the policy name
func (p EmissionPolicy) String() string {
	switch p {
	case EmissionTerminates:
		return "terminates"
	case EmissionAccumulates:
		return "accumulates"
	default:
		return "unknown"
	}
}

package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// DefaultTMin is the smallest accepted hit distance; it keeps rays from re-hitting their own origin
const DefaultTMin = 0.001

// PathTracer implements recursive unidirectional path tracing
type PathTracer struct {
	Background Background     // Radiance for escaped rays; nil means black
	Policy     EmissionPolicy // How emission combines with scattering
	TMin       float64        // Self-intersection guard; <= 0 means DefaultTMin
}

// NewPathTracer creates a path tracer with the default self-intersection guard
func NewPathTracer(background Background, policy EmissionPolicy) *PathTracer {
	return &PathTracer{
		Background: background,
		Policy:     policy,
		TMin:       DefaultTMin,
	}
}

// Resolve computes the radiance arriving along ray.
// depth is the remaining bounce budget; when it is spent the path contributes black.
func (pt *PathTracer) Resolve(ray core.Ray, world World, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, pt.tMin(), math.Inf(1))
	if !isHit {
		return pt.background(ray)
	}

	emitted, emits := hit.Material.Emitted(*hit)
	if emits && pt.Policy == EmissionTerminates {
		return emitted
	}

	scatter, didScatter := scatter(hit.Material, ray, *hit, sampler)
	if !didScatter {
		// Absorbed: only what the surface itself emits
		return emitted
	}

	incoming := pt.Resolve(scatter.Scattered, world, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

func (pt *PathTracer) tMin() float64 {
	if pt.TMin <= 0 {
		return DefaultTMin
	}
	return pt.TMin
}

func (pt *PathTracer) background(ray core.Ray) core.Vec3 {
	if pt.Background == nil {
		return core.Vec3{}
	}
	return pt.Background.Color(ray)
}

// scatter dispatches on the concrete material so the per-bounce call avoids interface dispatch
func scatter(m material.Material, ray core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	switch mat := m.(type) {
	case *material.Lambertian:
		return mat.Scatter(ray, hit, sampler)
	case *material.Metal:
		return mat.Scatter(ray, hit, sampler)
	case *material.Dielectric:
		return mat.Scatter(ray, hit, sampler)
	case *material.DiffuseLight:
		return mat.Scatter(ray, hit, sampler)
	default:
		return m.Scatter(ray, hit, sampler)
	}
}

package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	noEmission
	Albedo Texture // Metal color
	Fuzz   Texture // Red channel is the fuzz radius: 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with uniform color and fuzz
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: NewSolidColor(albedo), Fuzz: NewSolidValue(clamp01(fuzz))}
}

// NewTexturedMetal creates a metal whose color and fuzz vary over the surface
func NewTexturedMetal(albedo, fuzz Texture) *Metal {
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Perturb the mirror direction inside a sphere of radius fuzz
	fuzz := clamp01(m.Fuzz.Sample(hit.U, hit.V, hit.Point).X)
	if fuzz > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(sampler).Multiply(fuzz))
	}

	// Fuzzed directions that end up below the surface are absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected),
		Attenuation: m.Albedo.Sample(hit.U, hit.V, hit.Point),
	}, true
}

func (m *Metal) isMaterial() {}

func clamp01(x float64) float64 {
	return min(1, max(0, x))
}

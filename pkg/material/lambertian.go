package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	noEmission
	Albedo Texture // Base color/reflectance (can be solid or textured)
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a new lambertian material with texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: l.Albedo.Sample(hit.U, hit.V, hit.Point),
	}, true
}

func (l *Lambertian) isMaterial() {}

// diffuseDirection returns a cosine-weighted unit direction about normal
func diffuseDirection(normal core.Vec3, sampler core.Sampler) core.Vec3 {
	return core.SampleCosineHemisphere(normal, sampler.Get2D())
}

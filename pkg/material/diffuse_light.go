package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// maskOn is the mask channel value that switches emission on
const maskOn = 1.0

// DiffuseLight is a surface that emits its albedo where the emission mask is on
// and scatters diffusely, using the same albedo, where it is off.
type DiffuseLight struct {
	Albedo       Texture // Emitted radiance where lit, diffuse reflectance elsewhere
	EmissionMask Texture // Red channel == 1 marks emitting points
}

// NewDiffuseLight creates a light that emits a uniform color everywhere
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return NewMaskedDiffuseLight(NewSolidColor(emission), NewSolidValue(maskOn))
}

// NewTexturedDiffuseLight creates a light that emits a texture everywhere
func NewTexturedDiffuseLight(albedo Texture) *DiffuseLight {
	return NewMaskedDiffuseLight(albedo, NewSolidValue(maskOn))
}

// NewMaskedDiffuseLight creates a light that only emits where mask samples to 1
func NewMaskedDiffuseLight(albedo, mask Texture) *DiffuseLight {
	return &DiffuseLight{Albedo: albedo, EmissionMask: mask}
}

// Emitted returns the albedo where the mask is on
func (d *DiffuseLight) Emitted(hit HitRecord) (core.Vec3, bool) {
	if d.EmissionMask.Sample(hit.U, hit.V, hit.Point).X != maskOn {
		return core.Vec3{}, false
	}
	return d.Albedo.Sample(hit.U, hit.V, hit.Point), true
}

// Scatter reflects diffusely with the albedo as attenuation
func (d *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, diffuseDirection(hit.Normal, sampler)),
		Attenuation: d.Albedo.Sample(hit.U, hit.V, hit.Point),
	}, true
}

func (d *DiffuseLight) isMaterial() {}

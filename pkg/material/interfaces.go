package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Material describes how a surface scatters and emits light.
// The set of materials is closed: Lambertian, Metal, Dielectric and DiffuseLight.
// Adding a variant means adding a type here and handling it wherever materials are matched.
type Material interface {
	// Scatter returns the scattered ray and its attenuation, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the radiance emitted at the hit point, or false if the surface does not emit there
	Emitted(hit HitRecord) (core.Vec3, bool)

	isMaterial()
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Fraction of incoming light carried along the scattered ray
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, always facing against the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates for texture lookup
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// noEmission is embedded by materials that never emit light
type noEmission struct{}

// Emitted reports no emission
func (noEmission) Emitted(hit HitRecord) (core.Vec3, bool) {
	return core.Vec3{}, false
}

package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Material material.Material // Material of the quad
	normal   core.Vec3         // Unit plane normal (U × V normalized)
	d        float64           // Plane equation constant: normal · p = d
	w        core.Vec3         // (U × V) / |U × V|², solves in-plane coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Material: material,
		normal:   normal,
		d:        normal.Dot(corner),
		w:        n.Divide(n.Dot(n)),
	}
}

// Normal returns the quad's unit plane normal
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - ray.Origin.Dot(q.normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)

	// Express the hit point in the (U, V) basis
	planarHit := hitPoint.Subtract(q.Corner)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return padded(core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	))
}

func (q *Quad) isShape() {}

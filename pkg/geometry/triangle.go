package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ParallelEpsilon is the determinant magnitude below which a ray counts as parallel to a triangle.
// It is independent of the tMin passed to Hit.
const ParallelEpsilon = 1e-8

// Triangle is a single-sided triangle defined by three vertices.
// Edges and normal are cached at construction; vertices cannot be changed afterwards,
// use Translate to obtain a moved copy.
type Triangle struct {
	v0, v1, v2   core.Vec3
	edge0, edge1 core.Vec3 // v1-v0 and v2-v0
	normal       core.Vec3 // Unit face normal, counter-clockwise winding
	Material     material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, material material.Material) *Triangle {
	edge0 := v1.Subtract(v0)
	edge1 := v2.Subtract(v0)
	return &Triangle{
		v0:       v0,
		v1:       v1,
		v2:       v2,
		edge0:    edge0,
		edge1:    edge1,
		normal:   edge0.Cross(edge1).Normalize(),
		Material: material,
	}
}

// Vertices returns the triangle's three vertices
func (t *Triangle) Vertices() (core.Vec3, core.Vec3, core.Vec3) {
	return t.v0, t.v1, t.v2
}

// Normal returns the cached unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Translate returns a new triangle moved by offset
func (t *Triangle) Translate(offset core.Vec3) *Triangle {
	return NewTriangle(t.v0.Add(offset), t.v1.Add(offset), t.v2.Add(offset), t.Material)
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// Rays arriving from behind the face are rejected.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	h := ray.Direction.Cross(t.edge1)
	a := t.edge0.Dot(h)

	// Ray lies in (or parallel to) the triangle's plane
	if math.Abs(a) < ParallelEpsilon {
		return nil, false
	}

	// Single-sided
	if ray.Direction.Dot(t.normal) > 0 {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(t.edge0)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * t.edge1.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		U:        u,
		V:        v,
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return padded(core.NewAABBFromPoints(t.v0, t.v1, t.v2))
}

func (t *Triangle) isShape() {}

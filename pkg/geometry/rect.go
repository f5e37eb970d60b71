package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Plane names the axis-aligned plane an AxisRect lies in
type Plane int

const (
	// PlaneXY is a rectangle at constant z, outward normal +Z
	PlaneXY Plane = iota
	// PlaneXZ is a rectangle at constant y, outward normal +Y
	PlaneXZ
	// PlaneYZ is a rectangle at constant x, outward normal +X
	PlaneYZ
)

// axes returns the in-plane axes and the constant axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

// AxisRect is an axis-aligned rectangle [A0,A1]×[B0,B1] at coordinate K on the constant axis
type AxisRect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewAxisRect creates an axis-aligned rectangle
func NewAxisRect(plane Plane, a0, a1, b0, b1, k float64, material material.Material) *AxisRect {
	return &AxisRect{
		Plane:    plane,
		A0:       math.Min(a0, a1),
		A1:       math.Max(a0, a1),
		B0:       math.Min(b0, b1),
		B1:       math.Max(b0, b1),
		K:        k,
		Material: material,
	}
}

// Hit tests if a ray intersects with the rectangle
func (r *AxisRect) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if r.A1 == r.A0 || r.B1 == r.B0 {
		return nil, false
	}

	axisA, axisB, axisK := r.Plane.axes()

	dirK := ray.Direction.Component(axisK)
	if math.Abs(dirK) < 1e-8 {
		return nil, false
	}

	t := (r.K - ray.Origin.Component(axisK)) / dirK
	if t < tMin || t > tMax {
		return nil, false
	}

	point := ray.At(t)
	a := point.Component(axisA)
	b := point.Component(axisB)
	if a < r.A0 || a > r.A1 || b < r.B0 || b > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    point,
		U:        (a - r.A0) / (r.A1 - r.A0),
		V:        (b - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.outwardNormal())

	return hitRecord, true
}

func (r *AxisRect) outwardNormal() core.Vec3 {
	switch r.Plane {
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	case PlaneYZ:
		return core.NewVec3(1, 0, 0)
	default:
		return core.NewVec3(0, 0, 1)
	}
}

// BoundingBox returns the rectangle's bounds, padded along the constant axis
func (r *AxisRect) BoundingBox() core.AABB {
	var lo, hi [3]float64
	axisA, axisB, axisK := r.Plane.axes()
	lo[axisA], hi[axisA] = r.A0, r.A1
	lo[axisB], hi[axisB] = r.B0, r.B1
	lo[axisK], hi[axisK] = r.K, r.K
	return padded(core.NewAABB(
		core.NewVec3(lo[0], lo[1], lo[2]),
		core.NewVec3(hi[0], hi[1], hi[2]),
	))
}

func (r *AxisRect) isShape() {}

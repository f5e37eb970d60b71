package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Box is a six-sided solid made of quads. It is not a primitive of its own:
// intersecting it means intersecting its faces and keeping the nearest hit.
type Box struct {
	Material material.Material // Material for all faces
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates an axis-aligned box spanning two opposite corners a and b
func NewBox(a, b core.Vec3, material material.Material) *Box {
	lo := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	hi := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(hi.X-lo.X, 0, 0)
	dy := core.NewVec3(0, hi.Y-lo.Y, 0)
	dz := core.NewVec3(0, 0, hi.Z-lo.Z)

	return newBox(material, [6]*Quad{
		NewQuad(core.NewVec3(lo.X, lo.Y, hi.Z), dx, dy, material),          // front
		NewQuad(core.NewVec3(hi.X, lo.Y, hi.Z), dz.Negate(), dy, material), // right
		NewQuad(core.NewVec3(hi.X, lo.Y, lo.Z), dx.Negate(), dy, material), // back
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dz, dy, material),          // left
		NewQuad(core.NewVec3(lo.X, hi.Y, hi.Z), dx, dz.Negate(), material), // top
		NewQuad(core.NewVec3(lo.X, lo.Y, lo.Z), dx, dz, material),          // bottom
	})
}

// NewOrientedBox creates a parallelepiped from a corner and three edge vectors.
// With mutually perpendicular edges this is an arbitrarily rotated box.
func NewOrientedBox(origin, a, b, height core.Vec3, material material.Material) *Box {
	return newBox(material, [6]*Quad{
		NewQuad(origin, a, height, material),        // front
		NewQuad(origin.Add(b), a, height, material), // back
		NewQuad(origin, b, height, material),        // left
		NewQuad(origin.Add(a), b, height, material), // right
		NewQuad(origin.Add(height), a, b, material), // top
		NewQuad(origin, a, b, material),             // bottom
	})
}

func newBox(material material.Material, faces [6]*Quad) *Box {
	bbox := faces[0].BoundingBox()
	for _, face := range faces[1:] {
		bbox = bbox.Union(face.BoundingBox())
	}
	return &Box{Material: material, faces: faces, bbox: bbox}
}

// Faces returns the six quads making up the box
func (b *Box) Faces() [6]*Quad {
	return b.faces
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax

	for _, face := range b.faces {
		if hit, isHit := face.Hit(ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}

func (b *Box) isShape() {}

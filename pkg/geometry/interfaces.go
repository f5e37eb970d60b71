package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// boundsPadding thickens flat bounding boxes so planar shapes still have volume
const boundsPadding = 1e-4

// Shape is implemented by every primitive that can be hit by rays.
// The set is closed: Sphere, Triangle, Quad, Box and AxisRect.
type Shape interface {
	// Hit returns the intersection with t in [tMin, tMax], if any
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the shape, used for optional culling
	BoundingBox() core.AABB

	isShape()
}

// padded returns a box whose every axis is at least boundsPadding thick
func padded(box core.AABB) core.AABB {
	size := box.Size()
	delta := core.Vec3{}
	if size.X < boundsPadding {
		delta.X = boundsPadding / 2
	}
	if size.Y < boundsPadding {
		delta.Y = boundsPadding / 2
	}
	if size.Z < boundsPadding {
		delta.Z = boundsPadding / 2
	}
	return core.NewAABB(box.Min.Subtract(delta), box.Max.Add(delta))
}

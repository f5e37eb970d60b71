package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Scene is an unordered collection of shapes intersected as one unit.
// Shapes and their materials must not be modified while a render is running.
type Scene struct {
	Shapes []geometry.Shape
}

// NewScene creates a scene from the given shapes
func NewScene(shapes ...geometry.Shape) *Scene {
	return &Scene{Shapes: shapes}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...geometry.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the nearest intersection with any shape in [tMin, tMax].
// Each shape is tested against the interval narrowed to the closest hit so far.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestT := tMax

	for _, shape := range s.Shapes {
		if hit, isHit := hitShape(shape, ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all shape bounds; ok is false for an empty scene
func (s *Scene) BoundingBox() (box core.AABB, ok bool) {
	for i, shape := range s.Shapes {
		if i == 0 {
			box = shape.BoundingBox()
			continue
		}
		box = box.Union(shape.BoundingBox())
	}
	return box, len(s.Shapes) > 0
}

// hitShape dispatches on the concrete shape so the hot loop avoids interface calls
func hitShape(shape geometry.Shape, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	switch s := shape.(type) {
	case *geometry.Sphere:
		return s.Hit(ray, tMin, tMax)
	case *geometry.Triangle:
		return s.Hit(ray, tMin, tMax)
	case *geometry.Quad:
		return s.Hit(ray, tMin, tMax)
	case *geometry.Box:
		return s.Hit(ray, tMin, tMax)
	case *geometry.AxisRect:
		return s.Hit(ray, tMin, tMax)
	default:
		return shape.Hit(ray, tMin, tMax)
	}
}

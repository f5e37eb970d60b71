package scene

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Tree fan-out bounds
const (
	minBranch = 2
	maxBranch = 5
)

// boundEpsilon is the smallest extent given to any R-tree rectangle side
const boundEpsilon = 1e-6

// candidatePool recycles per-query candidate buffers across workers
var candidatePool = sync.Pool{
	New: func() any {
		buf := make([]int, 0, 64)
		return &buf
	},
}

// Index culls shapes with an R-tree over their bounding boxes.
// It reports exactly the hit Scene.Hit would report for the same shapes.
type Index struct {
	shapes    []geometry.Shape
	all       *Scene // Linear fallback over the same shapes
	tree      *rtreego.Rtree
	bounds    core.AABB // Union of all indexed boxes
	unbounded []int     // Shapes with non-finite boxes, always tested
	slack     float64   // Absolute tolerance added around query boxes
}

// indexEntry adapts a shape to rtreego.Spatial
type indexEntry struct {
	order int // Position in the source scene
	rect  rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (e *indexEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NewIndex builds an index over the scene's current shapes.
// Later changes to the scene are not reflected.
func NewIndex(s *Scene) (*Index, error) {
	shapes := append([]geometry.Shape(nil), s.Shapes...)
	idx := &Index{
		shapes: shapes,
		all:    &Scene{Shapes: shapes},
		tree:   rtreego.NewTree(3, minBranch, maxBranch),
	}

	first := true
	for i, shape := range idx.shapes {
		box := shape.BoundingBox()
		if !box.IsFinite() {
			idx.unbounded = append(idx.unbounded, i)
			continue
		}

		rect, err := toRect(box)
		if err != nil {
			return nil, fmt.Errorf("failed to index shape %d: %w", i, err)
		}
		idx.tree.Insert(&indexEntry{order: i, rect: rect})

		if first {
			idx.bounds = box
			first = false
		} else {
			idx.bounds = idx.bounds.Union(box)
		}
	}

	if !first {
		extent := math.Max(maxAbs(idx.bounds.Min), maxAbs(idx.bounds.Max))
		idx.slack = boundEpsilon * math.Max(1, extent)
	}

	return idx, nil
}

// Size returns the number of shapes in the R-tree
func (idx *Index) Size() int {
	return idx.tree.Size()
}

// Hit returns the nearest intersection in [tMin, tMax].
// Candidates are the shapes whose boxes overlap the box of the ray segment inside the scene bounds.
func (idx *Index) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	buf := candidatePool.Get().(*[]int)
	candidates := append((*buf)[:0], idx.unbounded...)
	defer func() {
		*buf = candidates[:0]
		candidatePool.Put(buf)
	}()

	if idx.tree.Size() > 0 {
		if t0, t1, ok := idx.bounds.Expand(idx.slack).Clip(ray, tMin, tMax); ok {
			query := idx.bounds
			if !math.IsInf(t1, 0) {
				query = core.NewAABBFromPoints(ray.At(t0), ray.At(t1))
			}
			rect, err := toRect(query.Expand(idx.slack))
			if err != nil {
				// Degenerate query box, fall back to testing everything
				return idx.all.Hit(ray, tMin, tMax)
			}
			for _, spatial := range idx.tree.SearchIntersect(rect) {
				candidates = append(candidates, spatial.(*indexEntry).order)
			}
		}
	}

	// Test in scene order so ties resolve the way the linear scan resolves them
	slices.Sort(candidates)

	var closestHit *material.HitRecord
	closestT := tMax
	for _, i := range candidates {
		if hit, isHit := hitShape(idx.shapes[i], ray, tMin, closestT); isHit {
			closestT = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// toRect converts a box to an R-tree rectangle with every side at least boundEpsilon long
func toRect(box core.AABB) (rtreego.Rect, error) {
	size := box.Size()
	return rtreego.NewRect(
		rtreego.Point{box.Min.X, box.Min.Y, box.Min.Z},
		[]float64{
			math.Max(size.X, boundEpsilon),
			math.Max(size.Y, boundEpsilon),
			math.Max(size.Z, boundEpsilon),
		},
	)
}

func maxAbs(v core.Vec3) float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

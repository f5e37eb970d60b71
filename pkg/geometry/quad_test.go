package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit square in the XY plane, normal +Z
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial)

	tests := []struct {
		name          string
		ray           core.Ray
		shouldHit     bool
		expectedT     float64
		expectedFront bool
		expectedU     float64
		expectedV     float64
	}{
		{
			name:          "center from front",
			ray:           core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			shouldHit:     true,
			expectedT:     1,
			expectedFront: true,
			expectedU:     0.5,
			expectedV:     0.5,
		},
		{
			name:          "center from back",
			ray:           core.NewRay(core.NewVec3(0.5, 0.5, -2), core.NewVec3(0, 0, 1)),
			shouldHit:     true,
			expectedT:     2,
			expectedFront: false,
			expectedU:     0.5,
			expectedV:     0.5,
		},
		{
			name:          "corner is inclusive",
			ray:           core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
			shouldHit:     true,
			expectedT:     1,
			expectedFront: true,
			expectedU:     0,
			expectedV:     0,
		},
		{
			name:          "off-center uv",
			ray:           core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1)),
			shouldHit:     true,
			expectedT:     1,
			expectedFront: true,
			expectedU:     0.25,
			expectedV:     0.75,
		},
		{
			name:      "outside bounds",
			ray:       core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			shouldHit: false,
		},
		{
			name:      "parallel to plane",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),
			shouldHit: false,
		},
		{
			name:      "plane behind origin",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, 1)),
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := quad.Hit(tt.ray, 0.001, math.Inf(1))
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if math.Abs(hit.U-tt.expectedU) > 1e-9 || math.Abs(hit.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected uv (%f,%f), got (%f,%f)", tt.expectedU, tt.expectedV, hit.U, hit.V)
			}
			if tt.ray.Direction.Dot(hit.Normal) > 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
		})
	}
}

func TestQuad_NormalFollowsEdgeOrder(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), testMaterial)
	// (2,0,0) × (0,0,3) points along -Y
	expected := core.NewVec3(0, -1, 0)
	if quad.Normal().Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected normal %v, got %v", expected, quad.Normal())
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 2), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial)
	box := quad.BoundingBox()

	if box.Size().Z <= 0 {
		t.Errorf("Flat quad should get a thickened box, got size %v", box.Size())
	}
	if box.Min.Z > 2 || box.Max.Z < 2 {
		t.Errorf("Box %v should contain the quad plane z=2", box)
	}
	if math.Abs(box.Size().X-1) > 1e-9 {
		t.Errorf("Extent along X should not be padded, got %f", box.Size().X)
	}
}

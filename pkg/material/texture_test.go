package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColor_IgnoresInputs(t *testing.T) {
	c := core.NewVec3(0.2, 0.4, 0.6)
	texture := NewSolidColor(c)
	for _, p := range []core.Vec3{{}, core.NewVec3(5, -3, 1)} {
		if got := texture.Sample(0.3, 0.9, p); !got.Equals(c) {
			t.Errorf("Expected %v, got %v", c, got)
		}
	}
}

func TestChecker_Pattern(t *testing.T) {
	even := core.NewVec3(1, 1, 1)
	odd := core.NewVec3(0, 0, 0)
	checker := NewCheckerColors(even, odd)

	// sin(10·0.1)^3 > 0 → even; flipping one axis flips the sign → odd
	positive := core.NewVec3(0.1, 0.1, 0.1)
	negative := core.NewVec3(-0.1, 0.1, 0.1)

	if got := checker.Sample(0, 0, positive); !got.Equals(even) {
		t.Errorf("Expected even color at %v, got %v", positive, got)
	}
	if got := checker.Sample(0, 0, negative); !got.Equals(odd) {
		t.Errorf("Expected odd color at %v, got %v", negative, got)
	}

	// Surface coordinates must not matter
	if got := checker.Sample(0.9, 0.9, positive); !got.Equals(even) {
		t.Errorf("Checker should ignore UV, got %v", got)
	}
}

func TestChecker_NestedTextures(t *testing.T) {
	inner := NewCheckerColors(core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0))
	checker := NewChecker(inner, NewSolidColor(core.NewVec3(0, 0, 1)))

	p := core.NewVec3(0.1, 0.1, 0.1)
	if got := checker.Sample(0, 0, p); !got.Equals(inner.Sample(0, 0, p)) {
		t.Errorf("Expected delegation to inner texture, got %v", got)
	}
}

func TestGreyscale_Modes(t *testing.T) {
	source := NewSolidColor(core.NewVec3(0.2, 0.5, 0.8))

	tests := []struct {
		name     string
		mode     ChannelMode
		expected float64
	}{
		{"red", ChannelRed, 0.2},
		{"green", ChannelGreen, 0.5},
		{"blue", ChannelBlue, 0.8},
		{"luminance", ChannelLuminance, 0.299*0.2 + 0.587*0.5 + 0.114*0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGreyscale(source, tt.mode).Sample(0, 0, core.Vec3{})
			for _, c := range []float64{got.X, got.Y, got.Z} {
				if math.Abs(c-tt.expected) > 1e-12 {
					t.Errorf("Expected %f on every channel, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestGreyscale_GreySourceIsExact(t *testing.T) {
	for _, value := range []float64{0, 0.5, 1} {
		source := NewSolidValue(value)
		for _, mode := range []ChannelMode{ChannelLuminance, ChannelRed, ChannelGreen, ChannelBlue} {
			got := (&Greyscale{Source: source, Mode: mode}).Sample(0, 0, core.Vec3{})
			if got.X != value || got.Y != value || got.Z != value {
				t.Errorf("Mode %d over grey %v: expected exactly %v, got %v", mode, value, value, got)
			}
		}
	}
}

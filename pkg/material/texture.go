package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Sample returns color at surface coordinates (u, v) and 3D point p.
	// UV is used for image textures, the point for solid procedural textures.
	Sample(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// NewSolidValue creates a solid texture with the same value on every channel
func NewSolidValue(value float64) *SolidColor {
	return NewSolidColor(core.NewVec3(value, value, value))
}

// Sample returns the solid color regardless of UV or position
func (s *SolidColor) Sample(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// ChannelMode selects how a Greyscale texture reduces color to one value
type ChannelMode int

const (
	// ChannelLuminance uses perceptual luminance
	ChannelLuminance ChannelMode = iota
	// ChannelRed uses the red channel only
	ChannelRed
	// ChannelGreen uses the green channel only
	ChannelGreen
	// ChannelBlue uses the blue channel only
	ChannelBlue
)

// Greyscale reduces a source texture to a single value replicated on all channels.
// It is used for emission masks and fuzz maps.
type Greyscale struct {
	Source Texture
	Mode   ChannelMode
}

// NewGreyscale creates a greyscale view of a texture
func NewGreyscale(source Texture, mode ChannelMode) *Greyscale {
	return &Greyscale{Source: source, Mode: mode}
}

// Sample returns the selected channel of the source texture on every channel
func (g *Greyscale) Sample(u, v float64, p core.Vec3) core.Vec3 {
	c := g.Source.Sample(u, v, p)

	// Weighted sums of equal channels can round below the channel value
	if c.X == c.Y && c.Y == c.Z {
		return c
	}

	var value float64
	switch g.Mode {
	case ChannelRed:
		value = c.X
	case ChannelGreen:
		value = c.Y
	case ChannelBlue:
		value = c.Z
	default:
		value = c.Luminance()
	}
	return core.NewVec3(value, value, value)
}

package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a finished render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Bands           int           // Number of row bands the image was split into
	Workers         int           // Number of parallel workers
	SamplesPerPixel int           // Samples averaged per pixel
	MaxDepth        int           // Bounce budget per sample
	Duration        time.Duration // Wall-clock render time
}

// TotalPixels returns the number of pixels rendered
func (s RenderStats) TotalPixels() int {
	return s.Width * s.Height
}

// TotalSamples returns the number of camera rays traced
func (s RenderStats) TotalSamples() int {
	return s.TotalPixels() * s.SamplesPerPixel
}

// String summarizes the stats on one line
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d spp, depth %d, %d bands on %d workers, %v",
		s.Width, s.Height, s.SamplesPerPixel, s.MaxDepth, s.Bands, s.Workers, s.Duration.Round(time.Millisecond))
}

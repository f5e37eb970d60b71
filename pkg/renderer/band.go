package renderer

// Band is a contiguous range of image rows rendered by one task
type Band struct {
	Index    int // Position of the band from the top of the image
	StartRow int // First row, inclusive
	EndRow   int // Last row, exclusive
}

// Rows returns the number of rows in the band
func (b Band) Rows() int {
	return b.EndRow - b.StartRow
}

// Bands splits height rows into n bands of height/n rows each; the last band takes the remainder.
// n is clamped to [1, height] so no band is empty.
func Bands(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	rowsPerBand := height / n
	bands := make([]Band, n)
	for k := range bands {
		bands[k] = Band{
			Index:    k,
			StartRow: k * rowsPerBand,
			EndRow:   (k + 1) * rowsPerBand,
		}
	}
	bands[n-1].EndRow = height

	return bands
}

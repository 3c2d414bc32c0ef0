package analyzer

import (
	"image"
)

// gridPatternDetector looks for the regular repeating structure of an
// azulejo tile panel: evenly spaced dark grout lines along both axes.
type gridPatternDetector struct{}

// NewGridPatternDetector creates the tile grid detector.
func NewGridPatternDetector() PatternDetector {
	return &gridPatternDetector{}
}

// DetectTileGrid reports whether the image shows a regular tile grid.
func (d *gridPatternDetector) DetectTileGrid(img image.Image) bool {
	gray := GrayscaleOf(img)
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 64 || height < 64 {
		return false
	}

	rowLines := d.countDarkLines(gray, width, height, true)
	colLines := d.countDarkLines(gray, width, height, false)

	// A panel shows several grout lines on both axes
	return rowLines >= 3 && colLines >= 3
}

// countDarkLines scans intensity profiles perpendicular to one axis and
// counts pronounced dark bands at roughly even spacing.
func (d *gridPatternDetector) countDarkLines(gray *image.Gray, width, height int, horizontal bool) int {
	outer, inner := height, width
	if !horizontal {
		outer, inner = width, height
	}

	// Average intensity per scan line
	profile := make([]float64, outer)
	for i := 0; i < outer; i++ {
		var sum float64
		for j := 0; j < inner; j++ {
			if horizontal {
				sum += float64(gray.GrayAt(gray.Bounds().Min.X+j, gray.Bounds().Min.Y+i).Y)
			} else {
				sum += float64(gray.GrayAt(gray.Bounds().Min.X+i, gray.Bounds().Min.Y+j).Y)
			}
		}
		profile[i] = sum / float64(inner)
	}

	var mean float64
	for _, v := range profile {
		mean += v
	}
	mean /= float64(len(profile))

	// Count local minima well below the mean, suppressing adjacent hits
	threshold := mean * 0.8
	lines, lastLine := 0, -10
	for i := 1; i < len(profile)-1; i++ {
		if profile[i] < threshold && profile[i] <= profile[i-1] && profile[i] <= profile[i+1] {
			if i-lastLine >= 8 {
				lines++
				lastLine = i
			}
		}
	}
	return lines
}

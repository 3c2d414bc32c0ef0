package analyzer

import (
	"image"
	"image/draw"
	"math"
)

// PixelMetrics holds the pixel statistics the preservation assessment reads.
type PixelMetrics struct {
	AvgLuminance  float64
	AvgSaturation float64
	AvgR          float64
	AvgG          float64
	AvgB          float64
}

// ChannelImbalance measures the spread between the most and least present
// colour channels; aged prints drift towards a single cast.
func (m PixelMetrics) ChannelImbalance() float64 {
	maxChannel := math.Max(m.AvgR, math.Max(m.AvgG, m.AvgB))
	minChannel := math.Min(m.AvgR, math.Min(m.AvgG, m.AvgB))
	return maxChannel - minChannel
}

type pixelMetricsCalculator struct{}

// NewMetricsCalculator creates the pixel metrics calculator.
func NewMetricsCalculator() MetricsCalculator {
	return &pixelMetricsCalculator{}
}

// CalculateBasicMetrics computes per-channel and HSV averages over the image.
func (c *pixelMetricsCalculator) CalculateBasicMetrics(img image.Image) PixelMetrics {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return PixelMetrics{}
	}

	var lum, sat, r, g, b float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			rVal, gVal, bVal, _ := img.At(x, y).RGBA()
			rf := float64(rVal) / 65535.0
			gf := float64(gVal) / 65535.0
			bf := float64(bVal) / 65535.0

			s, v := saturationValue(rf, gf, bf)
			sat += s
			lum += v
			r += rf
			g += gf
			b += bf
		}
	}

	pixelCount := float64(bounds.Dx() * bounds.Dy())
	return PixelMetrics{
		AvgLuminance:  lum / pixelCount,
		AvgSaturation: sat / pixelCount,
		AvgR:          r / pixelCount,
		AvgG:          g / pixelCount,
		AvgB:          b / pixelCount,
	}
}

// CalculateLaplacianVariance computes sharpness via the variance of the
// Laplacian response; faded or soft prints score low.
func (c *pixelMetricsCalculator) CalculateLaplacianVariance(gray *image.Gray) float64 {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width < 3 || height < 3 {
		return 0
	}

	var sum, sumSq float64
	n := 0
	for y := bounds.Min.Y + 1; y < bounds.Max.Y-1; y++ {
		for x := bounds.Min.X + 1; x < bounds.Max.X-1; x++ {
			center := float64(gray.GrayAt(x, y).Y)
			top := float64(gray.GrayAt(x, y-1).Y)
			bottom := float64(gray.GrayAt(x, y+1).Y)
			left := float64(gray.GrayAt(x-1, y).Y)
			right := float64(gray.GrayAt(x+1, y).Y)

			laplacian := -4*center + top + bottom + left + right
			sum += laplacian
			sumSq += laplacian * laplacian
			n++
		}
	}

	mean := sum / float64(n)
	return sumSq/float64(n) - mean*mean
}

// GrayscaleOf converts an image to grayscale for metric passes.
func GrayscaleOf(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

func saturationValue(r, g, b float64) (s, v float64) {
	max := math.Max(math.Max(r, g), b)
	min := math.Min(math.Min(r, g), b)
	v = max
	if max > 0 {
		s = (max - min) / max
	}
	return s, v
}

package analyzer

import (
	"context"
	"image"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// ImageRef identifies an image under analysis. Img and Metadata are optional;
// components fall back to contract-only behaviour when pixels were not
// fetched.
type ImageRef struct {
	URL      string
	Img      image.Image
	Metadata *models.ImageMetadata
}

// CulturalClassifier assigns cultural categories to an image.
type CulturalClassifier interface {
	Classify(ctx context.Context, ref ImageRef) (models.CulturalClassification, error)
}

// ObjectDetector locates culturally relevant objects in an image.
type ObjectDetector interface {
	Detect(ctx context.Context, ref ImageRef) ([]models.DetectedObject, error)
}

// TextExtractor finds text fragments and partitions them by language.
type TextExtractor interface {
	ExtractText(ctx context.Context, ref ImageRef) (models.ExtractedText, error)
}

// AuthenticityVerifier scores how authentic the depicted cultural content is
// against a claimed category.
type AuthenticityVerifier interface {
	Verify(ctx context.Context, ref ImageRef, claimed models.CulturalCategory) (models.AuthenticityScore, error)
}

// HeritageAnalyzer composes the heritage-photo specific sub-analyses.
type HeritageAnalyzer interface {
	AnalyzeHeritage(ctx context.Context, ref ImageRef, family *models.FamilyContext) (models.HeritagePhotoAnalysis, error)
}

// MetricsCalculator computes pixel-level metrics used by the preservation
// assessment.
type MetricsCalculator interface {
	CalculateBasicMetrics(img image.Image) PixelMetrics
	CalculateLaplacianVariance(gray *image.Gray) float64
}

// PatternDetector reports whether an image shows a regular tile grid.
type PatternDetector interface {
	DetectTileGrid(img image.Image) bool
}

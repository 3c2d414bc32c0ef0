package repository

import (
	"context"
	"image"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// ImageRepository defines the interface for image data access operations
type ImageRepository interface {
	// FetchImage retrieves and decodes an image from a reference
	FetchImage(ctx context.Context, imageURL string) (image.Image, string, error)

	// ValidateImageURL validates if the provided reference is acceptable
	ValidateImageURL(imageURL string) error

	// GetImageMetadata retrieves metadata about an image without decoding it
	GetImageMetadata(ctx context.Context, imageURL string) (*models.ImageMetadata, error)
}

// AnalysisRepository defines the interface for analysis result operations
type AnalysisRepository interface {
	// SaveAnalysisResult stores an analysis result
	SaveAnalysisResult(ctx context.Context, result *models.ImageAnalysisResult) error

	// GetAnalysisResult retrieves a stored analysis result by id
	GetAnalysisResult(ctx context.Context, id string) (*models.ImageAnalysisResult, error)

	// GetAnalysisHistory retrieves analysis history for a specific image URL
	GetAnalysisHistory(ctx context.Context, imageURL string) ([]*models.ImageAnalysisResult, error)
}

package repository

import (
	"context"
	"image"

	apperrors "github.com/lusolondon/cultural-vision-go/internal/errors"
	"github.com/lusolondon/cultural-vision-go/internal/storage"
	"github.com/lusolondon/cultural-vision-go/pkg/models"
	"github.com/lusolondon/cultural-vision-go/pkg/validation"
)

// FetcherImageRepository implements ImageRepository over an ImageFetcher
type FetcherImageRepository struct {
	fetcher   storage.ImageFetcher
	validator *validation.URLValidator
}

// NewImageRepository creates an image repository over the given fetcher
func NewImageRepository(fetcher storage.ImageFetcher) *FetcherImageRepository {
	return &FetcherImageRepository{
		fetcher:   fetcher,
		validator: validation.NewURLValidator(),
	}
}

// FetchImage retrieves and decodes an image from a reference
func (r *FetcherImageRepository) FetchImage(ctx context.Context, imageURL string) (image.Image, string, error) {
	img, format, err := r.fetcher.FetchImage(ctx, imageURL)
	if err != nil {
		return nil, "", apperrors.NewImageUnavailableError("image could not be retrieved", err)
	}
	return img, format, nil
}

// ValidateImageURL validates if the provided reference is acceptable
func (r *FetcherImageRepository) ValidateImageURL(imageURL string) error {
	return r.validator.ValidateImageURL(imageURL)
}

// GetImageMetadata retrieves metadata about an image without decoding it
func (r *FetcherImageRepository) GetImageMetadata(ctx context.Context, imageURL string) (*models.ImageMetadata, error) {
	meta, err := r.fetcher.FetchMetadata(ctx, imageURL)
	if err != nil {
		return nil, apperrors.NewImageUnavailableError("image metadata could not be retrieved", err)
	}
	return meta, nil
}

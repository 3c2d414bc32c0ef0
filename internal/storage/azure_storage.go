package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// AzureImageFetcher implements ImageFetcher over Azure blob storage. Blob
// references use the container path plus a "blob" query parameter.
type AzureImageFetcher struct {
	client *azblob.Client
}

func NewAzureImageFetcher(accountName string, accountKey string) (*AzureImageFetcher, error) {
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		return nil, err
	}

	client, err := azblob.NewClientWithSharedKeyCredential(
		fmt.Sprintf("https://%s.blob.core.windows.net", accountName),
		credential,
		nil,
	)
	if err != nil {
		return nil, err
	}

	return &AzureImageFetcher{client: client}, nil
}

func (s *AzureImageFetcher) FetchImage(ctx context.Context, blobURL string) (image.Image, string, error) {
	containerName, blobName, err := parseBlobRef(blobURL)
	if err != nil {
		return nil, "", err
	}

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, "", fmt.Errorf("download failed: %w", err)
	}

	retryReader := downloadResponse.Body
	defer retryReader.Close()

	img, format, err := image.Decode(retryReader)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode blob: %w", err)
	}
	return img, format, nil
}

// FetchMetadata downloads the blob header stream to learn content properties.
func (s *AzureImageFetcher) FetchMetadata(ctx context.Context, blobURL string) (*models.ImageMetadata, error) {
	containerName, blobName, err := parseBlobRef(blobURL)
	if err != nil {
		return nil, err
	}

	downloadResponse, err := s.client.DownloadStream(ctx, containerName, blobName, nil)
	if err != nil {
		return nil, fmt.Errorf("download failed: %w", err)
	}
	defer downloadResponse.Body.Close()

	meta := &models.ImageMetadata{}
	if downloadResponse.ContentType != nil {
		meta.ContentType = *downloadResponse.ContentType
		meta.Format = formatFromContentType(*downloadResponse.ContentType)
	}
	if downloadResponse.ContentLength != nil {
		meta.ContentLength = *downloadResponse.ContentLength
	}
	return meta, nil
}

func parseBlobRef(blobURL string) (container string, blob string, err error) {
	parsedURL, err := url.Parse(blobURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid blob URL: %w", err)
	}
	if len(parsedURL.Path) < 2 {
		return "", "", fmt.Errorf("blob URL missing container path")
	}
	return parsedURL.Path[1:], parsedURL.Query().Get("blob"), nil
}

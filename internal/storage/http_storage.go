package storage

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"strings"
	"time"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// ImageFetcher retrieves source images and their metadata. Analyses that do
// not need pixel data never call FetchImage.
type ImageFetcher interface {
	FetchImage(ctx context.Context, imageURL string) (image.Image, string, error)
	FetchMetadata(ctx context.Context, imageURL string) (*models.ImageMetadata, error)
}

// HTTPImageFetcher implements ImageFetcher over plain HTTP(S)
type HTTPImageFetcher struct {
	client *http.Client
}

// NewHTTPImageFetcher creates an HTTP image fetcher with connection pooling
// tuned for one-off image downloads
func NewHTTPImageFetcher(timeout time.Duration) *HTTPImageFetcher {
	transport := &http.Transport{
		MaxIdleConns:           10,
		MaxIdleConnsPerHost:    2,
		IdleConnTimeout:        30 * time.Second,
		TLSHandshakeTimeout:    10 * time.Second,
		ResponseHeaderTimeout:  10 * time.Second,
		ExpectContinueTimeout:  1 * time.Second,
		MaxResponseHeaderBytes: 4096,
	}

	return &HTTPImageFetcher{
		client: &http.Client{
			Transport: transport,
			Timeout:   timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("too many redirects (limit: 3)")
				}
				return nil
			},
		},
	}
}

// FetchImage downloads and decodes the image, retrying transient failures up
// to three times. 4xx responses are not retried.
func (h *HTTPImageFetcher) FetchImage(ctx context.Context, imageURL string) (image.Image, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}
	req.Header.Set("Accept", "image/jpeg, image/png, image/gif, */*")
	req.Header.Set("User-Agent", "Cultural-Vision/1.0")

	resp, err := h.doWithRetry(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	img, format, err := image.Decode(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// FetchMetadata issues a HEAD request; image dimensions are left zero since
// no pixel data is read.
func (h *HTTPImageFetcher) FetchMetadata(ctx context.Context, imageURL string) (*models.ImageMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}

	resp, err := h.doWithRetry(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	return &models.ImageMetadata{
		ContentType:   contentType,
		ContentLength: resp.ContentLength,
		Format:        formatFromContentType(contentType),
	}, nil
}

func (h *HTTPImageFetcher) doWithRetry(req *http.Request) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		if attempt > 0 {
			select {
			case <-req.Context().Done():
				return nil, req.Context().Err()
			case <-time.After(time.Duration(attempt) * time.Second):
			}
		}

		resp, err := h.client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}
		if resp.StatusCode == http.StatusOK {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("unexpected status code %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			// Client errors are not transient
			break
		}
	}
	return nil, fmt.Errorf("failed to fetch image after retries: %w", lastErr)
}

func formatFromContentType(contentType string) string {
	if i := strings.Index(contentType, "/"); i >= 0 {
		format := contentType[i+1:]
		if j := strings.Index(format, ";"); j >= 0 {
			format = format[:j]
		}
		return strings.TrimSpace(format)
	}
	return ""
}

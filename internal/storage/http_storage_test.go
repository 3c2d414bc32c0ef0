package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 120, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestHTTPImageFetcher_FetchImage(t *testing.T) {
	payload := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	img, format, err := fetcher.FetchImage(context.Background(), server.URL+"/photo.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if format != "png" {
		t.Errorf("Expected png format, got %q", format)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 8 || bounds.Dy() != 6 {
		t.Errorf("Expected 8x6 image, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestHTTPImageFetcher_FetchMetadata(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead {
			t.Errorf("Expected HEAD request, got %s", r.Method)
		}
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Length", "123")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	meta, err := fetcher.FetchMetadata(context.Background(), server.URL+"/photo.png")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if meta.ContentType != "image/png" {
		t.Errorf("Expected image/png, got %q", meta.ContentType)
	}
	if meta.Format != "png" {
		t.Errorf("Expected png format, got %q", meta.Format)
	}
}

func TestHTTPImageFetcher_ClientErrorNotRetried(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	_, _, err := fetcher.FetchImage(context.Background(), server.URL+"/missing.png")
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}
	if requests != 1 {
		t.Errorf("Expected no retries for a client error, got %d requests", requests)
	}
}

func TestHTTPImageFetcher_ServerErrorRetried(t *testing.T) {
	var requests int
	payload := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests < 2 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(payload)
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(10 * time.Second)
	_, _, err := fetcher.FetchImage(context.Background(), server.URL+"/flaky.png")
	if err != nil {
		t.Fatalf("Expected success after retry, got %v", err)
	}
	if requests != 2 {
		t.Errorf("Expected 2 requests, got %d", requests)
	}
}

func TestHTTPImageFetcher_UndecodableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("not an image"))
	}))
	defer server.Close()

	fetcher := NewHTTPImageFetcher(5 * time.Second)
	if _, _, err := fetcher.FetchImage(context.Background(), server.URL+"/bad.png"); err == nil {
		t.Error("Expected decode error")
	}
}

func TestFormatFromContentType(t *testing.T) {
	tests := []struct {
		contentType string
		expected    string
	}{
		{"image/png", "png"},
		{"image/jpeg; charset=binary", "jpeg"},
		{"text/plain", "plain"},
		{"garbage", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := formatFromContentType(tt.contentType); got != tt.expected {
			t.Errorf("formatFromContentType(%q): expected %q, got %q", tt.contentType, tt.expected, got)
		}
	}
}

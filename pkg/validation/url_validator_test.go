package validation

import (
	"testing"

	apperrors "github.com/lusolondon/cultural-vision-go/internal/errors"
)

func TestURLValidator_ValidateImageURL(t *testing.T) {
	validator := NewURLValidator()

	tests := []struct {
		name      string
		url       string
		expectErr bool
	}{
		{"valid https", "https://images.example.com/photo.jpg", false},
		{"valid http", "http://images.example.com/photo.jpg", false},
		{"empty url", "", true},
		{"whitespace only", "   ", true},
		{"disallowed scheme", "ftp://example.com/photo.jpg", true},
		{"missing host", "https:///photo.jpg", true},
		{"no scheme", "images.example.com/photo.jpg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateImageURL(tt.url)
			if tt.expectErr && err == nil {
				t.Errorf("Expected error for %q", tt.url)
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error for %q: %v", tt.url, err)
			}
			if tt.expectErr && err != nil && !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
				t.Errorf("Expected validation error type for %q, got %v", tt.url, err)
			}
		})
	}
}

func TestURLValidator_HostAllowlist(t *testing.T) {
	validator := NewURLValidatorWithOptions(
		[]string{"https"},
		[]string{"cdn.example.com"},
	)

	if err := validator.ValidateImageURL("https://cdn.example.com/photo.jpg"); err != nil {
		t.Errorf("Unexpected error for allowed host: %v", err)
	}
	if err := validator.ValidateImageURL("https://CDN.EXAMPLE.COM/photo.jpg"); err != nil {
		t.Errorf("Expected case-insensitive host match, got %v", err)
	}
	if err := validator.ValidateImageURL("https://other.example.com/photo.jpg"); err == nil {
		t.Error("Expected error for host outside the allowlist")
	}
	if err := validator.ValidateImageURL("http://cdn.example.com/photo.jpg"); err == nil {
		t.Error("Expected error for scheme outside the allowlist")
	}
}

package analyzer

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

func TestObjectDetector_Deterministic(t *testing.T) {
	detector := NewObjectDetector()
	ref := ImageRef{URL: "https://images.example.com/guitar.jpg"}

	first, err := detector.Detect(context.Background(), ref)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := detector.Detect(context.Background(), ref)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical detections for the same reference")
	}
}

func TestObjectDetector_BoxInvariants(t *testing.T) {
	detector := NewObjectDetector()

	dims := []struct{ width, height int }{
		{640, 480},
		{1280, 960},
		{100, 80},
		{32, 24},
	}
	urls := []string{
		"https://images.example.com/a.jpg",
		"https://images.example.com/b.jpg",
		"https://images.example.com/c.jpg",
	}

	for _, url := range urls {
		for _, dim := range dims {
			ref := ImageRef{
				URL:      url,
				Metadata: &models.ImageMetadata{Width: dim.width, Height: dim.height},
			}
			objects, err := detector.Detect(context.Background(), ref)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			for _, obj := range objects {
				if obj.Box.Width < 1 || obj.Box.Height < 1 {
					t.Errorf("Degenerate box %+v for %s at %dx%d", obj.Box, url, dim.width, dim.height)
				}
				if obj.Box.X < 0 || obj.Box.Y < 0 {
					t.Errorf("Box origin outside image: %+v for %s at %dx%d", obj.Box, url, dim.width, dim.height)
				}
				if obj.Box.X+obj.Box.Width > dim.width || obj.Box.Y+obj.Box.Height > dim.height {
					t.Errorf("Box exceeds image: %+v for %s at %dx%d", obj.Box, url, dim.width, dim.height)
				}
			}
		}
	}
}

func TestObjectDetector_ObjectFields(t *testing.T) {
	detector := NewObjectDetector()

	objects, err := detector.Detect(context.Background(), ImageRef{URL: "https://images.example.com/a.jpg"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(objects) == 0 {
		t.Fatal("Expected at least one detection")
	}

	ids := make(map[string]bool)
	for _, obj := range objects {
		if !strings.HasPrefix(obj.ID, "obj-") {
			t.Errorf("Unexpected object id format: %s", obj.ID)
		}
		if ids[obj.ID] {
			t.Errorf("Duplicate object id %s", obj.ID)
		}
		ids[obj.ID] = true

		if obj.Label.Portuguese == "" || obj.Label.English == "" {
			t.Errorf("Object %s missing bilingual label", obj.ID)
		}
		if obj.Confidence < 0 || obj.Confidence > 100 {
			t.Errorf("Object %s confidence %d outside [0,100]", obj.ID, obj.Confidence)
		}
		if obj.CulturalRelevance < 0 || obj.CulturalRelevance > 100 {
			t.Errorf("Object %s cultural relevance %d outside [0,100]", obj.ID, obj.CulturalRelevance)
		}
	}
}

func TestScaleBox_ClampsToImage(t *testing.T) {
	// A box spanning the full reference frame must stay inside small images
	box := models.BoundingBox{X: 0, Y: 300, Width: 1280, Height: 660}
	scaled := scaleBox(box, 10, 8)

	if scaled.Width < 1 || scaled.Height < 1 {
		t.Errorf("Expected non-degenerate scaled box, got %+v", scaled)
	}
	if scaled.X < 0 || scaled.Y < 0 || scaled.X+scaled.Width > 10 || scaled.Y+scaled.Height > 8 {
		t.Errorf("Scaled box out of bounds: %+v", scaled)
	}
}

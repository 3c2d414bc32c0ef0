package validation

import (
	"testing"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

func issueTypes(issues []ResultIssue) map[string]int {
	types := make(map[string]int)
	for _, issue := range issues {
		types[issue.Type]++
	}
	return types
}

func TestValidateResult_CleanResult(t *testing.T) {
	validator := NewResultValidator()

	result := &models.ImageAnalysisResult{
		Classification: models.CulturalClassification{
			PrimaryCategory:     models.CategoryFado,
			SecondaryCategories: []models.CulturalCategory{models.CategoryMusicInstruments},
			Significance:        models.CulturalSignificance{HistoricalImportance: 80, CommunityRelevance: 85},
		},
		Objects: []models.DetectedObject{
			{ID: "obj-1", Confidence: 88, Box: models.BoundingBox{X: 10, Y: 10, Width: 50, Height: 40}},
		},
		Text: models.ExtractedText{
			PortugueseText: []string{"fado"},
			EnglishText:    []string{"music"},
			MixedText:      []string{},
			Regions: []models.TextRegion{
				{Text: "fado"},
				{Text: "music"},
			},
		},
		Metadata: models.ImageMetadata{Width: 100, Height: 100},
	}

	if issues := validator.ValidateResult(result); len(issues) != 0 {
		t.Errorf("Expected no issues, got %v", issues)
	}
}

func TestValidateClassification_Violations(t *testing.T) {
	validator := NewResultValidator()

	result := &models.ImageAnalysisResult{
		Classification: models.CulturalClassification{
			PrimaryCategory:     models.CulturalCategory("graffiti"),
			SecondaryCategories: []models.CulturalCategory{models.CulturalCategory("graffiti")},
			Significance:        models.CulturalSignificance{HistoricalImportance: 130},
		},
	}

	types := issueTypes(validator.ValidateResult(result))
	if types["unknown_category"] == 0 {
		t.Error("Expected unknown_category issue")
	}
	if types["duplicate_category"] == 0 {
		t.Error("Expected duplicate_category issue")
	}
	if types["score_out_of_range"] == 0 {
		t.Error("Expected score_out_of_range issue")
	}
}

func TestValidateObjects_Violations(t *testing.T) {
	validator := NewResultValidator()

	objects := []models.DetectedObject{
		{ID: "degenerate", Confidence: 50, Box: models.BoundingBox{X: 0, Y: 0, Width: 0, Height: 10}},
		{ID: "oversized", Confidence: 50, Box: models.BoundingBox{X: 90, Y: 90, Width: 20, Height: 20}},
		{ID: "bad-score", Confidence: 120, Box: models.BoundingBox{X: 0, Y: 0, Width: 5, Height: 5}},
	}

	types := issueTypes(validator.ValidateObjects(objects, models.ImageMetadata{Width: 100, Height: 100}))
	if types["degenerate_box"] == 0 {
		t.Error("Expected degenerate_box issue")
	}
	if types["box_out_of_bounds"] == 0 {
		t.Error("Expected box_out_of_bounds issue")
	}
	if types["score_out_of_range"] == 0 {
		t.Error("Expected score_out_of_range issue")
	}
}

func TestValidateObjects_NoBoundsCheckWithoutDimensions(t *testing.T) {
	validator := NewResultValidator()

	objects := []models.DetectedObject{
		{ID: "big", Confidence: 50, Box: models.BoundingBox{X: 900, Y: 900, Width: 500, Height: 500}},
	}

	if issues := validator.ValidateObjects(objects, models.ImageMetadata{}); len(issues) != 0 {
		t.Errorf("Expected no issues without image dimensions, got %v", issues)
	}
}

func TestValidateTextPartition_Violations(t *testing.T) {
	validator := NewResultValidator()

	text := &models.ExtractedText{
		PortugueseText: []string{"festa", "shared"},
		EnglishText:    []string{"shared"},
		Regions: []models.TextRegion{
			{Text: "festa"},
			{Text: "orphan"},
		},
	}

	types := issueTypes(validator.ValidateTextPartition(text))
	if types["duplicate_fragment"] == 0 {
		t.Error("Expected duplicate_fragment issue")
	}
	if types["unpartitioned_fragment"] == 0 {
		t.Error("Expected unpartitioned_fragment issue")
	}
}

package validation

import (
	"fmt"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// ResultIssue represents one invariant violation found in an analysis result
type ResultIssue struct {
	Type     string `json:"type"`
	Message  string `json:"message"`
	Severity string `json:"severity"` // "error", "warning"
}

// ResultValidator checks analysis results against their contract invariants:
// bounded scores, non-degenerate bounding boxes, and a total duplicate-free
// language partition.
type ResultValidator struct{}

// NewResultValidator creates a result validator
func NewResultValidator() *ResultValidator {
	return &ResultValidator{}
}

// ValidateResult checks every invariant of a merged analysis result
func (rv *ResultValidator) ValidateResult(result *models.ImageAnalysisResult) []ResultIssue {
	var issues []ResultIssue

	issues = append(issues, rv.validateClassification(&result.Classification)...)
	issues = append(issues, rv.ValidateObjects(result.Objects, result.Metadata)...)
	issues = append(issues, rv.ValidateTextPartition(&result.Text)...)
	issues = append(issues, rv.validateScores(result)...)

	return issues
}

func (rv *ResultValidator) validateClassification(c *models.CulturalClassification) []ResultIssue {
	var issues []ResultIssue

	if !c.PrimaryCategory.Valid() {
		issues = append(issues, ResultIssue{
			Type:     "unknown_category",
			Message:  fmt.Sprintf("primary category %q is not in the category set", c.PrimaryCategory),
			Severity: "error",
		})
	}
	for _, secondary := range c.SecondaryCategories {
		if secondary == c.PrimaryCategory {
			issues = append(issues, ResultIssue{
				Type:     "duplicate_category",
				Message:  fmt.Sprintf("secondary category %q duplicates the primary", secondary),
				Severity: "error",
			})
		}
	}

	for name, score := range map[string]int{
		"historical_importance": c.Significance.HistoricalImportance,
		"community_relevance":   c.Significance.CommunityRelevance,
		"traditional_value":     c.Significance.TraditionalValue,
		"educational_value":     c.Significance.EducationalValue,
		"emotional_resonance":   c.Significance.EmotionalResonance,
	} {
		if score < 0 || score > 100 {
			issues = append(issues, ResultIssue{
				Type:     "score_out_of_range",
				Message:  fmt.Sprintf("significance score %s=%d outside [0,100]", name, score),
				Severity: "error",
			})
		}
	}
	return issues
}

// ValidateObjects checks detection boxes and confidences. Box bounds are only
// checked against image dimensions when metadata carries them.
func (rv *ResultValidator) ValidateObjects(objects []models.DetectedObject, meta models.ImageMetadata) []ResultIssue {
	var issues []ResultIssue
	for _, obj := range objects {
		if obj.Box.Width <= 0 || obj.Box.Height <= 0 {
			issues = append(issues, ResultIssue{
				Type:     "degenerate_box",
				Message:  fmt.Sprintf("object %s has a degenerate bounding box", obj.ID),
				Severity: "error",
			})
		}
		if obj.Box.X < 0 || obj.Box.Y < 0 {
			issues = append(issues, ResultIssue{
				Type:     "box_out_of_bounds",
				Message:  fmt.Sprintf("object %s box starts outside the image", obj.ID),
				Severity: "error",
			})
		}
		if meta.Width > 0 && meta.Height > 0 {
			if obj.Box.X+obj.Box.Width > meta.Width || obj.Box.Y+obj.Box.Height > meta.Height {
				issues = append(issues, ResultIssue{
					Type:     "box_out_of_bounds",
					Message:  fmt.Sprintf("object %s box exceeds image bounds %dx%d", obj.ID, meta.Width, meta.Height),
					Severity: "error",
				})
			}
		}
		if obj.Confidence < 0 || obj.Confidence > 100 {
			issues = append(issues, ResultIssue{
				Type:     "score_out_of_range",
				Message:  fmt.Sprintf("object %s confidence %d outside [0,100]", obj.ID, obj.Confidence),
				Severity: "error",
			})
		}
	}
	return issues
}

// ValidateTextPartition verifies the language partition is total and free of
// duplicates across buckets.
func (rv *ResultValidator) ValidateTextPartition(text *models.ExtractedText) []ResultIssue {
	var issues []ResultIssue

	seen := make(map[string]string)
	buckets := map[string][]string{
		"portuguese": text.PortugueseText,
		"english":    text.EnglishText,
		"mixed":      text.MixedText,
	}
	for bucket, fragments := range buckets {
		for _, fragment := range fragments {
			if previous, dup := seen[fragment]; dup {
				issues = append(issues, ResultIssue{
					Type:     "duplicate_fragment",
					Message:  fmt.Sprintf("fragment %q appears in both %s and %s buckets", fragment, previous, bucket),
					Severity: "error",
				})
				continue
			}
			seen[fragment] = bucket
		}
	}

	for _, region := range text.Regions {
		if _, ok := seen[region.Text]; !ok {
			issues = append(issues, ResultIssue{
				Type:     "unpartitioned_fragment",
				Message:  fmt.Sprintf("text region %q missing from every language bucket", region.Text),
				Severity: "error",
			})
		}
	}
	return issues
}

func (rv *ResultValidator) validateScores(result *models.ImageAnalysisResult) []ResultIssue {
	var issues []ResultIssue
	for name, score := range map[string]int{
		"overall_score":             result.Authenticity.OverallScore,
		"object_detection":          result.Confidence.ObjectDetection,
		"text_extraction":           result.Confidence.TextExtraction,
		"cultural_classification":   result.Confidence.CulturalClassification,
		"authenticity_verification": result.Confidence.AuthenticityVerification,
		"overall_analysis":          result.Confidence.OverallAnalysis,
	} {
		if score < 0 || score > 100 {
			issues = append(issues, ResultIssue{
				Type:     "score_out_of_range",
				Message:  fmt.Sprintf("%s=%d outside [0,100]", name, score),
				Severity: "error",
			})
		}
	}
	return issues
}

// ConvertIssuesToMessages flattens issues to plain strings for transport
func (rv *ResultValidator) ConvertIssuesToMessages(issues []ResultIssue) []string {
	messages := make([]string, 0, len(issues))
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}
	return messages
}

package analyzer

import (
	"testing"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

func TestRoundedMean(t *testing.T) {
	tests := []struct {
		name     string
		scores   []int
		expected int
	}{
		{"empty list", nil, 0},
		{"single score", []int{73}, 73},
		{"exact mean", []int{80, 90}, 85},
		{"rounds up", []int{90, 82, 88}, 87},
		{"rounds half up", []int{84, 85}, 85},
		{"rounds down", []int{70, 70, 71}, 70},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundedMean(tt.scores); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestDeriveVerificationStatus(t *testing.T) {
	tests := []struct {
		name        string
		score       int
		factorCount int
		expected    models.VerificationStatus
	}{
		{"verified at boundary", 85, 3, models.StatusVerified},
		{"84 misses verified", 84, 3, models.StatusLikelyAuthentic},
		{"85 with two factors is not verified", 85, 2, models.StatusLikelyAuthentic},
		{"likely at boundary", 70, 1, models.StatusLikelyAuthentic},
		{"69 is questionable", 69, 4, models.StatusQuestionable},
		{"questionable at boundary", 50, 0, models.StatusQuestionable},
		{"49 is inauthentic", 49, 4, models.StatusInauthentic},
		{"zero is inauthentic", 0, 0, models.StatusInauthentic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveVerificationStatus(tt.score, tt.factorCount); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestDeriveConfidenceLevel(t *testing.T) {
	tests := []struct {
		name          string
		mean          int
		evidenceCount int
		expected      models.ConfidenceLevel
	}{
		{"high at boundaries", 85, 6, models.ConfidenceHigh},
		{"high mean, thin evidence", 85, 5, models.ConfidenceMedium},
		{"medium at boundaries", 70, 3, models.ConfidenceMedium},
		{"69 is low regardless of evidence", 69, 10, models.ConfidenceLow},
		{"medium mean, thin evidence", 70, 2, models.ConfidenceLow},
		{"no evidence", 90, 0, models.ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveConfidenceLevel(tt.mean, tt.evidenceCount); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestOverallConfidence(t *testing.T) {
	scores := models.ConfidenceScores{
		ObjectDetection:          80,
		TextExtraction:           70,
		CulturalClassification:   90,
		AuthenticityVerification: 87,
	}
	// (80+70+90+87)/4 = 81.75, rounds to 82
	if got := OverallConfidence(scores); got != 82 {
		t.Errorf("Expected 82, got %d", got)
	}
}

func TestDiversityScore(t *testing.T) {
	tests := []struct {
		name       string
		categories int
		regions    int
		expected   int
	}{
		{"empty batch", 0, 0, 0},
		{"single category", 1, 0, 10},
		{"mixed batch", 4, 2, 70},
		{"capped at 100", 10, 10, 100},
		{"exact cap", 4, 4, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiversityScore(tt.categories, tt.regions); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestClampScore(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{130, 100},
	}

	for _, tt := range tests {
		if got := ClampScore(tt.input); got != tt.expected {
			t.Errorf("ClampScore(%d): expected %d, got %d", tt.input, tt.expected, got)
		}
	}
}

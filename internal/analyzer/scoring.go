package analyzer

import (
	"math"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// The score derivations below are shared by the single-image and batch paths.
// They are pure so both paths stay in agreement.

// RoundedMean returns the arithmetic mean of scores rounded to the nearest
// integer, or 0 for an empty list.
func RoundedMean(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}

// DeriveVerificationStatus maps an overall score and factor count onto the
// four-tier verification outcome.
func DeriveVerificationStatus(overallScore, factorCount int) models.VerificationStatus {
	switch {
	case overallScore >= 85 && factorCount >= 3:
		return models.StatusVerified
	case overallScore >= 70:
		return models.StatusLikelyAuthentic
	case overallScore >= 50:
		return models.StatusQuestionable
	default:
		return models.StatusInauthentic
	}
}

// DeriveConfidenceLevel maps the mean factor score and total evidence count
// onto a confidence level.
func DeriveConfidenceLevel(meanFactorScore, evidenceCount int) models.ConfidenceLevel {
	switch {
	case meanFactorScore >= 85 && evidenceCount >= 6:
		return models.ConfidenceHigh
	case meanFactorScore >= 70 && evidenceCount >= 3:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}

// OverallConfidence fills OverallAnalysis from the four component figures.
func OverallConfidence(scores models.ConfidenceScores) int {
	return RoundedMean([]int{
		scores.ObjectDetection,
		scores.TextExtraction,
		scores.CulturalClassification,
		scores.AuthenticityVerification,
	})
}

// DiversityScore rewards breadth of categories and regions across a batch,
// capped at 100.
func DiversityScore(distinctCategories, distinctRegions int) int {
	score := 10*distinctCategories + 15*distinctRegions
	if score > 100 {
		return 100
	}
	return score
}

// ClampScore bounds a score to [0,100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

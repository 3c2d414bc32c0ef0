package analyzer

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// urlForHeritageProfile finds a URL whose seeded heritage profile has the
// given index, so tests can target specific scene types.
func urlForHeritageProfile(t *testing.T, index int) string {
	t.Helper()
	candidates := []string{
		"https://photos.example.com/box1/scan-001.jpg",
		"https://photos.example.com/box1/scan-002.jpg",
		"https://photos.example.com/box1/scan-003.jpg",
		"https://photos.example.com/box1/scan-004.jpg",
		"https://photos.example.com/box1/scan-005.jpg",
		"https://photos.example.com/box2/scan-006.jpg",
		"https://photos.example.com/box2/scan-007.jpg",
		"https://photos.example.com/box2/scan-008.jpg",
		"https://photos.example.com/box2/scan-009.jpg",
		"https://photos.example.com/box2/scan-010.jpg",
	}
	for _, url := range candidates {
		if refIndex(url, "heritage", len(heritageProfiles())) == index {
			return url
		}
	}
	t.Skipf("no candidate URL mapped to heritage profile %d", index)
	return ""
}

func newHeritageAnalyzerForTest() HeritageAnalyzer {
	return NewHeritageAnalyzer(NewCategoryDatabase(), NewMetricsCalculator())
}

func TestHeritageAnalyzer_NeverPublicWithIdentifiablePeople(t *testing.T) {
	h := newHeritageAnalyzerForTest()

	family := &models.FamilyContext{
		IdentifiablePeople: true,
		AllowPublicSharing: true,
	}

	for index := 0; index < len(heritageProfiles()); index++ {
		url := urlForHeritageProfile(t, index)
		analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, family)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if analysis.Sharing.RecommendedLevel == models.SharingPublic {
			t.Errorf("Profile %d: identifiable people must never yield a public recommendation", index)
		}
		if analysis.Sharing.RecommendedLevel != models.SharingFamily &&
			analysis.Sharing.RecommendedLevel != models.SharingPrivate {
			t.Errorf("Profile %d: expected family or private, got %s", index, analysis.Sharing.RecommendedLevel)
		}
	}
}

func TestHeritageAnalyzer_NoContextIsNeverPublic(t *testing.T) {
	h := newHeritageAnalyzerForTest()

	for index := 0; index < len(heritageProfiles()); index++ {
		url := urlForHeritageProfile(t, index)
		analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if analysis.Sharing.RecommendedLevel == models.SharingPublic {
			t.Errorf("Profile %d: public recommendation without explicit permission", index)
		}
	}
}

func TestHeritageAnalyzer_PublicRequiresExplicitPermission(t *testing.T) {
	h := newHeritageAnalyzerForTest()

	// Profile 0 is a family portrait, not religious
	url := urlForHeritageProfile(t, 0)
	family := &models.FamilyContext{AllowPublicSharing: true}

	analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, family)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if analysis.Sharing.RecommendedLevel != models.SharingPublic {
		t.Errorf("Expected public with explicit permission, got %s", analysis.Sharing.RecommendedLevel)
	}
}

func TestHeritageAnalyzer_ReligiousContentTightensSharing(t *testing.T) {
	h := newHeritageAnalyzerForTest()

	// Profile 1 is the religious procession scene
	url := urlForHeritageProfile(t, 1)

	analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if analysis.Sharing.RecommendedLevel != models.SharingFamily {
		t.Errorf("Expected family for religious content, got %s", analysis.Sharing.RecommendedLevel)
	}

	withPeople, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url},
		&models.FamilyContext{IdentifiablePeople: true})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if withPeople.Sharing.RecommendedLevel != models.SharingPrivate {
		t.Errorf("Expected private for religious content with identifiable people, got %s",
			withPeople.Sharing.RecommendedLevel)
	}
}

func TestHeritageAnalyzer_FamilyPeriodOverridesDating(t *testing.T) {
	h := newHeritageAnalyzerForTest()
	url := urlForHeritageProfile(t, 0)

	analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url},
		&models.FamilyContext{FamilyPeriod: "1970s"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if analysis.Dating.EstimatedEra != "1970s" {
		t.Errorf("Expected family period to win, got %q", analysis.Dating.EstimatedEra)
	}

	found := false
	for _, indicator := range analysis.Dating.Indicators {
		if indicator.Name == "family_record" {
			found = true
		}
	}
	if !found {
		t.Error("Expected a family_record dating indicator")
	}
}

func TestHeritageAnalyzer_PreservationReadsPixels(t *testing.T) {
	h := newHeritageAnalyzerForTest()
	url := urlForHeritageProfile(t, 0)

	// A uniform near-white image reads as faded and flat
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 245, G: 245, B: 245, A: 255})
		}
	}

	withPixels, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url, Img: img}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	withoutPixels, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if withPixels.Preservation.ConditionScore >= withoutPixels.Preservation.ConditionScore {
		t.Errorf("Expected faded pixels to lower the condition score: %d vs %d",
			withPixels.Preservation.ConditionScore, withoutPixels.Preservation.ConditionScore)
	}

	types := make(map[string]bool)
	for _, finding := range withPixels.Preservation.Damage {
		types[finding.Type] = true
	}
	if !types["fading"] {
		t.Errorf("Expected a fading finding, got %v", types)
	}
	if !types["contrast_loss"] {
		t.Errorf("Expected a contrast_loss finding, got %v", types)
	}
}

func TestHeritageAnalyzer_CulturalValueBounds(t *testing.T) {
	h := newHeritageAnalyzerForTest()

	for index := 0; index < len(heritageProfiles()); index++ {
		url := urlForHeritageProfile(t, index)
		analysis, err := h.AnalyzeHeritage(context.Background(), ImageRef{URL: url}, nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		for name, score := range map[string]int{
			"historical":   analysis.Value.HistoricalValue,
			"community":    analysis.Value.CommunityValue,
			"educational":  analysis.Value.EducationalValue,
			"genealogical": analysis.Value.GenealogicalValue,
			"artistic":     analysis.Value.ArtisticValue,
		} {
			if score < 0 || score > 100 {
				t.Errorf("Profile %d: %s value %d outside [0,100]", index, name, score)
			}
		}
	}
}

func TestDigitizationFor_ConditionScaling(t *testing.T) {
	poor := digitizationFor(models.PreservationAssessment{Condition: "poor"})
	if poor.RecommendedDPI != 1200 {
		t.Errorf("Expected 1200 dpi for poor condition, got %d", poor.RecommendedDPI)
	}
	if len(poor.HandlingNotes) == 0 {
		t.Error("Expected handling notes for poor condition")
	}

	excellent := digitizationFor(models.PreservationAssessment{Condition: "excellent"})
	if excellent.RecommendedDPI != 600 {
		t.Errorf("Expected 600 dpi for excellent condition, got %d", excellent.RecommendedDPI)
	}
}

package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

type heritageProfile struct {
	heritageType  string
	heritageLevel string
	description   string
	setting       string
	occasion      string
	peopleCount   int
	generations   int
	era           string
	decade        string
	indicators    []models.DatingIndicator
	conditionBase int
}

// heritageAnalyzer composes the heritage sub-analyses. Classification, scene
// inference and dating are seeded; the preservation assessment reads real
// pixel metrics whenever pixels are available.
type heritageAnalyzer struct {
	db       *CategoryDatabase
	metrics  MetricsCalculator
	profiles []heritageProfile
}

// NewHeritageAnalyzer creates the analyzer over the shared database and the
// pixel metrics calculator.
func NewHeritageAnalyzer(db *CategoryDatabase, metrics MetricsCalculator) HeritageAnalyzer {
	return &heritageAnalyzer{
		db:       db,
		metrics:  metrics,
		profiles: heritageProfiles(),
	}
}

func (h *heritageAnalyzer) AnalyzeHeritage(ctx context.Context, ref ImageRef, family *models.FamilyContext) (models.HeritagePhotoAnalysis, error) {
	if err := ctx.Err(); err != nil {
		return models.HeritagePhotoAnalysis{}, err
	}

	profile := h.profiles[refIndex(ref.URL, "heritage", len(h.profiles))]

	classification := h.classifyHeritage(profile, family)
	scene := h.inferFamilyScene(profile, family)
	dating := h.dateHistorical(profile, family)
	preservation := h.assessPreservation(ref, profile)

	analysis := models.HeritagePhotoAnalysis{
		ImageURL:       ref.URL,
		Timestamp:      time.Now().UTC(),
		Classification: classification,
		FamilyScene:    scene,
		Dating:         dating,
		Preservation:   preservation,
		Digitization:   digitizationFor(preservation),
		Value:          deriveCulturalValue(classification, scene, dating, preservation),
	}
	analysis.Sharing = deriveSharing(analysis, family)
	return analysis, nil
}

func (h *heritageAnalyzer) classifyHeritage(profile heritageProfile, family *models.FamilyContext) models.HeritageClassification {
	classification := models.HeritageClassification{
		HeritageType:  profile.heritageType,
		HeritageLevel: profile.heritageLevel,
		Confidence:    72,
		Description:   profile.description,
	}
	// Caller-supplied context corroborates the classification
	if family != nil {
		if family.FamilyPeriod != "" {
			classification.Confidence += 8
		}
		if len(family.KnownTraditions) > 0 {
			classification.Confidence += 5
		}
		classification.Confidence = ClampScore(classification.Confidence)
	}
	return classification
}

func (h *heritageAnalyzer) inferFamilyScene(profile heritageProfile, family *models.FamilyContext) models.FamilyContextInference {
	scene := models.FamilyContextInference{
		EstimatedSetting:   profile.setting,
		EstimatedOccasion:  profile.occasion,
		PeopleCount:        profile.peopleCount,
		GenerationsPresent: profile.generations,
		Confidence:         65,
	}
	if family != nil && family.FamilyRegion != "" {
		scene.EstimatedSetting = fmt.Sprintf("%s, %s", profile.setting, family.FamilyRegion)
		scene.Confidence += 10
	}
	return scene
}

func (h *heritageAnalyzer) dateHistorical(profile heritageProfile, family *models.FamilyContext) models.HistoricalDating {
	dating := models.HistoricalDating{
		EstimatedEra:    profile.era,
		EstimatedDecade: profile.decade,
		Indicators:      append([]models.DatingIndicator(nil), profile.indicators...),
	}

	// Caller-supplied period outranks the visual estimate
	if family != nil && family.FamilyPeriod != "" {
		dating.EstimatedEra = family.FamilyPeriod
		dating.Indicators = append(dating.Indicators, models.DatingIndicator{
			Name:        "family_record",
			Period:      family.FamilyPeriod,
			Confidence:  90,
			Description: "Period supplied from family records",
		})
	}

	scores := make([]int, 0, len(dating.Indicators))
	for _, indicator := range dating.Indicators {
		scores = append(scores, indicator.Confidence)
	}
	if len(scores) > 0 {
		dating.Confidence = RoundedMean(scores)
	}
	return dating
}

// assessPreservation grades condition from pixel metrics when the image was
// fetched, falling back to the seeded base condition otherwise.
func (h *heritageAnalyzer) assessPreservation(ref ImageRef, profile heritageProfile) models.PreservationAssessment {
	score := profile.conditionBase
	var damage []models.DamageAssessment

	if ref.Img != nil {
		metrics := h.metrics.CalculateBasicMetrics(ref.Img)
		sharpness := h.metrics.CalculateLaplacianVariance(GrayscaleOf(ref.Img))

		if metrics.AvgLuminance > 0.85 {
			score -= 15
			damage = append(damage, models.DamageAssessment{
				Type:         "fading",
				Severity:     "moderate",
				AffectedArea: "overall",
				Repairable:   true,
			})
		}
		if sharpness < 50 {
			score -= 10
			damage = append(damage, models.DamageAssessment{
				Type:         "contrast_loss",
				Severity:     "minor",
				AffectedArea: "overall",
				Repairable:   true,
			})
		}
		if metrics.ChannelImbalance() > 0.25 {
			score -= 10
			damage = append(damage, models.DamageAssessment{
				Type:         "color_cast",
				Severity:     "minor",
				AffectedArea: "overall",
				Repairable:   true,
			})
		}
	}

	score = ClampScore(score)
	return models.PreservationAssessment{
		Condition:      conditionFor(score),
		ConditionScore: score,
		Damage:         damage,
		Priority:       priorityFor(score),
	}
}

func conditionFor(score int) string {
	switch {
	case score >= 85:
		return "excellent"
	case score >= 70:
		return "good"
	case score >= 50:
		return "fair"
	default:
		return "poor"
	}
}

func priorityFor(score int) string {
	switch {
	case score < 50:
		return "high"
	case score < 70:
		return "medium"
	default:
		return "low"
	}
}

// digitizationFor scales scanning advice to the photo's condition. Fragile
// originals get higher resolution and stricter handling notes.
func digitizationFor(preservation models.PreservationAssessment) models.DigitizationRecommendations {
	recs := models.DigitizationRecommendations{
		RecommendedDPI: 600,
		ColorMode:      "color_48bit",
		FileFormat:     "tiff",
	}
	switch preservation.Condition {
	case "poor":
		recs.RecommendedDPI = 1200
		recs.HandlingNotes = append(recs.HandlingNotes,
			"handle with cotton gloves only",
			"do not flatten curled edges before scanning",
			"consult a conservator before repeated handling")
	case "fair":
		recs.RecommendedDPI = 800
		recs.HandlingNotes = append(recs.HandlingNotes,
			"handle with cotton gloves only",
			"scan once and work from the digital copy")
	}
	for _, finding := range preservation.Damage {
		if finding.Type == "fading" {
			recs.HandlingNotes = append(recs.HandlingNotes,
				"store the original away from direct light after scanning")
			break
		}
	}
	return recs
}

// deriveCulturalValue is a pure projection of the upstream sub-analyses onto
// the five value axes.
func deriveCulturalValue(classification models.HeritageClassification, scene models.FamilyContextInference, dating models.HistoricalDating, preservation models.PreservationAssessment) models.CulturalValue {
	historical := ClampScore(40 + dating.Confidence/2)
	if dating.EstimatedEra != "" {
		historical = ClampScore(historical + 10)
	}

	community := 50
	switch classification.HeritageLevel {
	case "community":
		community = 75
	case "regional":
		community = 85
	case "national":
		community = 95
	}

	educational := ClampScore((classification.Confidence + dating.Confidence) / 2)

	genealogical := 40
	if scene.PeopleCount > 0 {
		genealogical = ClampScore(50 + 10*scene.GenerationsPresent)
	}

	artistic := ClampScore(30 + preservation.ConditionScore/2)

	return models.CulturalValue{
		HistoricalValue:   historical,
		CommunityValue:    community,
		EducationalValue:  educational,
		GenealogicalValue: genealogical,
		ArtisticValue:     artistic,
	}
}

// deriveSharing recommends an audience. Community is the default; the
// recommendation only ever reaches public when the family context explicitly
// allows it, and identifiable people or religious content pull it tighter.
func deriveSharing(analysis models.HeritagePhotoAnalysis, family *models.FamilyContext) models.SharingPermissions {
	permissions := models.SharingPermissions{
		RecommendedLevel: models.SharingCommunity,
		Rationale:        "Cultural content suitable for community archives",
	}

	religious := analysis.Classification.HeritageType == "religious_heritage"
	identifiable := family != nil && family.IdentifiablePeople

	if identifiable {
		permissions.RecommendedLevel = models.SharingFamily
		permissions.Restrictions = append(permissions.Restrictions,
			"identifiable people present; obtain consent before wider sharing")
		permissions.Rationale = "Identifiable family members limit sharing to the family"
	}
	if religious {
		if permissions.RecommendedLevel == models.SharingFamily {
			permissions.RecommendedLevel = models.SharingPrivate
			permissions.Rationale = "Identifiable people at a religious occasion call for private keeping"
		} else {
			permissions.RecommendedLevel = models.SharingFamily
			permissions.Rationale = "Religious content is best shared within the family first"
		}
		permissions.Restrictions = append(permissions.Restrictions,
			"religious content; respect devotional context when sharing")
	}

	if family != nil && family.AllowPublicSharing && !identifiable && !religious {
		permissions.RecommendedLevel = models.SharingPublic
		permissions.Rationale = "Family explicitly allows public sharing and no restrictions apply"
	}

	return permissions
}

func heritageProfiles() []heritageProfile {
	return []heritageProfile{
		{
			heritageType:  "family_heritage",
			heritageLevel: "family",
			description:   "Posed family group, likely a formal occasion",
			setting:       "photography studio",
			occasion:      "family portrait",
			peopleCount:   6, generations: 3,
			era: "mid 20th century", decade: "1950s",
			indicators: []models.DatingIndicator{
				{Name: "print_stock", Period: "1945-1960", Confidence: 70, Description: "Fibre-based paper with deckled edge"},
				{Name: "clothing_style", Period: "1950s", Confidence: 60, Description: "Sunday dress typical of the period"},
			},
			conditionBase: 72,
		},
		{
			heritageType:  "religious_heritage",
			heritageLevel: "community",
			description:   "Procession through a village street",
			setting:       "village street",
			occasion:      "patron saint festival",
			peopleCount:   20, generations: 3,
			era: "mid 20th century", decade: "1960s",
			indicators: []models.DatingIndicator{
				{Name: "vehicle_present", Period: "1955-1970", Confidence: 75, Description: "Period car visible at the street edge"},
				{Name: "street_furniture", Period: "1950-1975", Confidence: 55, Description: "Overhead electrification without modern signage"},
			},
			conditionBase: 60,
		},
		{
			heritageType:  "working_life",
			heritageLevel: "regional",
			description:   "Harvest scene with seasonal workers",
			setting:       "terraced vineyard",
			occasion:      "grape harvest",
			peopleCount:   12, generations: 2,
			era: "early 20th century", decade: "1930s",
			indicators: []models.DatingIndicator{
				{Name: "tools_in_frame", Period: "1920-1945", Confidence: 65, Description: "Wicker baskets and hand tools predate mechanisation"},
			},
			conditionBase: 48,
		},
		{
			heritageType:  "migration_record",
			heritageLevel: "family",
			description:   "Departure scene at a quayside or station",
			setting:       "quayside",
			occasion:      "emigration departure",
			peopleCount:   4, generations: 2,
			era: "mid 20th century", decade: "1960s",
			indicators: []models.DatingIndicator{
				{Name: "luggage_style", Period: "1955-1970", Confidence: 60, Description: "Cardboard suitcases typical of the emigration wave"},
				{Name: "print_format", Period: "1960s", Confidence: 70, Description: "Small square print with white border"},
			},
			conditionBase: 68,
		},
		{
			heritageType:  "built_heritage",
			heritageLevel: "national",
			description:   "Architectural record of a decorated facade",
			setting:       "town square",
			occasion:      "",
			peopleCount:   0, generations: 0,
			era: "early 20th century", decade: "1920s",
			indicators: []models.DatingIndicator{
				{Name: "photographic_process", Period: "1900-1935", Confidence: 72, Description: "Tonal range consistent with glass plate photography"},
			},
			conditionBase: 55,
		},
	}
}

package models

import "time"

// CulturalCategory identifies one of the fixed Portuguese cultural categories
// an image can be classified into.
type CulturalCategory string

const (
	CategoryAzulejos           CulturalCategory = "azulejos"
	CategoryFado               CulturalCategory = "fado"
	CategoryTraditionalFood    CulturalCategory = "traditional_food"
	CategoryReligiousFestival  CulturalCategory = "religious_festival"
	CategorySantosPopulares    CulturalCategory = "santos_populares"
	CategoryFolkDance          CulturalCategory = "folk_dance"
	CategoryTraditionalCostume CulturalCategory = "traditional_costume"
	CategoryMaritimeHeritage   CulturalCategory = "maritime_heritage"
	CategoryArchitecture       CulturalCategory = "architecture"
	CategoryTraditionalCrafts  CulturalCategory = "traditional_crafts"
	CategoryReligiousArtifacts CulturalCategory = "religious_artifacts"
	CategoryFamilyCelebration  CulturalCategory = "family_celebration"
	CategoryWineCulture        CulturalCategory = "wine_culture"
	CategoryMusicInstruments   CulturalCategory = "music_instruments"
	CategorySportsCulture      CulturalCategory = "sports_culture"
	CategoryLiterature         CulturalCategory = "literature"
)

// AllCategories lists every valid cultural category.
func AllCategories() []CulturalCategory {
	return []CulturalCategory{
		CategoryAzulejos, CategoryFado, CategoryTraditionalFood,
		CategoryReligiousFestival, CategorySantosPopulares, CategoryFolkDance,
		CategoryTraditionalCostume, CategoryMaritimeHeritage, CategoryArchitecture,
		CategoryTraditionalCrafts, CategoryReligiousArtifacts, CategoryFamilyCelebration,
		CategoryWineCulture, CategoryMusicInstruments, CategorySportsCulture,
		CategoryLiterature,
	}
}

// Valid checks if the category is part of the fixed enumeration.
func (c CulturalCategory) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// PortugueseRegion identifies a regional origin for classified imagery.
type PortugueseRegion string

const (
	RegionMinho        PortugueseRegion = "minho"
	RegionDouro        PortugueseRegion = "douro"
	RegionTrasOsMontes PortugueseRegion = "tras_os_montes"
	RegionBeiraAlta    PortugueseRegion = "beira_alta"
	RegionBeiraBaixa   PortugueseRegion = "beira_baixa"
	RegionBeiraLitoral PortugueseRegion = "beira_litoral"
	RegionEstremadura  PortugueseRegion = "estremadura"
	RegionRibatejo     PortugueseRegion = "ribatejo"
	RegionAlentejo     PortugueseRegion = "alentejo"
	RegionAlgarve      PortugueseRegion = "algarve"
	RegionLisboa       PortugueseRegion = "lisboa"
	RegionPorto        PortugueseRegion = "porto"
	RegionMadeira      PortugueseRegion = "madeira"
	RegionAzores       PortugueseRegion = "azores"
)

// AllRegions lists every valid regional origin.
func AllRegions() []PortugueseRegion {
	return []PortugueseRegion{
		RegionMinho, RegionDouro, RegionTrasOsMontes, RegionBeiraAlta,
		RegionBeiraBaixa, RegionBeiraLitoral, RegionEstremadura, RegionRibatejo,
		RegionAlentejo, RegionAlgarve, RegionLisboa, RegionPorto,
		RegionMadeira, RegionAzores,
	}
}

// BilingualText carries a Portuguese/English string pair for UI consumers.
type BilingualText struct {
	Portuguese string `json:"pt"`
	English    string `json:"en"`
}

// BoundingBox locates a detection within the image, in pixels.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// CulturalSignificance scores an image's cultural weight across five axes,
// each bounded to [0,100].
type CulturalSignificance struct {
	HistoricalImportance int    `json:"historical_importance"`
	CommunityRelevance   int    `json:"community_relevance"`
	TraditionalValue     int    `json:"traditional_value"`
	EducationalValue     int    `json:"educational_value"`
	EmotionalResonance   int    `json:"emotional_resonance"`
	Description          string `json:"description"`
}

// CulturalClassification is the classifier output for a single image.
type CulturalClassification struct {
	PrimaryCategory     CulturalCategory     `json:"primary_category"`
	SecondaryCategories []CulturalCategory   `json:"secondary_categories,omitempty"`
	RegionalOrigin      PortugueseRegion     `json:"regional_origin,omitempty"`
	HistoricalPeriod    string               `json:"historical_period,omitempty"`
	Significance        CulturalSignificance `json:"cultural_significance"`
	RelatedTraditions   []string             `json:"related_traditions,omitempty"`
	SeasonalContext     string               `json:"seasonal_context,omitempty"`
}

// DetectedObject is one labelled detection with a non-degenerate bounding box.
// Ordering within a result carries no meaning; rank by Confidence or
// CulturalRelevance explicitly when significance matters.
type DetectedObject struct {
	ID                string        `json:"id"`
	Label             BilingualText `json:"label"`
	Confidence        int           `json:"confidence"`
	Box               BoundingBox   `json:"bounding_box"`
	CulturalRelevance int           `json:"cultural_relevance"`
	Description       BilingualText `json:"description"`
	RelatedConcepts   []string      `json:"related_concepts,omitempty"`
}

// TextRegion is one located text fragment.
type TextRegion struct {
	Text       string      `json:"text"`
	Language   string      `json:"language"`
	Box        BoundingBox `json:"bounding_box"`
	Confidence int         `json:"confidence"`
	FontStyle  string      `json:"font_style,omitempty"`
}

// LanguageDetection summarises the dominant language across extracted text.
// An empty extraction defaults to English with confidence 0; that default is
// not a positive non-Portuguese finding.
type LanguageDetection struct {
	PrimaryLanguage    string   `json:"primary_language"`
	Confidence         int      `json:"confidence"`
	SecondaryLanguages []string `json:"secondary_languages,omitempty"`
}

// CulturalTerm is a glossary hit found in the Portuguese text bucket.
type CulturalTerm struct {
	Term           string             `json:"term"`
	Language       string             `json:"language"`
	Category       CulturalCategory   `json:"category"`
	Significance   int                `json:"significance"`
	Definition     string             `json:"definition"`
	Regions        []PortugueseRegion `json:"applicable_regions,omitempty"`
	SourceFragment string             `json:"source_fragment"`
}

// ExtractedText partitions every found fragment into exactly one of the three
// language buckets.
type ExtractedText struct {
	PortugueseText    []string          `json:"portuguese_text"`
	EnglishText       []string          `json:"english_text"`
	MixedText         []string          `json:"mixed_text"`
	Regions           []TextRegion      `json:"text_regions,omitempty"`
	LanguageDetection LanguageDetection `json:"language_detection"`
	CulturalTerms     []CulturalTerm    `json:"cultural_terms,omitempty"`
}

// VerificationStatus is the four-tier authenticity outcome.
type VerificationStatus string

const (
	StatusVerified        VerificationStatus = "verified"
	StatusLikelyAuthentic VerificationStatus = "likely_authentic"
	StatusQuestionable    VerificationStatus = "questionable"
	StatusInauthentic     VerificationStatus = "inauthentic"
)

// ConfidenceLevel expresses how much evidence backs an authenticity score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// AuthenticityFactor is one independently scored signal with its evidence.
type AuthenticityFactor struct {
	Name        string   `json:"name"`
	Score       int      `json:"score"`
	Description string   `json:"description"`
	Evidence    []string `json:"evidence,omitempty"`
}

// AuthenticityScore is the verifier output. OverallScore is the rounded mean
// of factor scores, 50 when no factors were gathered.
type AuthenticityScore struct {
	OverallScore       int                  `json:"overall_score"`
	Factors            []AuthenticityFactor `json:"factors"`
	VerificationStatus VerificationStatus   `json:"verification_status"`
	ConfidenceLevel    ConfidenceLevel      `json:"confidence_level"`
	ExpertReviewNeeded bool                 `json:"expert_review_needed"`
}

// ConfidenceScores summarises per-component confidence. OverallAnalysis is
// the rounded mean of the four component figures.
type ConfidenceScores struct {
	ObjectDetection          int `json:"object_detection"`
	TextExtraction           int `json:"text_extraction"`
	CulturalClassification   int `json:"cultural_classification"`
	AuthenticityVerification int `json:"authenticity_verification"`
	OverallAnalysis          int `json:"overall_analysis"`
}

// ImageMetadata contains metadata about the source image.
type ImageMetadata struct {
	ContentType   string `json:"content_type,omitempty"`
	ContentLength int64  `json:"content_length,omitempty"`
	Width         int    `json:"width,omitempty"`
	Height        int    `json:"height,omitempty"`
	Format        string `json:"format,omitempty"`
}

// ImageAnalysisResult is the merged output of one single-image analysis run.
// Immutable after construction; callers receive a fresh value per call.
type ImageAnalysisResult struct {
	ID                string                 `json:"id"`
	ImageURL          string                 `json:"image_url"`
	Timestamp         time.Time              `json:"timestamp"`
	ProcessingTimeSec float64                `json:"processing_time_sec"`
	Classification    CulturalClassification `json:"cultural_classification"`
	Objects           []DetectedObject       `json:"detected_objects"`
	Text              ExtractedText          `json:"extracted_text"`
	Authenticity      AuthenticityScore      `json:"authenticity_score"`
	Recommendations   []string               `json:"recommendations,omitempty"`
	Metadata          ImageMetadata          `json:"image_metadata"`
	Confidence        ConfidenceScores       `json:"confidence_scores"`
}

package models

import "time"

// SharingLevel is the recommended audience for a heritage photo.
type SharingLevel string

const (
	SharingPrivate   SharingLevel = "private"
	SharingFamily    SharingLevel = "family"
	SharingCommunity SharingLevel = "community"
	SharingPublic    SharingLevel = "public"
)

// FamilyContext is caller-supplied knowledge about a heritage photo. It is
// the only input that can raise a sharing recommendation to public.
type FamilyContext struct {
	FamilyRegion       PortugueseRegion `json:"family_region,omitempty"`
	FamilyPeriod       string           `json:"family_period,omitempty"`
	KnownTraditions    []string         `json:"known_traditions,omitempty"`
	IdentifiablePeople bool             `json:"identifiable_people,omitempty"`
	AllowPublicSharing bool             `json:"allow_public_sharing,omitempty"`
}

// HeritageClassification types a photo within the heritage taxonomy.
type HeritageClassification struct {
	HeritageType  string `json:"heritage_type"`
	HeritageLevel string `json:"heritage_level"` // family, community, regional, national
	Confidence    int    `json:"confidence"`
	Description   string `json:"description"`
}

// FamilyContextInference is what the analyzer infers about the family scene,
// as opposed to the caller-supplied FamilyContext.
type FamilyContextInference struct {
	EstimatedSetting   string `json:"estimated_setting"`
	EstimatedOccasion  string `json:"estimated_occasion"`
	PeopleCount        int    `json:"people_count"`
	GenerationsPresent int    `json:"generations_present"`
	Confidence         int    `json:"confidence"`
}

// DatingIndicator is one named clue used for historical dating.
type DatingIndicator struct {
	Name        string `json:"name"`
	Period      string `json:"period"`
	Confidence  int    `json:"confidence"`
	Description string `json:"description"`
}

// HistoricalDating estimates when the photo was taken.
type HistoricalDating struct {
	EstimatedEra    string            `json:"estimated_era"`
	EstimatedDecade string            `json:"estimated_decade,omitempty"`
	Confidence      int               `json:"confidence"`
	Indicators      []DatingIndicator `json:"dating_indicators"`
}

// DamageAssessment itemises one preservation finding.
type DamageAssessment struct {
	Type         string `json:"type"`
	Severity     string `json:"severity"` // minor, moderate, severe
	AffectedArea string `json:"affected_area"`
	Repairable   bool   `json:"repairable"`
}

// PreservationAssessment grades the physical condition of the photo.
type PreservationAssessment struct {
	Condition      string             `json:"condition"` // excellent, good, fair, poor
	ConditionScore int                `json:"condition_score"`
	Damage         []DamageAssessment `json:"damage_assessments,omitempty"`
	Priority       string             `json:"preservation_priority"` // low, medium, high
}

// DigitizationRecommendations advise how to digitise the original.
type DigitizationRecommendations struct {
	RecommendedDPI int      `json:"recommended_dpi"`
	ColorMode      string   `json:"color_mode"`
	FileFormat     string   `json:"file_format"`
	HandlingNotes  []string `json:"handling_notes,omitempty"`
}

// CulturalValue scores a heritage photo across five axes, each in [0,100].
// Derived purely from the upstream sub-analyses.
type CulturalValue struct {
	HistoricalValue   int `json:"historical_value"`
	CommunityValue    int `json:"community_value"`
	EducationalValue  int `json:"educational_value"`
	GenealogicalValue int `json:"genealogical_value"`
	ArtisticValue     int `json:"artistic_value"`
}

// SharingPermissions is the sharing recommendation and its rationale.
type SharingPermissions struct {
	RecommendedLevel SharingLevel `json:"recommended_sharing_level"`
	Restrictions     []string     `json:"restrictions,omitempty"`
	Rationale        string       `json:"rationale"`
}

// HeritagePhotoAnalysis composes every heritage sub-analysis for one photo.
type HeritagePhotoAnalysis struct {
	ID             string                      `json:"id"`
	ImageURL       string                      `json:"image_url"`
	Timestamp      time.Time                   `json:"timestamp"`
	Classification HeritageClassification      `json:"heritage_classification"`
	FamilyScene    FamilyContextInference      `json:"family_context"`
	Dating         HistoricalDating            `json:"historical_dating"`
	Preservation   PreservationAssessment      `json:"preservation_assessment"`
	Digitization   DigitizationRecommendations `json:"digitization_recommendations"`
	Value          CulturalValue               `json:"cultural_value"`
	Sharing        SharingPermissions          `json:"sharing_permissions"`
}

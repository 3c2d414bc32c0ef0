package models

// AnalyzeRequest asks for a single-image cultural analysis. Unset flags keep
// their defaults (all sub-analyses enabled).
type AnalyzeRequest struct {
	URL                      string `json:"url" binding:"required,url"`
	IncludeTextExtraction    *bool  `json:"include_text_extraction,omitempty"`
	AuthenticityVerification *bool  `json:"authenticity_verification,omitempty"`
	DetailedClassification   *bool  `json:"detailed_classification,omitempty"`
	CommunityContext         *bool  `json:"community_context,omitempty"`
}

// HeritageRequest asks for a heritage photo analysis with optional caller
// context about the family.
type HeritageRequest struct {
	URL           string         `json:"url" binding:"required,url"`
	FamilyContext *FamilyContext `json:"family_context,omitempty"`
}

// BatchRequest asks for analysis of a set of images.
type BatchRequest struct {
	URLs                    []string `json:"urls" binding:"required,min=1"`
	PriorityOrder           string   `json:"priority_order,omitempty"` // submission, cultural_significance
	IncludeDetailedAnalysis bool     `json:"include_detailed_analysis,omitempty"`
	GenerateCollections     *bool    `json:"generate_collections,omitempty"`
}

// ErrorResponse is the transport error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

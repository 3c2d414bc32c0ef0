package models

// CulturalCollection groups batch results sharing a primary category.
// A collection always has at least two members.
type CulturalCollection struct {
	ID                    string           `json:"id"`
	Name                  string           `json:"name"`
	PrimaryCategory       CulturalCategory `json:"primary_category"`
	ImageIDs              []string         `json:"image_ids"`
	AggregateSignificance int              `json:"aggregate_significance"`
}

// BatchFailure records one image that could not be analysed.
type BatchFailure struct {
	ImageURL string `json:"image_url"`
	Reason   string `json:"reason"`
}

// ProcessingSummary reports batch progress including partial failures.
type ProcessingSummary struct {
	ProcessedImages   int            `json:"processed_images"`
	FailedImages      int            `json:"failed_images"`
	Failures          []BatchFailure `json:"failures,omitempty"`
	ChunksProcessed   int            `json:"chunks_processed"`
	ProcessingTimeSec float64        `json:"processing_time_sec"`
}

// BatchAnalysisInsights aggregates counts and distributions over a batch.
type BatchAnalysisInsights struct {
	TotalImages          int                      `json:"total_images"`
	CategoryDistribution map[CulturalCategory]int `json:"category_distribution"`
	RegionDistribution   map[PortugueseRegion]int `json:"region_distribution"`
	DominantCategory     CulturalCategory         `json:"dominant_category,omitempty"`
	AverageAuthenticity  int                      `json:"average_authenticity"`
	DiversityScore       int                      `json:"diversity_score"`
}

// BatchRecommendations carries free-text suggestions derived from insights.
type BatchRecommendations struct {
	Suggestions     []string `json:"suggestions,omitempty"`
	FeaturedImageID string   `json:"featured_image_id,omitempty"`
}

// BatchAnalysisResult is the complete output of one batch run.
type BatchAnalysisResult struct {
	Results         []ImageAnalysisResult `json:"results"`
	Collections     []CulturalCollection  `json:"collections,omitempty"`
	Insights        BatchAnalysisInsights `json:"insights"`
	Recommendations BatchRecommendations  `json:"recommendations"`
	Summary         ProcessingSummary     `json:"processing_summary"`
}

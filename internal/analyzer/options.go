package analyzer

// BatchChunkSize bounds how many images are analysed concurrently in a batch.
const BatchChunkSize = 5

// AnalysisOptions configures a single-image analysis.
type AnalysisOptions struct {
	// Sub-analysis toggles; disabled stages contribute their default record
	IncludeTextExtraction    bool
	AuthenticityVerification bool
	DetailedClassification   bool

	// CommunityContext enriches recommendations with community figures
	CommunityContext bool

	// FetchMetadata pulls source metadata to bound detections and fill the
	// result's image metadata; failures degrade, they never abort
	FetchMetadata bool
}

// DefaultOptions returns the default single-image options with every
// sub-analysis enabled.
func DefaultOptions() AnalysisOptions {
	return AnalysisOptions{
		IncludeTextExtraction:    true,
		AuthenticityVerification: true,
		DetailedClassification:   true,
		CommunityContext:         true,
		FetchMetadata:            true,
	}
}

// FastOptions returns options for contract-only analysis without any
// network access.
func FastOptions() AnalysisOptions {
	opts := DefaultOptions()
	opts.FetchMetadata = false
	return opts
}

// BatchOptions configures a batch analysis run.
type BatchOptions struct {
	// PriorityOrder controls result ordering: "submission" (default) or
	// "cultural_significance"
	PriorityOrder string

	IncludeDetailedAnalysis bool
	GenerateCollections     bool

	// ChunkSize bounds concurrent per-image work; defaults to BatchChunkSize
	ChunkSize int
}

// DefaultBatchOptions returns the default batch options.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		PriorityOrder:       "submission",
		GenerateCollections: true,
		ChunkSize:           BatchChunkSize,
	}
}

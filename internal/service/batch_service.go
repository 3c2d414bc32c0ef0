package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lusolondon/cultural-vision-go/internal/analyzer"
	apperrors "github.com/lusolondon/cultural-vision-go/internal/errors"
	"github.com/lusolondon/cultural-vision-go/internal/observer"
	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// BatchAnalysisService orchestrates analysis over many images.
type BatchAnalysisService interface {
	AnalyzeBatch(ctx context.Context, imageURLs []string, options analyzer.BatchOptions) (*models.BatchAnalysisResult, error)
}

type batchAnalysisService struct {
	analysis  AnalysisService
	publisher observer.Subject
	maxBatch  int
}

// NewBatchAnalysisService wires the batch orchestrator over the single-image
// service.
func NewBatchAnalysisService(analysis AnalysisService, publisher observer.Subject, maxBatch int) BatchAnalysisService {
	return &batchAnalysisService{
		analysis:  analysis,
		publisher: publisher,
		maxBatch:  maxBatch,
	}
}

// AnalyzeBatch processes the URLs in fixed-size chunks, images within a chunk
// concurrently. Individual failures are recorded in the summary and never
// fail the batch, even when every image fails.
func (s *batchAnalysisService) AnalyzeBatch(ctx context.Context, imageURLs []string, options analyzer.BatchOptions) (*models.BatchAnalysisResult, error) {
	if len(imageURLs) == 0 {
		return nil, apperrors.NewValidationError("batch must contain at least one image URL", nil)
	}
	if s.maxBatch > 0 && len(imageURLs) > s.maxBatch {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("batch size %d exceeds the maximum of %d", len(imageURLs), s.maxBatch), nil)
	}

	chunkSize := options.ChunkSize
	if chunkSize <= 0 {
		chunkSize = analyzer.BatchChunkSize
	}

	started := time.Now()
	if s.publisher != nil {
		s.publisher.NotifyObservers(ctx, observer.AnalysisEvent{
			EventType: observer.BatchStarted,
			Timestamp: started,
			Metadata:  map[string]interface{}{"batch_size": len(imageURLs)},
		})
	}

	imageOptions := analyzer.DefaultOptions()
	imageOptions.DetailedClassification = options.IncludeDetailedAnalysis

	pool := analyzer.NewWorkerPool(chunkSize)
	pool.Start()
	defer pool.Close()

	results := make([]*models.ImageAnalysisResult, len(imageURLs))
	failures := make([]*models.BatchFailure, len(imageURLs))
	chunks := 0

	for start := 0; start < len(imageURLs); start += chunkSize {
		end := start + chunkSize
		if end > len(imageURLs) {
			end = len(imageURLs)
		}
		chunks++

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			i := i
			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				result, err := s.analysis.AnalyzeImageWithOptions(ctx, imageURLs[i], imageOptions)
				if err != nil {
					failures[i] = &models.BatchFailure{
						ImageURL: imageURLs[i],
						Reason:   err.Error(),
					}
					return
				}
				results[i] = result
			})
		}
		wg.Wait()
	}

	batch := &models.BatchAnalysisResult{
		Results: make([]models.ImageAnalysisResult, 0, len(imageURLs)),
	}
	for _, result := range results {
		if result != nil {
			if !options.IncludeDetailedAnalysis {
				compactResult(result)
			}
			batch.Results = append(batch.Results, *result)
		}
	}
	for _, failure := range failures {
		if failure != nil {
			batch.Summary.Failures = append(batch.Summary.Failures, *failure)
		}
	}

	batch.Summary.ProcessedImages = len(batch.Results)
	batch.Summary.FailedImages = len(batch.Summary.Failures)
	batch.Summary.ChunksProcessed = chunks
	batch.Summary.ProcessingTimeSec = time.Since(started).Seconds()

	if options.PriorityOrder == "cultural_significance" {
		sortBySignificance(batch.Results)
	}

	batch.Insights = buildInsights(batch.Results)
	if options.GenerateCollections {
		batch.Collections = buildCollections(batch.Results)
	}
	batch.Recommendations = buildBatchRecommendations(batch)

	if s.publisher != nil {
		s.publisher.NotifyObservers(context.WithoutCancel(ctx), observer.AnalysisEvent{
			EventType:      observer.BatchCompleted,
			Timestamp:      time.Now(),
			ProcessingTime: time.Since(started),
			Success:        batch.Summary.FailedImages == 0,
			Metadata: map[string]interface{}{
				"processed": batch.Summary.ProcessedImages,
				"failed":    batch.Summary.FailedImages,
				"chunks":    batch.Summary.ChunksProcessed,
			},
		})
	}
	return batch, nil
}

// compactResult strips per-image detail from summary-level batch output.
// Scores, statuses and language buckets stay; evidence and located regions go.
func compactResult(result *models.ImageAnalysisResult) {
	result.Text.Regions = nil
	result.Text.CulturalTerms = nil
	result.Authenticity.Factors = nil
	for i := range result.Objects {
		result.Objects[i].Description = models.BilingualText{}
		result.Objects[i].RelatedConcepts = nil
	}
}

// sortBySignificance orders results by community relevance, then historical
// importance, keeping submission order for ties.
func sortBySignificance(results []models.ImageAnalysisResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Classification.Significance, results[j].Classification.Significance
		if a.CommunityRelevance != b.CommunityRelevance {
			return a.CommunityRelevance > b.CommunityRelevance
		}
		return a.HistoricalImportance > b.HistoricalImportance
	})
}

func buildInsights(results []models.ImageAnalysisResult) models.BatchAnalysisInsights {
	insights := models.BatchAnalysisInsights{
		TotalImages:          len(results),
		CategoryDistribution: make(map[models.CulturalCategory]int),
		RegionDistribution:   make(map[models.PortugueseRegion]int),
	}

	authenticityScores := make([]int, 0, len(results))
	for _, result := range results {
		insights.CategoryDistribution[result.Classification.PrimaryCategory]++
		if region := result.Classification.RegionalOrigin; region != "" {
			insights.RegionDistribution[region]++
		}
		authenticityScores = append(authenticityScores, result.Authenticity.OverallScore)
	}

	best := 0
	for category, count := range insights.CategoryDistribution {
		if count > best || (count == best && string(category) < string(insights.DominantCategory)) {
			insights.DominantCategory = category
			best = count
		}
	}

	insights.AverageAuthenticity = analyzer.RoundedMean(authenticityScores)
	insights.DiversityScore = analyzer.DiversityScore(
		len(insights.CategoryDistribution), len(insights.RegionDistribution))
	return insights
}

// buildCollections groups results sharing a primary category. Only categories
// with at least two members form a collection.
func buildCollections(results []models.ImageAnalysisResult) []models.CulturalCollection {
	byCategory := make(map[models.CulturalCategory][]models.ImageAnalysisResult)
	for _, result := range results {
		category := result.Classification.PrimaryCategory
		byCategory[category] = append(byCategory[category], result)
	}

	categories := make([]models.CulturalCategory, 0, len(byCategory))
	for category, members := range byCategory {
		if len(members) >= 2 {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	collections := make([]models.CulturalCollection, 0, len(categories))
	for _, category := range categories {
		members := byCategory[category]
		significance := make([]int, len(members))
		ids := make([]string, len(members))
		for i, member := range members {
			significance[i] = classificationConfidence(member.Classification)
			ids[i] = member.ID
		}
		collections = append(collections, models.CulturalCollection{
			ID:                    uuid.New().String(),
			Name:                  fmt.Sprintf("%s collection", category),
			PrimaryCategory:       category,
			ImageIDs:              ids,
			AggregateSignificance: analyzer.RoundedMean(significance),
		})
	}
	return collections
}

func buildBatchRecommendations(batch *models.BatchAnalysisResult) models.BatchRecommendations {
	var recs models.BatchRecommendations

	if batch.Insights.DiversityScore >= 70 {
		recs.Suggestions = append(recs.Suggestions,
			"This batch spans many traditions and regions; consider a themed exhibition")
	} else if len(batch.Insights.CategoryDistribution) == 1 {
		recs.Suggestions = append(recs.Suggestions,
			fmt.Sprintf("All images centre on %s; pair them with other traditions for a fuller picture",
				batch.Insights.DominantCategory))
	}
	if batch.Insights.AverageAuthenticity >= 85 {
		recs.Suggestions = append(recs.Suggestions,
			"Authenticity is high across the batch; suitable for the community heritage archive")
	}
	if len(batch.Collections) > 0 {
		recs.Suggestions = append(recs.Suggestions,
			fmt.Sprintf("%d collection(s) emerged; publish them as curated galleries", len(batch.Collections)))
	}

	// Feature the most verified, most significant image
	bestScore := -1
	for _, result := range batch.Results {
		score := result.Authenticity.OverallScore + result.Classification.Significance.CommunityRelevance
		if score > bestScore {
			bestScore = score
			recs.FeaturedImageID = result.ID
		}
	}
	return recs
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lusolondon/cultural-vision-go/internal/analyzer"
	apperrors "github.com/lusolondon/cultural-vision-go/internal/errors"
	"github.com/lusolondon/cultural-vision-go/internal/logger"
	"github.com/lusolondon/cultural-vision-go/internal/observer"
	"github.com/lusolondon/cultural-vision-go/internal/repository"
	"github.com/lusolondon/cultural-vision-go/pkg/models"
	"github.com/lusolondon/cultural-vision-go/pkg/validation"
)

// AnalysisService is the single-image and heritage analysis entry point.
type AnalysisService interface {
	AnalyzeImage(ctx context.Context, imageURL string) (*models.ImageAnalysisResult, error)
	AnalyzeImageWithOptions(ctx context.Context, imageURL string, options analyzer.AnalysisOptions) (*models.ImageAnalysisResult, error)
	AnalyzeHeritagePhoto(ctx context.Context, imageURL string, family *models.FamilyContext) (*models.HeritagePhotoAnalysis, error)

	GetAnalysisResult(ctx context.Context, id string) (*models.ImageAnalysisResult, error)
	GetAnalysisHistory(ctx context.Context, imageURL string) ([]*models.ImageAnalysisResult, error)

	ValidateImageURL(imageURL string) error
}

// CommunityProfile carries the community figures quoted in recommendation
// text. They never influence scoring.
type CommunityProfile struct {
	CommunitySize    int
	PartnershipCount int
}

type analysisService struct {
	imageRepo    repository.ImageRepository
	analysisRepo repository.AnalysisRepository

	classifier analyzer.CulturalClassifier
	detector   analyzer.ObjectDetector
	extractor  analyzer.TextExtractor
	verifier   analyzer.AuthenticityVerifier
	heritage   analyzer.HeritageAnalyzer
	db         *analyzer.CategoryDatabase

	publisher observer.Subject
	community CommunityProfile
	validator *validation.ResultValidator

	analysisTimeout time.Duration
}

// NewAnalysisService wires the analysis components into the service.
func NewAnalysisService(
	imageRepo repository.ImageRepository,
	analysisRepo repository.AnalysisRepository,
	classifier analyzer.CulturalClassifier,
	detector analyzer.ObjectDetector,
	extractor analyzer.TextExtractor,
	verifier analyzer.AuthenticityVerifier,
	heritage analyzer.HeritageAnalyzer,
	db *analyzer.CategoryDatabase,
	publisher observer.Subject,
	community CommunityProfile,
	analysisTimeout time.Duration,
) AnalysisService {
	return &analysisService{
		imageRepo:       imageRepo,
		analysisRepo:    analysisRepo,
		classifier:      classifier,
		detector:        detector,
		extractor:       extractor,
		verifier:        verifier,
		heritage:        heritage,
		db:              db,
		publisher:       publisher,
		community:       community,
		validator:       validation.NewResultValidator(),
		analysisTimeout: analysisTimeout,
	}
}

// AnalyzeImage runs the full analysis with default options.
func (s *analysisService) AnalyzeImage(ctx context.Context, imageURL string) (*models.ImageAnalysisResult, error) {
	return s.AnalyzeImageWithOptions(ctx, imageURL, analyzer.DefaultOptions())
}

// AnalyzeImageWithOptions runs the four sub-analyses concurrently and merges
// their outputs. A sub-analysis cut short by the deadline degrades to its
// documented default record rather than failing the whole run.
func (s *analysisService) AnalyzeImageWithOptions(ctx context.Context, imageURL string, options analyzer.AnalysisOptions) (*models.ImageAnalysisResult, error) {
	if err := s.ValidateImageURL(imageURL); err != nil {
		return nil, apperrors.NewValidationError("invalid image URL", err)
	}

	started := time.Now()
	s.publish(ctx, observer.AnalysisEvent{
		EventType: observer.AnalysisStarted,
		Timestamp: started,
		ImageURL:  imageURL,
	})

	ref := s.resolveRef(ctx, imageURL, options)

	if s.analysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.analysisTimeout)
		defer cancel()
	}

	result, err := s.runSubAnalyses(ctx, ref, options)
	if err != nil {
		s.publish(context.WithoutCancel(ctx), observer.AnalysisEvent{
			EventType:    observer.AnalysisFailed,
			Timestamp:    time.Now(),
			ImageURL:     imageURL,
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	result.ID = uuid.New().String()
	result.ImageURL = imageURL
	result.Timestamp = started.UTC()
	result.ProcessingTimeSec = time.Since(started).Seconds()
	if ref.Metadata != nil {
		result.Metadata = *ref.Metadata
	}
	result.Recommendations = s.buildRecommendations(result, options)

	if issues := s.validator.ValidateResult(result); len(issues) > 0 {
		logger.WithFields(logrus.Fields{
			"image_url": imageURL,
			"issues":    s.validator.ConvertIssuesToMessages(issues),
		}).Warn("Analysis result violated contract invariants")
	}

	if saveErr := s.analysisRepo.SaveAnalysisResult(ctx, result); saveErr != nil {
		// History is best effort; the caller still gets the result
		s.publish(context.WithoutCancel(ctx), observer.AnalysisEvent{
			EventType:    observer.AnalysisFailed,
			Timestamp:    time.Now(),
			ImageURL:     imageURL,
			ErrorMessage: fmt.Sprintf("failed to persist result: %v", saveErr),
		})
	}

	s.publish(context.WithoutCancel(ctx), observer.AnalysisEvent{
		EventType:      observer.AnalysisCompleted,
		Timestamp:      time.Now(),
		ImageURL:       imageURL,
		ProcessingTime: time.Since(started),
		Success:        true,
	})
	return result, nil
}

// resolveRef builds the image reference, fetching pixels and metadata when
// requested. Fetch failures degrade to a contract-only reference.
func (s *analysisService) resolveRef(ctx context.Context, imageURL string, options analyzer.AnalysisOptions) analyzer.ImageRef {
	ref := analyzer.ImageRef{URL: imageURL}
	if !options.FetchMetadata {
		return ref
	}

	if metadata, err := s.imageRepo.GetImageMetadata(ctx, imageURL); err == nil {
		ref.Metadata = metadata
	}

	img, format, err := s.imageRepo.FetchImage(ctx, imageURL)
	if err != nil {
		s.publish(ctx, observer.AnalysisEvent{
			EventType:    observer.ImageFetchFailed,
			Timestamp:    time.Now(),
			ImageURL:     imageURL,
			ErrorMessage: err.Error(),
		})
		return ref
	}

	ref.Img = img
	if ref.Metadata == nil {
		ref.Metadata = &models.ImageMetadata{}
	}
	bounds := img.Bounds()
	ref.Metadata.Width = bounds.Dx()
	ref.Metadata.Height = bounds.Dy()
	if ref.Metadata.Format == "" {
		ref.Metadata.Format = format
	}

	s.publish(ctx, observer.AnalysisEvent{
		EventType: observer.ImageFetched,
		Timestamp: time.Now(),
		ImageURL:  imageURL,
	})
	return ref
}

func (s *analysisService) runSubAnalyses(ctx context.Context, ref analyzer.ImageRef, options analyzer.AnalysisOptions) (*models.ImageAnalysisResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewTimeoutError("analysis deadline exceeded before start", err)
	}

	var (
		wg sync.WaitGroup

		classification models.CulturalClassification
		classifyErr    error

		objects   []models.DetectedObject
		detectErr error

		text       models.ExtractedText
		extractErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		classification, classifyErr = s.classifier.Classify(ctx, ref)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		objects, detectErr = s.detector.Detect(ctx, ref)
	}()

	if options.IncludeTextExtraction {
		wg.Add(1)
		go func() {
			defer wg.Done()
			text, extractErr = s.extractor.ExtractText(ctx, ref)
		}()
	} else {
		text = analyzer.EmptyExtraction()
	}

	wg.Wait()

	// Degrade interrupted stages to their defaults
	if classifyErr != nil {
		if !isDeadline(classifyErr) {
			return nil, apperrors.NewProcessingError("cultural classification failed",
				fmt.Errorf("portuguese cultural image analysis failed: %w", classifyErr))
		}
		classification = analyzer.DefaultClassification()
	}
	if detectErr != nil {
		if !isDeadline(detectErr) {
			return nil, apperrors.NewProcessingError("object detection failed",
				fmt.Errorf("portuguese cultural image analysis failed: %w", detectErr))
		}
		objects = nil
	}
	if extractErr != nil {
		if !isDeadline(extractErr) {
			return nil, apperrors.NewProcessingError("text extraction failed",
				fmt.Errorf("portuguese cultural image analysis failed: %w", extractErr))
		}
		text = analyzer.EmptyExtraction()
	}

	// Summary-level classification keeps the primary picture and its scores
	// but drops the narrative detail
	if !options.DetailedClassification {
		classification.SecondaryCategories = nil
		classification.RelatedTraditions = nil
		classification.SeasonalContext = ""
	}

	// Authenticity depends on the claimed category, so it runs after
	// classification settled
	authenticity := analyzer.DefaultAuthenticity(classification.PrimaryCategory, s.db)
	if options.AuthenticityVerification {
		verified, verifyErr := s.verifier.Verify(ctx, ref, classification.PrimaryCategory)
		switch {
		case verifyErr == nil:
			authenticity = verified
		case !isDeadline(verifyErr):
			return nil, apperrors.NewProcessingError("authenticity verification failed",
				fmt.Errorf("portuguese cultural image analysis failed: %w", verifyErr))
		}
	}

	result := &models.ImageAnalysisResult{
		Classification: classification,
		Objects:        objects,
		Text:           text,
		Authenticity:   authenticity,
	}
	result.Confidence = deriveConfidence(result)
	return result, nil
}

// deriveConfidence fills per-component confidence and the overall figure.
func deriveConfidence(result *models.ImageAnalysisResult) models.ConfidenceScores {
	scores := models.ConfidenceScores{
		ObjectDetection:          50,
		TextExtraction:           50,
		CulturalClassification:   classificationConfidence(result.Classification),
		AuthenticityVerification: result.Authenticity.OverallScore,
	}

	if len(result.Objects) > 0 {
		objectScores := make([]int, len(result.Objects))
		for i, object := range result.Objects {
			objectScores[i] = object.Confidence
		}
		scores.ObjectDetection = analyzer.RoundedMean(objectScores)
	}

	if len(result.Text.Regions) > 0 {
		regionScores := make([]int, len(result.Text.Regions))
		for i, region := range result.Text.Regions {
			regionScores[i] = region.Confidence
		}
		scores.TextExtraction = analyzer.RoundedMean(regionScores)
	}

	scores.OverallAnalysis = analyzer.OverallConfidence(scores)
	return scores
}

func classificationConfidence(classification models.CulturalClassification) int {
	sig := classification.Significance
	return analyzer.RoundedMean([]int{
		sig.HistoricalImportance,
		sig.CommunityRelevance,
		sig.TraditionalValue,
		sig.EducationalValue,
		sig.EmotionalResonance,
	})
}

// buildRecommendations composes caller-facing suggestions from the merged
// result. Text only; never feeds back into scores.
func (s *analysisService) buildRecommendations(result *models.ImageAnalysisResult, options analyzer.AnalysisOptions) []string {
	var recommendations []string

	if result.Classification.PrimaryCategory == models.CategoryTraditionalFood {
		recommendations = append(recommendations,
			"Share this dish with a Portuguese cooking group to collect family variations of the recipe")
	}
	if region := result.Classification.RegionalOrigin; region != "" {
		recommendations = append(recommendations,
			fmt.Sprintf("Connect with community members from %s who may recognise this scene", region))
	}
	if options.CommunityContext && result.Classification.Significance.CommunityRelevance >= 85 {
		recommendations = append(recommendations,
			fmt.Sprintf("Feature this image for the community of %d Portuguese speakers in London and its %d partner organisations",
				s.community.CommunitySize, s.community.PartnershipCount))
	}
	if result.Authenticity.VerificationStatus == models.StatusVerified {
		recommendations = append(recommendations,
			"Submit this verified image to the community heritage archive")
	}
	if result.Authenticity.ExpertReviewNeeded {
		recommendations = append(recommendations,
			"Request review by a cultural heritage expert before attributing provenance")
	}
	return recommendations
}

// AnalyzeHeritagePhoto runs the heritage composition for one photo.
func (s *analysisService) AnalyzeHeritagePhoto(ctx context.Context, imageURL string, family *models.FamilyContext) (*models.HeritagePhotoAnalysis, error) {
	if err := s.ValidateImageURL(imageURL); err != nil {
		return nil, apperrors.NewValidationError("invalid image URL", err)
	}

	started := time.Now()
	ref := s.resolveRef(ctx, imageURL, analyzer.DefaultOptions())

	if s.analysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.analysisTimeout)
		defer cancel()
	}

	analysis, err := s.heritage.AnalyzeHeritage(ctx, ref, family)
	if err != nil {
		if isDeadline(err) {
			return nil, apperrors.NewTimeoutError("heritage analysis timed out", err)
		}
		return nil, apperrors.NewProcessingError("heritage analysis failed",
			fmt.Errorf("portuguese cultural image analysis failed: %w", err))
	}

	analysis.ID = uuid.New().String()
	s.publish(context.WithoutCancel(ctx), observer.AnalysisEvent{
		EventType:      observer.HeritageCompleted,
		Timestamp:      time.Now(),
		ImageURL:       imageURL,
		ProcessingTime: time.Since(started),
		Success:        true,
	})
	return &analysis, nil
}

// GetAnalysisResult retrieves a stored result by id.
func (s *analysisService) GetAnalysisResult(ctx context.Context, id string) (*models.ImageAnalysisResult, error) {
	result, err := s.analysisRepo.GetAnalysisResult(ctx, id)
	if err != nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("analysis %q not found", id), err)
	}
	return result, nil
}

// GetAnalysisHistory retrieves stored results for one image URL.
func (s *analysisService) GetAnalysisHistory(ctx context.Context, imageURL string) ([]*models.ImageAnalysisResult, error) {
	if err := s.ValidateImageURL(imageURL); err != nil {
		return nil, apperrors.NewValidationError("invalid image URL", err)
	}
	return s.analysisRepo.GetAnalysisHistory(ctx, imageURL)
}

// ValidateImageURL validates the image URL.
func (s *analysisService) ValidateImageURL(imageURL string) error {
	return s.imageRepo.ValidateImageURL(imageURL)
}

func (s *analysisService) publish(ctx context.Context, event observer.AnalysisEvent) {
	if s.publisher != nil {
		s.publisher.NotifyObservers(ctx, event)
	}
}

func isDeadline(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

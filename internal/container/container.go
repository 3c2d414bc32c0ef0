package container

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/lusolondon/cultural-vision-go/internal/analyzer"
	"github.com/lusolondon/cultural-vision-go/internal/config"
	"github.com/lusolondon/cultural-vision-go/internal/logger"
	"github.com/lusolondon/cultural-vision-go/internal/observer"
	"github.com/lusolondon/cultural-vision-go/internal/repository"
	"github.com/lusolondon/cultural-vision-go/internal/service"
	"github.com/lusolondon/cultural-vision-go/internal/storage"
	"github.com/lusolondon/cultural-vision-go/internal/transport"
)

// Container holds all application dependencies
type Container struct {
	config          *config.Config
	imageFetcher    storage.ImageFetcher
	imageRepository repository.ImageRepository
	analysisRepo    repository.AnalysisRepository
	analysisService service.AnalysisService
	batchService    service.BatchAnalysisService
	publisher       observer.Subject
	registry        *prometheus.Registry
	handler         http.Handler
}

// NewContainer builds the dependency graph from configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	imageFetcher, err := newImageFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build image fetcher: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	publisher := observer.NewEventPublisher()
	publisher.Subscribe(observer.NewLoggingObserver(logger.Logger))
	publisher.Subscribe(observer.NewMetricsObserver(registry))

	imageRepository := repository.NewImageRepository(imageFetcher)
	analysisRepo := repository.NewMemoryAnalysisRepository(1000)

	db := analyzer.NewCategoryDatabase()
	glossary := analyzer.NewGlossary()
	metrics := analyzer.NewMetricsCalculator()

	analysisService := service.NewAnalysisService(
		imageRepository,
		analysisRepo,
		analyzer.NewCulturalClassifier(db),
		analyzer.NewObjectDetector(),
		analyzer.NewTextExtractor(glossary),
		analyzer.NewAuthenticityVerifier(db),
		analyzer.NewHeritageAnalyzer(db, metrics),
		db,
		publisher,
		service.CommunityProfile{
			CommunitySize:    cfg.CommunitySize,
			PartnershipCount: cfg.PartnershipCount,
		},
		cfg.AnalysisTimeout,
	)
	batchService := service.NewBatchAnalysisService(analysisService, publisher, cfg.MaxBatchSize)

	handler := transport.NewHandler(analysisService, batchService, cfg, registry)

	return &Container{
		config:          cfg,
		imageFetcher:    imageFetcher,
		imageRepository: imageRepository,
		analysisRepo:    analysisRepo,
		analysisService: analysisService,
		batchService:    batchService,
		publisher:       publisher,
		registry:        registry,
		handler:         handler,
	}, nil
}

// newImageFetcher selects the storage backend from configuration.
func newImageFetcher(cfg *config.Config) (storage.ImageFetcher, error) {
	switch cfg.StorageBackend {
	case "azure":
		return storage.NewAzureImageFetcher(cfg.AzureAccountName, cfg.AzureAccountKey)
	default:
		return storage.NewHTTPImageFetcher(cfg.ImageFetchTimeout), nil
	}
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// AnalysisService returns the single-image analysis service
func (c *Container) AnalysisService() service.AnalysisService {
	return c.analysisService
}

// BatchService returns the batch analysis service
func (c *Container) BatchService() service.BatchAnalysisService {
	return c.batchService
}

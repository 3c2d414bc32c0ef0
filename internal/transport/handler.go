package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/lusolondon/cultural-vision-go/internal/analyzer"
	"github.com/lusolondon/cultural-vision-go/internal/config"
	apperrors "github.com/lusolondon/cultural-vision-go/internal/errors"
	"github.com/lusolondon/cultural-vision-go/internal/logger"
	"github.com/lusolondon/cultural-vision-go/internal/service"
	"github.com/lusolondon/cultural-vision-go/pkg/models"
)

// NewHandler builds the HTTP routing for the analysis API.
func NewHandler(analysis service.AnalysisService, batch service.BatchAnalysisService, cfg *config.Config, gatherer prometheus.Gatherer) http.Handler {
	r := gin.Default()

	r.Use(
		requestSizeLimiter(cfg.MaxRequestBodySize),
		errorHandler(),
	)

	r.GET("/health", healthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	r.POST("/analyze", analyzeImage(analysis, cfg))
	r.POST("/analyze/heritage", analyzeHeritage(analysis, cfg))
	r.POST("/analyze/batch", analyzeBatch(batch, cfg))
	r.GET("/analyze/:id", getAnalysis(analysis))
	r.GET("/history", getHistory(analysis))

	return r
}

func analyzeImage(analysis service.AnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"url": req.URL,
			"ip":  c.ClientIP(),
		}).Info("Processing cultural analysis request")

		result, err := analysis.AnalyzeImageWithOptions(ctx, req.URL, optionsFromRequest(req))
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "analysis failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// optionsFromRequest applies the request's optional flags onto the defaults.
func optionsFromRequest(req models.AnalyzeRequest) analyzer.AnalysisOptions {
	options := analyzer.DefaultOptions()
	if req.IncludeTextExtraction != nil {
		options.IncludeTextExtraction = *req.IncludeTextExtraction
	}
	if req.AuthenticityVerification != nil {
		options.AuthenticityVerification = *req.AuthenticityVerification
	}
	if req.DetailedClassification != nil {
		options.DetailedClassification = *req.DetailedClassification
	}
	if req.CommunityContext != nil {
		options.CommunityContext = *req.CommunityContext
	}
	return options
}

func analyzeHeritage(analysis service.AnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.HeritageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"url": req.URL,
			"ip":  c.ClientIP(),
		}).Info("Processing heritage photo analysis request")

		result, err := analysis.AnalyzeHeritagePhoto(ctx, req.URL, req.FamilyContext)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "heritage analysis failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func analyzeBatch(batch service.BatchAnalysisService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		var req models.BatchRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "invalid request format", err)
			return
		}

		logger.WithFields(logrus.Fields{
			"batch_size": len(req.URLs),
			"ip":         c.ClientIP(),
		}).Info("Processing batch analysis request")

		options := analyzer.DefaultBatchOptions()
		if req.PriorityOrder != "" {
			options.PriorityOrder = req.PriorityOrder
		}
		options.IncludeDetailedAnalysis = req.IncludeDetailedAnalysis
		if req.GenerateCollections != nil {
			options.GenerateCollections = *req.GenerateCollections
		}

		result, err := batch.AnalyzeBatch(ctx, req.URLs, options)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "batch analysis failed", err)
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

func getAnalysis(analysis service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := analysis.GetAnalysisResult(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "analysis not found", err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func getHistory(analysis service.AnalysisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		imageURL := c.Query("url")
		if imageURL == "" {
			respondError(c, http.StatusBadRequest, "missing url query parameter", nil)
			return
		}
		history, err := analysis.GetAnalysisHistory(c.Request.Context(), imageURL)
		if err != nil {
			respondError(c, apperrors.GetStatusCode(err), "history lookup failed", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"image_url": imageURL, "results": history})
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "available",
		"version": "1.0.0",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Middleware and helper functions
func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

func errorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			respondError(c, determineStatusCode(err), "request processing failed", err)
		}
	}
}

func determineStatusCode(err error) int {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, code int, message string, err error) {
	logger.WithError(err).WithFields(logrus.Fields{
		"status_code": code,
		"message":     message,
		"path":        c.Request.URL.Path,
		"method":      c.Request.Method,
		"ip":          c.ClientIP(),
	}).Error("Request failed")

	response := models.ErrorResponse{Error: http.StatusText(code)}
	if err != nil {
		response.Message = fmt.Sprintf("%s: %v", message, err)
	} else {
		response.Message = message
	}
	c.AbortWithStatusJSON(code, response)
}

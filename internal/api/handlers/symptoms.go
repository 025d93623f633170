package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/analyzer"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/database"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/models"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/repository"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/services"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// historyLimit caps how many past checks the history endpoint returns.
const historyLimit = 10

// analysisCacheTTL is how long a finished analysis is served from Redis
// before the model is asked again.
const analysisCacheTTL = 30 * time.Minute

type SymptomHandler struct {
	analysisService *services.AnalysisService
	repoManager     *repository.RepositoryManager
	cache           *database.Cache
	logger          *logrus.Logger
}

// NewSymptomHandler wires the handler. cache may be nil when Redis is not
// configured; the handler then always goes to the model.
func NewSymptomHandler(
	analysisService *services.AnalysisService,
	repoManager *repository.RepositoryManager,
	cache *database.Cache,
	logger *logrus.Logger,
) *SymptomHandler {
	return &SymptomHandler{
		analysisService: analysisService,
		repoManager:     repoManager,
		cache:           cache,
		logger:          logger,
	}
}

// HandleCheckSymptoms runs one symptom check: validate, analyze (remote
// first, local fallback on any remote failure), persist, respond. A
// well-formed request always gets a 200 with an answer.
func (h *SymptomHandler) HandleCheckSymptoms(c *gin.Context) {
	startTime := time.Now()

	var req models.SymptomCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid symptom check request")
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Symptoms field is required")
		return
	}

	h.logger.WithFields(logrus.Fields{
		"symptoms_length": len(symptoms),
		"ip_address":      c.ClientIP(),
		"request_id":      c.GetString("request_id"),
	}).Info("Processing symptom check")

	ctx := c.Request.Context()

	// Repeated complaints are served from cache when Redis is around.
	cacheKey := utils.MD5Hash(strings.ToLower(symptoms))
	if h.cache != nil {
		if cached, err := h.cache.GetCachedAnalysis(ctx, cacheKey); err == nil {
			h.logger.Debug("Analysis served from cache")
			h.recordQuery(symptoms, cached)
			c.JSON(http.StatusOK, models.SymptomCheckResponse{Output: cached})
			return
		}
	}

	output, err := h.analysisService.Analyze(ctx, symptoms)
	if err != nil {
		// Any remote failure degrades to the local keyword analyzer. The
		// caller still gets an answer, never an error body.
		h.logger.WithError(err).Warn("Remote analysis failed, using fallback analyzer")
		output = analyzer.Analyze(symptoms)
	} else if h.cache != nil {
		// Only remote-generated answers are cached; fallback output would
		// otherwise keep being served after the model recovers.
		if err := h.cache.CacheAnalysis(ctx, cacheKey, output, analysisCacheTTL); err != nil {
			h.logger.WithError(err).Warn("Failed to cache analysis")
		}
	}

	h.recordQuery(symptoms, output)

	h.logger.WithFields(logrus.Fields{
		"response_time_ms": time.Since(startTime).Milliseconds(),
		"output_length":    len(output),
	}).Info("Symptom check completed")

	c.JSON(http.StatusOK, models.SymptomCheckResponse{Output: output})
}

// HandleHistory returns the most recent checks, newest first.
func (h *SymptomHandler) HandleHistory(c *gin.Context) {
	queries, err := h.repoManager.Queries.GetRecent(historyLimit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load query history")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load history")
		return
	}

	if queries == nil {
		queries = []models.Query{}
	}

	c.JSON(http.StatusOK, queries)
}

// recordQuery persists one check. Failures are logged and swallowed: the
// answer the caller gets was already computed and a full history is not
// worth failing the request over.
func (h *SymptomHandler) recordQuery(symptoms, analysis string) {
	query := &models.Query{
		Symptoms: symptoms,
		Analysis: analysis,
	}

	if err := h.repoManager.Queries.Create(query); err != nil {
		h.logger.WithError(err).Error("Failed to record symptom query")
		return
	}

	h.logger.WithField("query_id", query.ID).Debug("Symptom query recorded")
}

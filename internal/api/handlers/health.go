package handlers

import (
	"net/http"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/health"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HealthHandler struct {
	checker *health.Checker
	logger  *logrus.Logger
}

func NewHealthHandler(checker *health.Checker, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// HandleHealth reports dependency status. Always a 200; a broken
// dependency shows up in the body, not in the status code.
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	response := h.checker.Check(c.Request.Context())

	h.logger.WithFields(logrus.Fields{
		"status":      response.Status,
		"database":    response.Database,
		"huggingface": response.HuggingFace,
	}).Debug("Health check completed")

	c.JSON(http.StatusOK, response)
}

package api

import (
	"path/filepath"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/api/handlers"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter assembles the gin engine: middleware chain, API routes and
// the static frontend page. staticDir holds index.html.
func NewRouter(
	symptomHandler *handlers.SymptomHandler,
	healthHandler *handlers.HealthHandler,
	staticDir string,
	logger *logrus.Logger,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())

	api := router.Group("/api")
	{
		api.POST("/check-symptoms", symptomHandler.HandleCheckSymptoms)
		api.GET("/history", symptomHandler.HandleHistory)
		api.GET("/health", healthHandler.HandleHealth)
	}

	router.StaticFile("/", filepath.Join(staticDir, "index.html"))

	return router
}

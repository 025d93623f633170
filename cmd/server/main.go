package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/api"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/api/handlers"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/config"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/database"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/health"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/huggingface"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/repository"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/services"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/pkg/utils"
	"github.com/joho/godotenv"
)

const staticDir = "./web"

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	logger.Info("Starting symptom checker backend...")

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if cfg.HuggingFace.APIKey == "" {
		logger.Warn("HUGGINGFACE_API_KEY not set, inference requests run unauthenticated")
	}

	dbConfig := &database.Config{
		DatabaseURL: cfg.Database.URL,
		SQLitePath:  cfg.Database.SQLitePath,
		RedisURL:    cfg.Redis.URL,
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}

	dbManager, err := database.NewManager(dbConfig, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database manager")
	}
	defer dbManager.Close()

	// The queries table must exist before the first request.
	if err := dbManager.Migrate(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	hfClient := huggingface.NewClient(cfg.HuggingFace.BaseURL, cfg.HuggingFace.APIKey, cfg.Timeout(), logger)

	generationOpts := huggingface.GenerationOptions{
		MaxNewTokens: cfg.HuggingFace.MaxNewTokens,
		Temperature:  cfg.HuggingFace.Temperature,
		TopP:         cfg.HuggingFace.TopP,
		DoSample:     true,
	}

	analysisService := services.NewAnalysisService(hfClient, cfg.HuggingFace.MedicalModel, generationOpts, logger)
	repoManager := repository.NewRepositoryManager(dbManager.DB)

	var cache *database.Cache
	if dbManager.CacheEnabled() {
		cache = database.NewCache(dbManager.Redis, logger)
		logger.Info("Analysis cache enabled")
	}

	checker := health.NewChecker(dbManager, hfClient, cfg.HuggingFace.GeneralModel, logger)

	symptomHandler := handlers.NewSymptomHandler(analysisService, repoManager, cache, logger)
	healthHandler := handlers.NewHealthHandler(checker, logger)

	router := api.NewRouter(symptomHandler, healthHandler, staticDir, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 2 * cfg.Timeout(),
	}

	go func() {
		logger.WithField("port", cfg.Server.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("HTTP server failed")
		}
	}()

	// Block until asked to stop, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Forced shutdown")
	}

	logger.Info("Server stopped")
}

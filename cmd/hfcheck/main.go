package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/config"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/huggingface"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/pkg/utils"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Command line flags
var (
	model   = flag.String("model", "", "Model to query (defaults to the configured medical model)")
	prompt  = flag.String("prompt", "I have a headache and a slight fever.", "Prompt to send")
	timeout = flag.Duration("timeout", 60*time.Second, "Request timeout")
	verbose = flag.Bool("verbose", false, "Enable verbose logging")
)

// Connectivity check against the inference API. Sends one generation
// request with the configured credentials and prints the answer, so a
// deployment can be verified without starting the server.
func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	logger := utils.GetLogger()
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	targetModel := *model
	if targetModel == "" {
		targetModel = cfg.HuggingFace.MedicalModel
	}

	logger.WithFields(logrus.Fields{
		"base_url": cfg.HuggingFace.BaseURL,
		"model":    targetModel,
		"has_key":  cfg.HuggingFace.APIKey != "",
	}).Info("Checking inference API connectivity")

	client := huggingface.NewClient(cfg.HuggingFace.BaseURL, cfg.HuggingFace.APIKey, *timeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	output, err := client.Generate(ctx, targetModel, *prompt, huggingface.DefaultGenerationOptions())
	if err != nil {
		logger.WithError(err).Fatal("Inference API check failed")
	}

	logger.WithField("elapsed", time.Since(start).String()).Info("Inference API reachable")
	fmt.Println(output)
}

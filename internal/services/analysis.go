package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/analyzer"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/huggingface"
	"github.com/sirupsen/logrus"
)

// analysisPrompt wraps the raw symptom text into an instruction the
// text-generation models respond well to.
const analysisPrompt = "A patient reports the following symptoms: %s. Provide a short analysis of possible causes and general self-care advice."

// AnalysisService turns free-text symptoms into an analysis using the
// inference API. It does not fall back on its own; the handler decides
// what a remote failure means.
type AnalysisService struct {
	client *huggingface.Client
	model  string
	opts   huggingface.GenerationOptions
	logger *logrus.Logger
}

func NewAnalysisService(
	client *huggingface.Client,
	model string,
	opts huggingface.GenerationOptions,
	logger *logrus.Logger,
) *AnalysisService {
	if model == "" {
		model = huggingface.DefaultModel
	}
	return &AnalysisService{
		client: client,
		model:  model,
		opts:   opts,
		logger: logger,
	}
}

// Analyze builds the prompt, runs it through the configured model and
// appends the disclaimer. The error carries the remote cause; the raw
// generated text is never returned without the disclaimer.
func (s *AnalysisService) Analyze(ctx context.Context, symptoms string) (string, error) {
	s.logger.WithFields(logrus.Fields{
		"model":           s.model,
		"symptoms_length": len(symptoms),
	}).Debug("Starting symptom analysis")

	prompt := fmt.Sprintf(analysisPrompt, symptoms)

	generated, err := s.client.Generate(ctx, s.model, prompt, s.opts)
	if err != nil {
		s.logger.WithError(err).Error("Inference API call failed")
		return "", fmt.Errorf("analysis service unavailable: %w", err)
	}

	s.logger.WithField("generated_length", len(generated)).Debug("Analysis completed")

	return strings.TrimSpace(generated) + analyzer.Disclaimer, nil
}

package huggingface

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client talks to the HuggingFace Inference API. It does exactly one
// request per call, no retries; callers decide what a failure means.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient builds a client for the given endpoint. An empty apiKey is
// allowed, the Inference API serves unauthenticated requests at a lower
// rate limit.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *logrus.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// StatusError is returned when the Inference API answers outside the 2xx
// range. The raw body is kept because HF error payloads vary by cause
// (model loading, rate limit, bad parameters).
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("inference request failed with status %d: %s", e.StatusCode, e.Body)
}

// Generate runs the prompt through the given model and returns the
// generated text. The response shape differs across model types, so the
// body is decoded in priority order: list of generations, single
// generation, raw body as-is.
func (c *Client) Generate(ctx context.Context, model, prompt string, opts GenerationOptions) (string, error) {
	payload := GenerateRequest{
		Inputs: prompt,
		Parameters: GenerateParameters{
			MaxNewTokens: opts.MaxNewTokens,
			Temperature:  opts.Temperature,
			TopP:         opts.TopP,
			DoSample:     opts.DoSample,
		},
		Options: RequestOptions{WaitForModel: true},
	}

	body, err := c.post(ctx, "/models/"+model, payload)
	if err != nil {
		return "", err
	}
	return decodeGenerated(body), nil
}

// Probe sends the smallest possible generation request. Used by health
// checks; only the error matters.
func (c *Client) Probe(ctx context.Context, model string) error {
	_, err := c.Generate(ctx, model, "Hello", GenerationOptions{
		MaxNewTokens: 1,
		Temperature:  1.0,
		TopP:         1.0,
	})
	return err
}

func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	url := c.baseURL + endpoint

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"url":          url,
		"payload_size": len(jsonData),
	}).Debug("Making inference API request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"status_code":   resp.StatusCode,
		"url":           url,
		"response_size": len(responseBody),
	}).Debug("Inference API response received")

	// Only log response body for small responses or errors
	if len(responseBody) < 500 || resp.StatusCode >= 400 {
		c.logger.WithFields(logrus.Fields{
			"status_code":   resp.StatusCode,
			"url":           url,
			"response_body": string(responseBody),
		}).Debug("Response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(responseBody),
		}
	}

	return responseBody, nil
}

// decodeGenerated pulls generated_text out of whichever shape the model
// returned. Unknown shapes pass through verbatim rather than failing the
// request.
func decodeGenerated(body []byte) string {
	var list []GeneratedText
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].GeneratedText != "" {
		return list[0].GeneratedText
	}

	var single GeneratedText
	if err := json.Unmarshal(body, &single); err == nil && single.GeneratedText != "" {
		return single.GeneratedText
	}

	return string(body)
}

package huggingface

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/models/google/flan-t5-base", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "I have a headache", req.Inputs)
		assert.Equal(t, 150, req.Parameters.MaxNewTokens)
		assert.Equal(t, 0.7, req.Parameters.Temperature)
		assert.Equal(t, 0.9, req.Parameters.TopP)
		assert.True(t, req.Parameters.DoSample)
		assert.True(t, req.Options.WaitForModel)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]GeneratedText{{GeneratedText: "Rest and drink water."}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second, logrus.New())

	output, err := client.Generate(context.Background(), "google/flan-t5-base", "I have a headache", DefaultGenerationOptions())
	require.NoError(t, err)
	assert.Equal(t, "Rest and drink water.", output)
}

func TestClient_GenerateObjectResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(GeneratedText{GeneratedText: "object shaped"})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, logrus.New())

	output, err := client.Generate(context.Background(), "some/model", "hi", DefaultGenerationOptions())
	require.NoError(t, err)
	assert.Equal(t, "object shaped", output)
}

func TestClient_GenerateUnknownShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 0.93}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, logrus.New())

	output, err := client.Generate(context.Background(), "some/model", "hi", DefaultGenerationOptions())
	require.NoError(t, err)
	assert.Equal(t, `{"score": 0.93}`, output)
}

func TestClient_GenerateNoAuthHeaderWithoutKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]GeneratedText{{GeneratedText: "ok"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, logrus.New())

	_, err := client.Generate(context.Background(), "some/model", "hi", DefaultGenerationOptions())
	require.NoError(t, err)
}

func TestClient_GenerateStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error": "Model google/flan-t5-base is currently loading"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second, logrus.New())

	_, err := client.Generate(context.Background(), "google/flan-t5-base", "hi", DefaultGenerationOptions())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "currently loading")
	assert.Contains(t, err.Error(), "503")
}

func TestClient_GenerateContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode([]GeneratedText{{GeneratedText: "too late"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", 5*time.Second, logrus.New())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, "some/model", "hi", DefaultGenerationOptions())
	require.Error(t, err)
	assert.NotErrorIs(t, err, context.Canceled)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestClient_Probe(t *testing.T) {
	var gotTokens int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotTokens = req.Parameters.MaxNewTokens
		json.NewEncoder(w).Encode([]GeneratedText{{GeneratedText: "hello"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 5*time.Second, logrus.New())

	err := client.Probe(context.Background(), "google/flan-t5-base")
	require.NoError(t, err)
	assert.Equal(t, 1, gotTokens)
}

func TestDecodeGenerated(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{"list", `[{"generated_text": "first"}, {"generated_text": "second"}]`, "first"},
		{"object", `{"generated_text": "only"}`, "only"},
		{"empty list", `[]`, `[]`},
		{"classifier list", `[{"label": "POSITIVE", "score": 0.99}]`, `[{"label": "POSITIVE", "score": 0.99}]`},
		{"plain text", `model warming up`, `model warming up`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, decodeGenerated([]byte(tt.body)))
		})
	}
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/database"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/health"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/huggingface"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthRouter(t *testing.T, inferenceURL string) (*gin.Engine, *database.Manager) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.FatalLevel)

	manager, err := database.NewManager(&database.Config{SQLitePath: ":memory:"}, log)
	require.NoError(t, err)
	t.Cleanup(func() { manager.Close() })

	client := huggingface.NewClient(inferenceURL, "test-key", 5*time.Second, log)
	checker := health.NewChecker(manager, client, "google/flan-t5-base", log)
	handler := NewHealthHandler(checker, log)

	router := gin.New()
	router.GET("/api/health", handler.HandleHealth)
	return router, manager
}

func getHealth(t *testing.T, router *gin.Engine) (int, models.HealthResponse) {
	t.Helper()

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

func TestHandleHealth_AllHealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]huggingface.GeneratedText{{GeneratedText: "hello"}})
	}))
	defer server.Close()

	router, _ := newHealthRouter(t, server.URL)

	code, resp := getHealth(t, router)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, health.StatusHealthy, resp.Status)
	assert.Equal(t, health.DatabaseConnected, resp.Database)
	assert.Equal(t, health.InferenceWorking, resp.HuggingFace)
	assert.Empty(t, resp.Error)
}

func TestHandleHealth_InferenceFailing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	router, _ := newHealthRouter(t, server.URL)

	// Degraded is reported in the body, never as an error status.
	code, resp := getHealth(t, router)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, health.StatusDegraded, resp.Status)
	assert.Equal(t, health.DatabaseConnected, resp.Database)
	assert.Equal(t, health.InferenceFailing, resp.HuggingFace)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleHealth_DatabaseDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]huggingface.GeneratedText{{GeneratedText: "hello"}})
	}))
	defer server.Close()

	router, manager := newHealthRouter(t, server.URL)
	require.NoError(t, manager.Close())

	code, resp := getHealth(t, router)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, health.StatusDegraded, resp.Status)
	assert.Equal(t, health.DatabaseDisconnected, resp.Database)
	assert.NotEmpty(t, resp.Error)
}

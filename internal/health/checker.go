package health

import (
	"context"
	"strings"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/database"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/huggingface"
	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/models"
	"github.com/sirupsen/logrus"
)

// Status strings reported per dependency.
const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"

	InferenceWorking = "working"
	InferenceFailing = "failing"
)

// probeTimeout caps the inference check so a hanging model does not
// stall the health endpoint.
const probeTimeout = 10 * time.Second

// Checker verifies the two dependencies a symptom check needs: the
// database and the inference API. Checks report status, they never fail.
type Checker struct {
	dbManager *database.Manager
	client    *huggingface.Client
	model     string
	logger    *logrus.Logger
}

func NewChecker(dbManager *database.Manager, client *huggingface.Client, model string, logger *logrus.Logger) *Checker {
	if model == "" {
		model = huggingface.DefaultModel
	}
	return &Checker{
		dbManager: dbManager,
		client:    client,
		model:     model,
		logger:    logger,
	}
}

// CheckDatabase pings the database and maps the result to a wire status.
func (h *Checker) CheckDatabase() (string, error) {
	start := time.Now()
	err := h.dbManager.PingDatabase()
	responseTime := int(time.Since(start).Milliseconds())

	if err != nil {
		h.logger.WithError(err).WithField("response_time_ms", responseTime).Error("Database health check failed")
		return DatabaseDisconnected, err
	}

	return DatabaseConnected, nil
}

// CheckInference sends the general model a minimal generation request.
func (h *Checker) CheckInference(ctx context.Context) (string, error) {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	start := time.Now()
	err := h.client.Probe(probeCtx, h.model)
	responseTime := int(time.Since(start).Milliseconds())

	if err != nil {
		h.logger.WithError(err).WithField("response_time_ms", responseTime).Error("Inference health check failed")
		return InferenceFailing, err
	}

	return InferenceWorking, nil
}

// Check runs both dependency checks and rolls them up. Overall status is
// healthy only when every check passes; any failure degrades it and the
// causes are joined into the error field.
func (h *Checker) Check(ctx context.Context) models.HealthResponse {
	response := models.HealthResponse{
		Status: StatusHealthy,
	}

	var problems []string

	dbStatus, err := h.CheckDatabase()
	response.Database = dbStatus
	if err != nil {
		response.Status = StatusDegraded
		problems = append(problems, err.Error())
	}

	hfStatus, err := h.CheckInference(ctx)
	response.HuggingFace = hfStatus
	if err != nil {
		response.Status = StatusDegraded
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		response.Error = strings.Join(problems, "; ")
	}

	return response
}

package models

// SymptomCheckRequest is the body of POST /api/check-symptoms.
type SymptomCheckRequest struct {
	Symptoms string `json:"symptoms"`
}

// SymptomCheckResponse carries the analysis text back to the caller.
type SymptomCheckResponse struct {
	Output string `json:"output"`
}

// HealthResponse is the body of GET /api/health. Status is "healthy" only
// when both dependencies check out, otherwise "degraded".
type HealthResponse struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	HuggingFace string `json:"huggingface"`
	Error       string `json:"error,omitempty"`
}

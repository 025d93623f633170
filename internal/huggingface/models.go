package huggingface

const (
	// DefaultBaseURL is the hosted Inference API endpoint.
	DefaultBaseURL = "https://api-inference.huggingface.co"

	// DefaultModel handles both medical and general prompts unless
	// overridden in config.
	DefaultModel = "google/flan-t5-base"
)

// GenerationOptions are the sampling parameters sent with every
// text-generation request.
type GenerationOptions struct {
	MaxNewTokens int
	Temperature  float64
	TopP         float64
	DoSample     bool
}

// DefaultGenerationOptions returns the sampling setup used for symptom
// analysis prompts.
func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		MaxNewTokens: 150,
		Temperature:  0.7,
		TopP:         0.9,
		DoSample:     true,
	}
}

type GenerateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters GenerateParameters `json:"parameters"`
	Options    RequestOptions     `json:"options"`
}

type GenerateParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
	TopP         float64 `json:"top_p"`
	DoSample     bool    `json:"do_sample"`
}

// RequestOptions tunes how the Inference API schedules the request.
// wait_for_model blocks instead of returning 503 while a cold model loads.
type RequestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type GeneratedText struct {
	GeneratedText string `json:"generated_text"`
}

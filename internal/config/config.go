package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		URL        string
		SQLitePath string
	}
	Redis struct {
		URL string
	}
	HuggingFace struct {
		APIKey         string
		BaseURL        string
		MedicalModel   string
		GeneralModel   string
		MaxNewTokens   int
		Temperature    float64
		TopP           float64
		TimeoutSeconds int
	}
}

// Load reads settings from an optional config.yaml, then lets environment
// variables override them (dots become underscores, so hf.max_new_tokens
// maps to HF_MAX_NEW_TOKENS). Every key has a working default except the
// API key, which only ever comes from the environment.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Heroku-style listen port.
	viper.BindEnv("server.port", "PORT", "SERVER_PORT")

	var config Config

	// Set defaults
	viper.SetDefault("server.port", "5000")
	viper.SetDefault("database.url", "")
	viper.SetDefault("database.sqlite_path", "symptom_checker.db")
	viper.SetDefault("redis.url", "")
	viper.SetDefault("hf.base_url", "https://api-inference.huggingface.co")
	viper.SetDefault("hf.medical_model", "google/flan-t5-base")
	viper.SetDefault("hf.general_model", "google/flan-t5-base")
	viper.SetDefault("hf.max_new_tokens", 150)
	viper.SetDefault("hf.temperature", 0.7)
	viper.SetDefault("hf.top_p", 0.9)
	viper.SetDefault("hf.timeout_seconds", 30)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	config.Server.Port = viper.GetString("server.port")
	config.Database.URL = viper.GetString("database.url")
	config.Database.SQLitePath = viper.GetString("database.sqlite_path")
	config.Redis.URL = viper.GetString("redis.url")
	config.HuggingFace.APIKey = os.Getenv("HUGGINGFACE_API_KEY")
	config.HuggingFace.BaseURL = viper.GetString("hf.base_url")
	config.HuggingFace.MedicalModel = viper.GetString("hf.medical_model")
	config.HuggingFace.GeneralModel = viper.GetString("hf.general_model")
	config.HuggingFace.MaxNewTokens = viper.GetInt("hf.max_new_tokens")
	config.HuggingFace.Temperature = viper.GetFloat64("hf.temperature")
	config.HuggingFace.TopP = viper.GetFloat64("hf.top_p")
	config.HuggingFace.TimeoutSeconds = viper.GetInt("hf.timeout_seconds")

	return &config, nil
}

// Timeout is the per-request deadline for inference calls.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.HuggingFace.TimeoutSeconds) * time.Second
}

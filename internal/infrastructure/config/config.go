package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DatabasePath string

	// Azure OpenAI scoring backend
	LLMEndpoint   string // e.g. "https://my-resource.openai.azure.com"
	LLMAPIKey     string
	LLMAPIVersion string
	LLMDeployment string // deployment (model) name to call
	DefaultModel  string // model identifier persisted with each score
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout: mustGetDuration("SHUTDOWN_TIMEOUT"),
		DatabasePath:    getenvDefault("DATABASE_PATH", "gemba.db"),
		LLMEndpoint:     mustGetenv("AZURE_OPENAI_ENDPOINT"),
		LLMAPIKey:       mustGetenv("AZURE_OPENAI_API_KEY"),
		LLMAPIVersion:   getenvDefault("AZURE_OPENAI_API_VERSION", "2024-08-01-preview"),
		LLMDeployment:   mustGetenv("AZURE_OPENAI_DEPLOYMENT"),
		DefaultModel:    getenvDefault("DEFAULT_LLM_MODEL", "gpt-4o-mini"),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

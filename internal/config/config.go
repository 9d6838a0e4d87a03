package config

import "os"

type Config struct {
	Port             string
	GinMode          string
	DatabaseURL      string
	OpenAIAPIKey     string
	LLMBaseURL       string
	LLMModel         string
	RabbitMQURI      string
	RabbitMQExchange string
	JWTSecret        string
}

// Load reads the configuration from the environment. The OpenAI key may be
// empty: startup proceeds and generation calls fail individually.
func Load() *Config {
	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		LLMBaseURL:       getEnvOrDefault("LLM_BASE_URL", "https://api.openai.com/v1"),
		LLMModel:         getEnvOrDefault("LLM_MODEL", "gpt-4o"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "studybuddy.events"),
		JWTSecret:        getEnvOrDefault("JWT_SECRET", "studybuddy-dev-secret"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Airtable AirtableConfig
	Ai       AIConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	StaticDir          string
}

type DatabaseConfig struct {
	Connection string
}

type AirtableConfig struct {
	BaseID    string
	TableName string
	APIKey    string
}

type AIConfig struct {
	Provider      string // "openai" or "ollama"
	Model         string // default generation model
	RegenModel    string // model for editor-driven regeneration
	OpenAIKey     string
	OllamaBaseURL string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "5000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:5000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			StaticDir:          getEnv("STATIC_DIR", "./build"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Airtable: AirtableConfig{
			BaseID:    getEnv("AIRTABLE_BASE_ID", ""),
			TableName: getEnv("AIRTABLE_TABLE_NAME", ""),
			APIKey:    getEnv("AIRTABLE_API_KEY", ""),
		},
		Ai: AIConfig{
			Provider:      getEnv("LLM_PROVIDER", "openai"),
			Model:         getEnv("LLM_MODEL", "gpt-4o"),
			RegenModel:    getEnv("LLM_REGEN_MODEL", "gpt-4-turbo"),
			OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

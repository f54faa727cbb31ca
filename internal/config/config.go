package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LLM providers understood by llm.New.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Formatter modes.
const (
	FormatterTemplate = "template"
	FormatterLLM      = "llm"
)

// Config holds all configuration for the application.
type Config struct {
	LLMProvider  string
	LLMBaseURL   string
	LLMModelName string
	LLMAPIKey    string
	LLMTimeout   time.Duration
	GeminiAPIKey string

	BoardBaseURL string
	BoardTimeout time.Duration

	FormatterMode string

	APIPort            string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration

	LogLevel  string
	LogFormat string

	// QueryLogPath is the sqlite file for the query audit log. Empty disables it.
	QueryLogPath string

	ServiceName    string
	ServiceVersion string
}

var defaults = map[string]any{
	"LLM_PROVIDER":         ProviderOpenAI,
	"LLM_BASE_URL":         "http://localhost:11434/v1", // Ollama OpenAI-compatible endpoint
	"LLM_MODEL":            "llama3.2",
	"LLM_API_KEY":          "ollama",
	"LLM_TIMEOUT":          "30s",
	"GEMINI_API_KEY":       "",
	"BOARD_BASE_URL":       "http://localhost:3001",
	"BOARD_TIMEOUT":        "10s",
	"FORMATTER_MODE":       FormatterTemplate,
	"API_PORT":             "8000",
	"CORS_ALLOWED_ORIGINS": "http://localhost:3000",
	"SHUTDOWN_TIMEOUT":     "10s",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"QUERY_LOG_PATH":       "",
	"SERVICE_NAME":         "board-chatbot",
	"SERVICE_VERSION":      "1.0.0",
}

// Load reads configuration from environment variables and returns a Config struct.
// If a .env file exists in the current directory or a parent, it is loaded first;
// variables already set in the environment take precedence over .env values.
// configFile optionally names a YAML/TOML/JSON file whose keys use the same names
// as the environment variables. Environment variables override the file.
func Load(configFile string) (*Config, error) {
	loadDotEnv()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if configFile == "" {
		configFile = os.Getenv("CONFIG_FILE")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	cfg := &Config{
		LLMProvider:    strings.ToLower(strings.TrimSpace(v.GetString("LLM_PROVIDER"))),
		LLMBaseURL:     strings.TrimRight(v.GetString("LLM_BASE_URL"), "/"),
		LLMModelName:   v.GetString("LLM_MODEL"),
		LLMAPIKey:      v.GetString("LLM_API_KEY"),
		GeminiAPIKey:   v.GetString("GEMINI_API_KEY"),
		BoardBaseURL:   strings.TrimRight(v.GetString("BOARD_BASE_URL"), "/"),
		FormatterMode:  strings.ToLower(strings.TrimSpace(v.GetString("FORMATTER_MODE"))),
		APIPort:        v.GetString("API_PORT"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		LogFormat:      v.GetString("LOG_FORMAT"),
		QueryLogPath:   v.GetString("QUERY_LOG_PATH"),
		ServiceName:    v.GetString("SERVICE_NAME"),
		ServiceVersion: v.GetString("SERVICE_VERSION"),
	}
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	var err error
	if cfg.LLMTimeout, err = parseDuration(v, "LLM_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.BoardTimeout, err = parseDuration(v, "BOARD_TIMEOUT"); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDuration(v, "SHUTDOWN_TIMEOUT"); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.QueryLogPath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.QueryLogPath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create query log directory: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LLMProvider {
	case ProviderOpenAI:
		if c.LLMBaseURL == "" {
			return fmt.Errorf("LLM_BASE_URL is required for provider %s", ProviderOpenAI)
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for provider %s", ProviderGemini)
		}
	default:
		return fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, c.LLMProvider)
	}

	if c.LLMModelName == "" {
		return fmt.Errorf("LLM_MODEL is required")
	}
	if c.BoardBaseURL == "" {
		return fmt.Errorf("BOARD_BASE_URL is required")
	}
	if c.FormatterMode != FormatterTemplate && c.FormatterMode != FormatterLLM {
		return fmt.Errorf("FORMATTER_MODE must be %q or %q, got %q", FormatterTemplate, FormatterLLM, c.FormatterMode)
	}
	if c.APIPort == "" {
		return fmt.Errorf("API_PORT is required")
	}
	return nil
}

// loadDotEnv loads .env from the working directory, then walks up a few levels
// looking for one at the project root. Errors are ignored.
func loadDotEnv() {
	_ = godotenv.Load()

	wd, err := os.Getwd()
	if err != nil {
		return
	}
	dir := wd
	for i := 0; i < 5; i++ { // Limit search depth
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return // Reached filesystem root
		}
		dir = parent
	}
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

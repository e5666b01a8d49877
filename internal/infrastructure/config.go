package infrastructure

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	openAIKeyPlaceholder = "your_openai_api_key_here"
	geminiKeyPlaceholder = "your_gemini_api_key_here"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`

	// Completion API settings
	CompletionProvider string `json:"completion_provider"`
	OpenAIAPIKey       string `json:"-"` // Don't expose in JSON
	OpenAIModel        string `json:"openai_model"`
	OpenAIBaseURL      string `json:"openai_base_url,omitempty"`
	GeminiAPIKey       string `json:"-"`
	GeminiModel        string `json:"gemini_model"`
	GeminiBaseURL      string `json:"gemini_base_url,omitempty"`

	// Transcript settings
	YouTubeBaseURL      string   `json:"youtube_base_url,omitempty"`
	TranscriptLanguages []string `json:"transcript_languages"`

	// API protection
	APIAuthToken       string `json:"-"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute"`

	// Presentation sessions
	SessionTTLMinutes    int    `json:"session_ttl_minutes"`
	SessionSweepSchedule string `json:"session_sweep_schedule"`

	// Course archive (disabled when bucket is empty)
	ArchiveBucket string `json:"archive_bucket,omitempty"`
	ArchivePrefix string `json:"archive_prefix"`
}

// Load reads configuration from environment variables and .env file.
// A missing completion credential is not an error here; generation
// requests report it instead.
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:                 getEnvOrDefault("PORT", "8080"),
		Host:                 getEnvOrDefault("HOST", "0.0.0.0"),
		CompletionProvider:   strings.ToLower(getEnvOrDefault("COMPLETION_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:         getEnvOrDefault("OPENAI_API_KEY", ""),
		OpenAIModel:          getEnvOrDefault("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIBaseURL:        getEnvOrDefault("OPENAI_BASE_URL", ""),
		GeminiAPIKey:         getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:        getEnvOrDefault("GEMINI_BASE_URL", ""),
		YouTubeBaseURL:       getEnvOrDefault("YOUTUBE_BASE_URL", ""),
		TranscriptLanguages:  parseStringSlice(getEnvOrDefault("TRANSCRIPT_LANGUAGES", "en")),
		APIAuthToken:         getEnvOrDefault("API_AUTH_TOKEN", ""),
		RateLimitPerMinute:   getEnvOrDefaultInt("RATE_LIMIT_PER_MINUTE", 10),
		SessionTTLMinutes:    getEnvOrDefaultInt("SESSION_TTL_MINUTES", 60),
		SessionSweepSchedule: getEnvOrDefault("SESSION_SWEEP_SCHEDULE", "@every 10m"),
		ArchiveBucket:        getEnvOrDefault("COURSE_ARCHIVE_BUCKET", ""),
		ArchivePrefix:        getEnvOrDefault("COURSE_ARCHIVE_PREFIX", "courses/"),
	}

	return config, config.validate()
}

// HasCompletionCredential reports whether the selected provider has a real
// API key. Placeholder values copied from the sample env file count as missing.
// CompletionProviderName is the display name of the configured provider.
func (c *Config) CompletionProviderName() string {
	if c.CompletionProvider == ProviderGemini {
		return "Gemini"
	}
	return "OpenAI"
}

func (c *Config) HasCompletionCredential() bool {
	switch c.CompletionProvider {
	case ProviderGemini:
		return c.GeminiAPIKey != "" && c.GeminiAPIKey != geminiKeyPlaceholder
	default:
		return c.OpenAIAPIKey != "" && c.OpenAIAPIKey != openAIKeyPlaceholder
	}
}

// ArchiveEnabled reports whether generated courses are written to Cloud Storage.
func (c *Config) ArchiveEnabled() bool {
	return c.ArchiveBucket != ""
}

// validate checks if configuration values are usable
func (c *Config) validate() error {
	if c.CompletionProvider != ProviderOpenAI && c.CompletionProvider != ProviderGemini {
		return &ConfigError{Field: "COMPLETION_PROVIDER", Message: "must be openai or gemini"}
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return &ConfigError{Field: "PORT", Message: "must be a number"}
	}
	if c.RateLimitPerMinute < 0 {
		return &ConfigError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must not be negative"}
	}
	if c.SessionTTLMinutes <= 0 {
		return &ConfigError{Field: "SESSION_TTL_MINUTES", Message: "must be positive"}
	}
	if len(c.TranscriptLanguages) == 0 {
		return &ConfigError{Field: "TRANSCRIPT_LANGUAGES", Message: "at least one language is required"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOrDefaultInt returns environment variable value as int or default if not set
func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// parseStringSlice parses comma-separated string into slice
func parseStringSlice(value string) []string {
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Server  ServerConfig
	Gemini  GeminiConfig
	Storage StorageConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host string
	Port string
	Env  string
}

// GeminiConfig is the generation client configuration. It is read once at
// startup and shared read-only by every request.
type GeminiConfig struct {
	APIKey string
	Model  string

	// Timeout bounds a single GenerateContent call. Zero means no deadline
	// beyond the caller's own context.
	Timeout time.Duration

	// MaxAttempts is the total number of generation calls per request.
	// 1 disables retries.
	MaxAttempts int
	RetryDelay  time.Duration
}

type StorageConfig struct {
	MaxFileSize int64
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found. Using environment and default values.")
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("HOST", "0.0.0.0"),
			Port: getEnv("PORT", "8089"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			Timeout:     getEnvAsDuration("GEMINI_TIMEOUT", "60s"),
			MaxAttempts: getEnvAsInt("GEMINI_MAX_ATTEMPTS", 1),
			RetryDelay:  getEnvAsDuration("GEMINI_RETRY_DELAY", "2s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + c.Server.Port
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}

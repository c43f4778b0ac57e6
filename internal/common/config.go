package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	OCR      OCRConfig
	Vision   VisionConfig
	Auth     AuthConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// OCRConfig holds pipeline configuration for expense extraction.
type OCRConfig struct {
	UploadDir       string
	MaxFileSize     int64
	DefaultTimezone string
	MaxDimension    int
	PdftoppmPath    string
	RasterDPI       int

	// Optional watch-folder ingestion. All three must be set to enable it.
	WatchDir     string
	WatchSession string
	WatchUser    string
}

// VisionConfig holds vision-model configuration.
type VisionConfig struct {
	Model   string
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// AuthConfig holds token issuance configuration.
type AuthConfig struct {
	JWTSecret   string
	TokenExpiry time.Duration
}

// LoadConfig reads configuration from the environment with sane defaults.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:             getEnv("DB_URL", ""),
			MaxConns:        int32(getEnvInt("DB_MAX_CONNS", 20)),
			MinConns:        int32(getEnvInt("DB_MIN_CONNS", 5)),
			MaxConnLifetime: getEnvDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime: getEnvDuration("DB_MAX_CONN_IDLE", 5*time.Minute),
			DialTimeout:     getEnvDuration("DB_DIAL_TIMEOUT", 3*time.Second),
		},
		Server: ServerConfig{
			GRPCAddr: ":" + getEnv("PORT", "8080"),
		},
		OCR: OCRConfig{
			UploadDir:       getEnv("OCR_UPLOAD_DIR", "./uploads"),
			MaxFileSize:     int64(getEnvInt("OCR_MAX_FILE_SIZE", 10<<20)),
			DefaultTimezone: getEnv("OCR_DEFAULT_TIMEZONE", "Asia/Ho_Chi_Minh"),
			MaxDimension:    getEnvInt("OCR_MAX_DIMENSION", 2048),
			PdftoppmPath:    getEnv("OCR_PDFTOPPM", "pdftoppm"),
			RasterDPI:       getEnvInt("OCR_DPI", 300),
			WatchDir:        getEnv("OCR_WATCH_DIR", ""),
			WatchSession:    getEnv("OCR_WATCH_SESSION", ""),
			WatchUser:       getEnv("OCR_WATCH_USER", ""),
		},
		Vision: VisionConfig{
			Model:   getEnv("GEMINI_MODEL_NAME", "gemini-2.0-flash"),
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			BaseURL: getEnv("GEMINI_API_BASE_URL", ""),
			Timeout: getEnvDuration("GEMINI_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:   getEnv("JWT_SECRET", ""),
			TokenExpiry: getEnvDuration("JWT_EXPIRY", 24*time.Hour),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

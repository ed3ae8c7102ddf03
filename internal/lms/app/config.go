package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/lms/internal/lms/domain"
)

var ErrNoJWTKey = errors.New("JWT_KEY is required")

type Config struct {
	JWTKey         string // Required: HS256 signing secret
	Issuer         string // Optional: "iss" claim (default: lms)
	LiveStateCheck bool   // Optional: re-read the user on every authenticated request

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./lms.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	UploadMaxBytes    int64  // Per-file upload cap (default: 10 MiB)
	S3Endpoint        string // S3-compatible endpoint; empty means AWS
	S3Region          string // (default: us-east-1)
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicBaseURL   string // Prefix for public object URLs (default: S3Endpoint)
	S3ImageBucket     string // (default: course-images)
	S3PDFBucket       string // (default: course-pdfs)
}

func LoadConfig() Config {
	return Config{
		JWTKey:         os.Getenv("JWT_KEY"),
		Issuer:         getEnvOrDefault("AUTH_ISSUER", "lms"),
		LiveStateCheck: getEnvBoolOrDefault("AUTH_LIVE_STATE_CHECK", false),

		DatabaseFile:        getEnvOrDefault("LMS_DATABASE_FILE", "lms.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		UploadMaxBytes:    int64(getEnvIntOrDefault("UPLOAD_MAX_BYTES", domain.MaxPDFBytes)),
		S3Endpoint:        os.Getenv("S3_ENDPOINT"),
		S3Region:          getEnvOrDefault("S3_REGION", "us-east-1"),
		S3AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3PublicBaseURL:   os.Getenv("S3_PUBLIC_BASE_URL"),
		S3ImageBucket:     getEnvOrDefault("S3_IMAGE_BUCKET", "course-images"),
		S3PDFBucket:       getEnvOrDefault("S3_PDF_BUCKET", "course-pdfs"),
	}
}

// Validate fails closed on a missing signing secret.
func (c Config) Validate() error {
	if c.JWTKey == "" {
		return ErrNoJWTKey
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// "1h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are minutes.
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

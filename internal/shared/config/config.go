package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config holds application configuration.
type Config struct {
	Port              string   `validate:"required,numeric"`
	Env               string   `validate:"oneof=dev staging production local"`
	CORSAllowOrigin   []string `validate:"min=1,dive,required"`
	MaxUploadBytes    int64    `validate:"gt=0"`
	MinTextChars      int      `validate:"gte=0"`
	ScratchStore      string   `validate:"oneof=local s3"`
	ScratchDir        string   `validate:"required_if=ScratchStore local"`
	AWSRegion         string   `validate:"required_if=ScratchStore s3"`
	S3Bucket          string   `validate:"required_if=ScratchStore s3"`
	S3Prefix          string
	SSEKMSKeyID       string
	TaxonomySource    string `validate:"oneof=builtin file postgres"`
	TaxonomyFile      string `validate:"required_if=TaxonomySource file"`
	DatabaseURL       string `validate:"required_if=TaxonomySource postgres"`
	PhoneRegion       string `validate:"oneof=in nanp"`
	HeartbeatEnabled  bool
	HeartbeatInterval time.Duration `validate:"gte=1s"`
	LogLevel          string        `validate:"oneof=debug info warn error"`
}

var validate = validator.New()

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	// Best-effort load of local env files for dev convenience.
	loadEnvFiles(".env", "cmd/.env")
	return FromEnv()
}

// FromEnv builds and validates a Config from the current process environment.
func FromEnv() (Config, error) {
	maxUpload, err := getInt64("MAX_UPLOAD_BYTES", 50<<20)
	if err != nil {
		return Config{}, err
	}
	minText, err := getInt64("MIN_TEXT_CHARS", 50)
	if err != nil {
		return Config{}, err
	}
	interval, err := time.ParseDuration(getEnv("HEARTBEAT_INTERVAL", "4m"))
	if err != nil {
		return Config{}, fmt.Errorf("config: HEARTBEAT_INTERVAL: %w", err)
	}

	cfg := Config{
		Port:              getEnv("PORT", "5000"),
		Env:               normalizeEnv(getEnv("ENV", "dev")),
		CORSAllowOrigin:   splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "*")),
		MaxUploadBytes:    maxUpload,
		MinTextChars:      int(minText),
		ScratchStore:      normalizeStoreType(getEnv("SCRATCH_STORE", "local")),
		ScratchDir:        getEnv("SCRATCH_DIR", filepath.Join(os.TempDir(), "resume-ats")),
		AWSRegion:         getEnv("AWS_REGION", ""),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Prefix:          getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:       getEnv("SSE_KMS_KEY_ID", ""),
		TaxonomySource:    strings.ToLower(strings.TrimSpace(getEnv("TAXONOMY_SOURCE", "builtin"))),
		TaxonomyFile:      getEnv("TAXONOMY_FILE", ""),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		PhoneRegion:       normalizeRegion(getEnv("PHONE_REGION", "in")),
		HeartbeatEnabled:  getBool("HEARTBEAT_ENABLED") || getBool("RENDER"),
		HeartbeatInterval: interval,
		LogLevel:          strings.ToLower(strings.TrimSpace(getEnv("LOG_LEVEL", "info"))),
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// AllowsAnyOrigin reports whether CORS is configured with the wildcard origin.
func (c Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSAllowOrigin {
		if o == "*" {
			return true
		}
	}
	return false
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getInt64(key string, def int64) (int64, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	return err == nil && v
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeRegion(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "nanp", "us", "ca":
		return "nanp"
	case "in", "india", "":
		return "in"
	default:
		return strings.ToLower(strings.TrimSpace(raw))
	}
}

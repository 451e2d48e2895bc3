// Package config reads the admin server settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort = "3001"
	defaultTTL  = 24 * time.Hour
)

type Config struct {
	MongoURI          string
	Database          string
	Port              string
	SessionKey        []byte
	FlashKey          []byte
	CSRFKey           []byte
	SessionTTL        time.Duration
	CookieSecure      bool
	StaticDir         string
	UploadsDir        string
	PrivateUploadsDir string
	VersionFile       string
	Environment       string
	PostmarkToken     string
	EmailSender       string
	LogLevel          slog.Level
}

// Load builds the configuration. Missing keys get development defaults.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:          getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		Database:          getEnv("MONGODB_DATABASE", "foxy_fabrications"),
		Port:              getEnv("ADMIN_PORT", defaultPort),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",
		StaticDir:         getEnv("STATIC_DIR", "./static"),
		UploadsDir:        getEnv("UPLOADS_DIR", "./static/uploads"),
		PrivateUploadsDir: getEnv("PRIVATE_UPLOADS_DIR", "./private_uploads"),
		VersionFile:       getEnv("VERSION_FILE", "version.txt"),
		Environment:       getEnv("ENVIRONMENT", "unknown"),
		PostmarkToken:     getEnv("POSTMARK_API_TOKEN", ""),
		EmailSender:       getEnv("EMAIL_SENDER", "orders@foxyfabrications.co.uk"),
		LogLevel:          parseLevel(getEnv("LOG_LEVEL", "info")),
	}

	cfg.SessionKey = loadKey("SESSION_KEY")
	cfg.FlashKey = loadKey("FLASH_KEY")
	cfg.CSRFKey = loadKey("CSRF_KEY")

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid ADMIN_PORT environment variable. Falling back to default.", "ADMIN_PORT", cfg.Port)
		cfg.Port = defaultPort
	}

	cfg.SessionTTL = defaultTTL
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil || ttl <= 0 {
			slog.Warn("Invalid SESSION_TTL, using default", "SESSION_TTL", raw, "default", defaultTTL)
		} else {
			cfg.SessionTTL = ttl
		}
	}

	return cfg, nil
}

// loadKey decodes a base64 key of at least 32 bytes from the environment,
// or generates a random one that will not survive a restart.
func loadKey(name string) []byte {
	raw := os.Getenv(name)
	if raw == "" {
		slog.Warn(name + " environment variable not set. Generating a random key for development. PLEASE SET " + name + " IN PRODUCTION!")
		return generateRandomBytes(32)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil || len(decoded) < 32 {
		slog.Warn(name + " is invalid or too short (min 32 bytes). Generating a random key for development.")
		return generateRandomBytes(32)
	}
	return decoded
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic("config: reading random bytes: " + err.Error())
	}
	return b
}

package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds process-wide settings. It is loaded once at startup and
// treated as read-only afterwards; nothing re-reads the environment during
// request handling.
type Config struct {
	HTTPAddr        string
	DatabaseDSN     string
	JWTKey          string
	JWTIssuer       string
	JWTExpireDays   int
	MaxRequestBytes int64
}

func Load() Config {
	cfg := Config{
		HTTPAddr:        getEnv("COLORS_HTTP_ADDR", ":8080"),
		DatabaseDSN:     getEnv("COLORS_DB_DSN", "file:colors.db?cache=shared&mode=rwc"),
		JWTKey:          getEnv("COLORS_JWT_KEY", "dev-secret-change"),
		JWTIssuer:       getEnv("COLORS_JWT_ISSUER", "colorsrest"),
		JWTExpireDays:   getEnvInt("COLORS_JWT_EXPIRE_DAYS", 30),
		MaxRequestBytes: int64(getEnvInt("COLORS_MAX_REQUEST_BYTES", 1<<20)),
	}
	if cfg.JWTKey == "dev-secret-change" {
		log.Println("WARNING: using development JWT key; set COLORS_JWT_KEY")
	}
	return cfg
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

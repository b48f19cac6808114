package config

import (
	"os"
	"strings"
)

type Config struct {
	ServerPort     string
	AllowedOrigins []string
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "3001"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func splitList(val string) []string {
	parts := strings.Split(val, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

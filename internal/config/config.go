package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ProjectID   string
	Region      string
	LogLevel    string
	VertexModel string

	// Assistant pipeline knobs. Defaults match production quota.
	AIMaxTokens       int32
	AITemperature     float32
	AIMaxRetries      int
	AIRateLimitCalls  int
	AIRateLimitWindow time.Duration
}

func New() *Config {
	return &Config{
		ProjectID:         os.Getenv("PROJECTID"),
		Region:            os.Getenv("REGION"),
		LogLevel:          os.Getenv("LOGLEVEL"),
		VertexModel:       os.Getenv("VERTEXMODEL"),
		AIMaxTokens:       int32(getInt("AIMAXTOKENS", 2000)),
		AITemperature:     getFloat("AITEMPERATURE", 0.7),
		AIMaxRetries:      getInt("AIMAXRETRIES", 3),
		AIRateLimitCalls:  getInt("AIRATELIMITCALLS", 50),
		AIRateLimitWindow: time.Duration(getInt("AIRATELIMITWINDOWSECONDS", 60)) * time.Second,
	}
}

func getInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func getFloat(key string, fallback float32) float32 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return fallback
	}
	return float32(v)
}

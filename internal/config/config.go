package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env              string
	ListenAddr       string
	PipelineTimeout  time.Duration
	MaxDraftAttempts int
	HistoryDBPath    string
	Debug            bool
}

func Load() Config {
	return Config{
		Env:              getenv("APP_ENV", "development"),
		ListenAddr:       getenv("LISTEN_ADDR", ":8080"),
		PipelineTimeout:  getenvDuration("PIPELINE_TIMEOUT", 5*time.Second),
		MaxDraftAttempts: getenvInt("MAX_DRAFT_ATTEMPTS", 3),
		HistoryDBPath:    os.Getenv("HISTORY_DB_PATH"),
		Debug:            getenvBool("DEBUG", false),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.Atoi(v); err == nil {
			return out
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if out, err := strconv.ParseBool(v); err == nil {
			return out
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if out, err := time.ParseDuration(v); err == nil {
			return out
		}
	}
	return def
}

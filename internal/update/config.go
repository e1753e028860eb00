package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath           string
	LogPath          string
	QuoteIntervalSec int
	RotationBuffer   int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:           "",
		LogPath:          "",
		QuoteIntervalSec: 10,
		RotationBuffer:   8,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("HABITD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("HABITD_LOG_PATH"); ok {
		cfg.LogPath = v
	}
	if v, ok := getEnvInt("HABITD_QUOTE_INTERVAL_SECONDS"); ok && v > 0 {
		cfg.QuoteIntervalSec = v
	}
	if v, ok := getEnvInt("HABITD_ROTATION_BUFFER"); ok && v > 0 {
		cfg.RotationBuffer = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

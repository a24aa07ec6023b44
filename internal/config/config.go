package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/shoplist/internal/logging"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type RuntimeConfig struct {
	Backend          string
	IDScheme         string
	SeedFile         string
	LogFile          string
	LogLevel         string
	TrimInput        bool
	RejectBlankNames bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:          BackendMemory,
		IDScheme:         "uuid",
		LogLevel:         "info",
		TrimInput:        true,
		RejectBlankNames: true,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("SHOPLIST_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("SHOPLIST_IDS"); ok {
		cfg.IDScheme = strings.ToLower(v)
	}
	if v, ok := getEnvString("SHOPLIST_SEED_FILE"); ok {
		cfg.SeedFile = v
	}
	if v, ok := getEnvString("SHOPLIST_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvString("SHOPLIST_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvBool("SHOPLIST_TRIM_INPUT"); ok {
		cfg.TrimInput = v
	}
	if v, ok := getEnvBool("SHOPLIST_REJECT_BLANK_NAMES"); ok {
		cfg.RejectBlankNames = v
	}
	return cfg
}

func Validate(cfg RuntimeConfig) error {
	switch cfg.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown backend %q", cfg.Backend)
	}
	switch cfg.IDScheme {
	case "uuid", "seq":
	default:
		return fmt.Errorf("config: unknown id scheme %q", cfg.IDScheme)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

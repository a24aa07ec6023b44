package config

import "testing"

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.Backend != BackendMemory || cfg.IDScheme != "uuid" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.TrimInput || !cfg.RejectBlankNames {
		t.Fatalf("expected input normalization on by default: %+v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("SHOPLIST_BACKEND", "SQLite")
	t.Setenv("SHOPLIST_IDS", "seq")
	t.Setenv("SHOPLIST_SEED_FILE", "lists/weekly.yaml")
	t.Setenv("SHOPLIST_LOG_FILE", "logs/shoplist.log")
	t.Setenv("SHOPLIST_LOG_LEVEL", "DEBUG")
	t.Setenv("SHOPLIST_TRIM_INPUT", "off")
	t.Setenv("SHOPLIST_REJECT_BLANK_NAMES", "no")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.Backend != BackendSQLite || cfg.IDScheme != "seq" {
		t.Fatalf("unexpected backend config: %+v", cfg)
	}
	if cfg.SeedFile != "lists/weekly.yaml" || cfg.LogFile != "logs/shoplist.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected file config: %+v", cfg)
	}
	if cfg.TrimInput || cfg.RejectBlankNames {
		t.Fatalf("expected input policy overrides: %+v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("env config must validate: %v", err)
	}
}

func TestRuntimeConfigIgnoresBadBools(t *testing.T) {
	t.Setenv("SHOPLIST_TRIM_INPUT", "maybe")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if !cfg.TrimInput {
		t.Fatal("unparseable bool must keep the base value")
	}
}

func TestValidateRejectsUnknownValues(t *testing.T) {
	for _, mutate := range []func(*RuntimeConfig){
		func(c *RuntimeConfig) { c.Backend = "bolt" },
		func(c *RuntimeConfig) { c.IDScheme = "cuid" },
		func(c *RuntimeConfig) { c.LogLevel = "trace" },
	} {
		cfg := DefaultRuntimeConfig()
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("expected validation error for %+v", cfg)
		}
	}
}

func TestValidateAcceptsLoggerLevelAliases(t *testing.T) {
	for _, level := range []string{"warning", "WARN", "", "error"} {
		cfg := DefaultRuntimeConfig()
		cfg.LogLevel = level
		if err := Validate(cfg); err != nil {
			t.Fatalf("level %q must validate: %v", level, err)
		}
	}
}

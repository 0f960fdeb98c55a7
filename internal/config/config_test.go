package config

import (
	"testing"
	"time"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is unset")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/triage")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("Port = %q, want 8000", cfg.Port)
	}
	if cfg.Env != "development" || !cfg.IsDev() {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.DBMaxConns != 20 || cfg.DBMinConns != 5 {
		t.Errorf("pool sizes = %d/%d, want 20/5", cfg.DBMaxConns, cfg.DBMinConns)
	}
	if cfg.ClassifierTimeout != 5*time.Second {
		t.Errorf("ClassifierTimeout = %v, want 5s", cfg.ClassifierTimeout)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://db:5432/triage")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CLASSIFIER_URL", "http://classifier:5000")
	t.Setenv("CLASSIFIER_TIMEOUT", "2s")
	t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("production env reported as development")
	}
	if cfg.ClassifierURL != "http://classifier:5000" {
		t.Errorf("ClassifierURL = %q", cfg.ClassifierURL)
	}
	if cfg.ClassifierTimeout != 2*time.Second {
		t.Errorf("ClassifierTimeout = %v, want 2s", cfg.ClassifierTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[0] != "https://a.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	base := Config{Env: "production", JWTSecret: "s", ClassifierTimeout: time.Second}

	if err := base.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	noSecret := base
	noSecret.JWTSecret = ""
	if err := noSecret.Validate(); err == nil {
		t.Error("production without JWT_SECRET must fail validation")
	}

	devNoSecret := noSecret
	devNoSecret.Env = "development"
	if err := devNoSecret.Validate(); err != nil {
		t.Errorf("development without JWT_SECRET rejected: %v", err)
	}

	badTimeout := base
	badTimeout.ClassifierTimeout = 0
	if err := badTimeout.Validate(); err == nil {
		t.Error("zero classifier timeout must fail validation")
	}
}

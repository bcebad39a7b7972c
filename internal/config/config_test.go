package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/store",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("expected default address, got %q", cfg.RunAddress)
	}
	if cfg.JWTSecret != defaultJWTSecret {
		t.Fatalf("expected default secret, got %q", cfg.JWTSecret)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("expected default ttl, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 0 {
		t.Fatalf("expected zero bcrypt cost, got %d", cfg.BcryptCost)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	cfg, err := load(nil, lookupFrom(map[string]string{
		"RUN_ADDRESS":      ":9090",
		"DATABASE_URI":     "postgres://localhost/store",
		"JWT_SECRET":       "env-secret",
		"TOKEN_TTL":        "2h",
		"BCRYPT_COST":      "12",
		"SHUTDOWN_TIMEOUT": "30s",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":9090" || cfg.JWTSecret != "env-secret" {
		t.Fatalf("env values lost: %+v", cfg)
	}
	if cfg.TokenTTL != 2*time.Hour || cfg.ShutdownTimeout != 30*time.Second {
		t.Fatalf("durations lost: %+v", cfg)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("bcrypt cost lost: %d", cfg.BcryptCost)
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-d", "postgres://flag/store",
		"-jwt-secret", "flag-secret",
		"-token-ttl", "15m",
		"-bcrypt-cost", "8",
		"-shutdown-timeout", "5s",
	}
	cfg, err := load(args, lookupFrom(map[string]string{
		"RUN_ADDRESS":  ":9090",
		"DATABASE_URI": "postgres://env/store",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7070" || cfg.DatabaseURI != "postgres://flag/store" {
		t.Fatalf("flags must win over env: %+v", cfg)
	}
	if cfg.JWTSecret != "flag-secret" || cfg.TokenTTL != 15*time.Minute {
		t.Fatalf("flag values lost: %+v", cfg)
	}
	if cfg.BcryptCost != 8 || cfg.ShutdownTimeout != 5*time.Second {
		t.Fatalf("flag values lost: %+v", cfg)
	}
}

func TestLoadSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(path, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://localhost/store",
		"JWT_SECRET":      "env-secret",
		"JWT_SECRET_FILE": path,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.JWTSecret != "file-secret" {
		t.Fatalf("secret file must win, got %q", cfg.JWTSecret)
	}

	if _, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI":    "postgres://localhost/store",
		"JWT_SECRET_FILE": filepath.Join(t.TempDir(), "missing"),
	})); err == nil {
		t.Fatal("expected error for unreadable secret file")
	}
}

func TestLoadValidation(t *testing.T) {
	if _, err := load(nil, lookupFrom(nil)); err == nil {
		t.Fatal("expected error without database uri")
	}

	if _, err := load([]string{"-token-ttl", "nope"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/store",
	})); err == nil {
		t.Fatal("expected error for bad ttl")
	}

	if _, err := load([]string{"-unknown"}, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/store",
	})); err == nil {
		t.Fatal("expected error for unknown flag")
	}

	cfg, err := load(nil, lookupFrom(map[string]string{
		"DATABASE_URI": "postgres://localhost/store",
		"TOKEN_TTL":    "-1h",
		"BCRYPT_COST":  "-4",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TokenTTL != defaultTokenTTL {
		t.Fatalf("non-positive ttl must fall back, got %v", cfg.TokenTTL)
	}
	if cfg.BcryptCost != 0 {
		t.Fatalf("negative cost must reset, got %d", cfg.BcryptCost)
	}
}

package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://localhost:27017/blog_test")
	os.Setenv("MONGODB_DATABASE", "blog_test")
	os.Setenv("SERVER_PORT", "5099")
	defer func() {
		os.Unsetenv("MONGODB_URI")
		os.Unsetenv("MONGODB_DATABASE")
		os.Unsetenv("SERVER_PORT")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MongoDB.URI != "mongodb://localhost:27017/blog_test" {
		t.Fatalf("unexpected mongo URI: %q", cfg.MongoDB.URI)
	}
	if cfg.MongoDB.Database != "blog_test" {
		t.Fatalf("unexpected mongo database: %q", cfg.MongoDB.Database)
	}
	if cfg.Server.Port != "5099" {
		t.Fatalf("unexpected server port: %q", cfg.Server.Port)
	}
	if cfg.MongoDB.Timeout <= 0 {
		t.Fatalf("mongo timeout should default to a positive value, got %v", cfg.MongoDB.Timeout)
	}
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("RATE_LIMIT_ENABLED")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Fatal("server port default missing")
	}
	if cfg.RateLimit.Enabled {
		t.Fatal("rate limiter should be disabled by default")
	}
	if cfg.RateLimit.RPS <= 0 || cfg.RateLimit.Burst <= 0 {
		t.Fatalf("rate limit defaults not applied: %+v", cfg.RateLimit)
	}
}

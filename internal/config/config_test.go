package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 8000 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Storage.Backend != "local" {
		t.Errorf("storage backend = %q, want local", cfg.Storage.Backend)
	}
	if cfg.Memstore.Backend != "memory" {
		t.Errorf("memstore backend = %q, want memory", cfg.Memstore.Backend)
	}
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[server]
port = 9090
debug = true
allowed_origins = ["https://app.example.com"]

[storage]
backend = "s3"
s3_bucket = "my-bucket"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 || !cfg.Server.Debug {
		t.Errorf("server = %+v", cfg.Server)
	}
	if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "https://app.example.com" {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Storage.Backend != "s3" || cfg.Storage.S3Bucket != "my-bucket" {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	// Untouched sections keep defaults.
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("host = %q", cfg.Server.Host)
	}
	if cfg.Storage.S3Region != "ap-southeast-1" {
		t.Errorf("region = %q", cfg.Storage.S3Region)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[server]\nport = 9090\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("PORT", "7777")
	t.Setenv("STORAGE_BACKEND", "gcs")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7777 {
		t.Errorf("port = %d, want 7777", cfg.Server.Port)
	}
	if cfg.Storage.Backend != "gcs" {
		t.Errorf("backend = %q, want gcs", cfg.Storage.Backend)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[0] != want[0] || cfg.Server.AllowedOrigins[1] != want[1] {
		t.Errorf("origins = %v", cfg.Server.AllowedOrigins)
	}
}

func TestMissingExplicitFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestInvalidEnvValuesIgnored(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("DEBUG", "maybe")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8000 || cfg.Server.Debug {
		t.Errorf("server = %+v", cfg.Server)
	}
}

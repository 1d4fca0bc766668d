// Package config loads server configuration from a TOML file with
// environment variable overrides. A .env file in the working directory is
// loaded first so local development can keep secrets out of the shell.
//
// Precedence, lowest to highest: built-in defaults, the TOML file,
// environment variables.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/truemindlabs-dev/synora/pkg/errors"
)

// Config is the full server configuration.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Auth     AuthConfig     `toml:"auth"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Memstore MemstoreConfig `toml:"memstore"`
	Cache    CacheConfig    `toml:"cache"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	Debug          bool     `toml:"debug"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// AuthConfig controls request authentication.
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// StorageConfig selects the artifact backend.
type StorageConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	BaseURL string `toml:"base_url"`

	S3Bucket    string `toml:"s3_bucket"`
	S3Region    string `toml:"s3_region"`
	S3AccessKey string `toml:"s3_access_key"`
	S3SecretKey string `toml:"s3_secret_key"`

	GCSBucket          string `toml:"gcs_bucket"`
	GCSCredentialsFile string `toml:"gcs_credentials_file"`
}

// DatabaseConfig locates the SQLite history database.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// MemstoreConfig selects the key/value store backend.
type MemstoreConfig struct {
	Backend  string `toml:"backend"`
	RedisURL string `toml:"redis_url"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
	RedisURL string `toml:"redis_url"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:           "0.0.0.0",
			Port:           8000,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Auth: AuthConfig{
			JWTSecret: "default-secret-change-in-production",
		},
		Storage: StorageConfig{
			Backend:  "local",
			Dir:      "./storage/images",
			BaseURL:  "http://localhost:8000/api/image",
			S3Region: "ap-southeast-1",
		},
		Database: DatabaseConfig{Path: "./synora.db"},
		Memstore: MemstoreConfig{Backend: "memory"},
		Cache:    CacheConfig{Backend: "none", Dir: "./storage/cache"},
	}
}

// Load builds the configuration. path may be empty, in which case only
// defaults and the environment apply. A missing file at an explicit path
// is an error; env overrides always run last.
func Load(path string) (Config, error) {
	// Best effort; absence of a .env file is the normal case.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %q failed", path)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv copies recognized environment variables over the loaded
// values. Empty variables are ignored.
func applyEnv(cfg *Config) {
	setString(&cfg.Server.Host, "HOST")
	setInt(&cfg.Server.Port, "PORT")
	setBool(&cfg.Server.Debug, "DEBUG")
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.Server.AllowedOrigins = origins
	}

	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")

	setString(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setString(&cfg.Storage.Dir, "STORAGE_DIR")
	setString(&cfg.Storage.BaseURL, "BASE_IMAGE_URL")
	setString(&cfg.Storage.S3Bucket, "AWS_BUCKET")
	setString(&cfg.Storage.S3Region, "AWS_REGION")
	setString(&cfg.Storage.S3AccessKey, "AWS_ACCESS_KEY")
	setString(&cfg.Storage.S3SecretKey, "AWS_SECRET_KEY")
	setString(&cfg.Storage.GCSBucket, "GCS_BUCKET")
	setString(&cfg.Storage.GCSCredentialsFile, "GCS_CREDENTIALS_FILE")

	setString(&cfg.Database.Path, "DATABASE_PATH")

	setString(&cfg.Memstore.Backend, "MEMSTORE_BACKEND")
	setString(&cfg.Memstore.RedisURL, "MEMSTORE_REDIS_URL")

	setString(&cfg.Cache.Backend, "CACHE_BACKEND")
	setString(&cfg.Cache.Dir, "CACHE_DIR")
	setString(&cfg.Cache.RedisURL, "CACHE_REDIS_URL")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

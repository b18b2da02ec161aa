// file: radixmap/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Config holds the runtime settings for the radixmap lookup service: the
// dataset to build the map from, where to serve it, and how to persist it
// for rebuilds.
type Config struct {
	ServiceName string `json:"service_name"`
	LogLevel    string `json:"log_level"`
	DevMode     bool   `json:"dev_mode"`

	// DatasetPath names the source dataset file. Validate requires it; the
	// serve command builds its map from the store (DB), not from this file.
	DatasetPath string `json:"dataset_path"`

	HTTPAddr string `json:"http_addr"`
	BusAddr  string `json:"bus_addr"`

	DB DBSettings `json:"db"`

	JWTSecret string `json:"jwt_secret"`

	// QueryOnlyExistingKeys opts into radix.WithAssumeExistingKeys: every
	// lookup skips the range check and final byte comparison, trusting
	// that callers only ever query keys known to be in the map.
	QueryOnlyExistingKeys bool `json:"query_only_existing_keys"`
}

// DBSettings configures the store package's persistence of the source
// dataset (not the flat dispatch buffer, which is always rebuilt in memory).
type DBSettings struct {
	Driver string `json:"driver"` // "sqlite" or "postgres"
	DSN    string `json:"dsn"`
}

// Default returns a config suitable for local development.
func Default() *Config {
	return &Config{
		ServiceName: "radixmap",
		LogLevel:    "info",
		DevMode:     false,
		DatasetPath: "dataset.json",
		HTTPAddr:    "127.0.0.1:8080",
		BusAddr:     "127.0.0.1:4222",
		DB: DBSettings{
			Driver: "sqlite",
			DSN:    "radixmap.db",
		},
		QueryOnlyExistingKeys: false,
	}
}

// Load reads config from a JSON file, expanding ${ENV_VAR} references first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	data = ReplaceEnvVars(data)

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config json: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv builds a config by overlaying environment variables with the
// given prefix onto the defaults.
func LoadFromEnv(prefix string) *Config {
	cfg := Default()

	cfg.ServiceName = GetEnvStr(prefix+"SERVICE_NAME", cfg.ServiceName)
	cfg.LogLevel = GetEnvStr(prefix+"LOG_LEVEL", cfg.LogLevel)
	cfg.DevMode = GetEnvBool(prefix+"DEV_MODE", cfg.DevMode)
	cfg.DatasetPath = GetEnvStr(prefix+"DATASET_PATH", cfg.DatasetPath)
	cfg.HTTPAddr = GetEnvStr(prefix+"HTTP_ADDR", cfg.HTTPAddr)
	cfg.BusAddr = GetEnvStr(prefix+"BUS_ADDR", cfg.BusAddr)
	cfg.DB.Driver = GetEnvStr(prefix+"DB_DRIVER", cfg.DB.Driver)
	cfg.DB.DSN = GetEnvStr(prefix+"DB_DSN", cfg.DB.DSN)
	cfg.JWTSecret = GetEnvStr(prefix+"JWT_SECRET", cfg.JWTSecret)
	cfg.QueryOnlyExistingKeys = GetEnvBool(prefix+"QUERY_ONLY_EXISTING_KEYS", cfg.QueryOnlyExistingKeys)

	return cfg
}

// LoadWithFallback loads from RADIXMAP_CONFIG if set, else from environment.
func LoadWithFallback() *Config {
	if path := os.Getenv("RADIXMAP_CONFIG"); path != "" {
		if cfg, err := Load(path); err == nil {
			return cfg
		}
	}
	return LoadFromEnv("RADIXMAP_")
}

// MustLoadFromEnv panics if the resolved config is invalid.
func MustLoadFromEnv() *Config {
	cfg := LoadWithFallback()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}

// Validate checks that required fields are present and well formed.
func (cfg *Config) Validate() error {
	var missing []string
	if cfg.ServiceName == "" {
		missing = append(missing, "service_name")
	}
	if cfg.DatasetPath == "" {
		missing = append(missing, "dataset_path")
	}
	if cfg.DB.Driver != "sqlite" && cfg.DB.Driver != "postgres" {
		missing = append(missing, fmt.Sprintf("db.driver(%s)", cfg.DB.Driver))
	}
	if cfg.DB.DSN == "" {
		missing = append(missing, "db.dsn")
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(missing, ", "))
	}
	return nil
}

func (cfg *Config) String() string {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return string(data)
}

func (cfg *Config) Dump(w io.Writer) {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	_, _ = w.Write(data)
}

// ReplaceEnvVars expands ${ENV_VAR} references in raw JSON bytes.
func ReplaceEnvVars(data []byte) []byte {
	return []byte(os.Expand(string(data), os.Getenv))
}

// GetEnvStr returns the string env var named key, or fallback if unset.
func GetEnvStr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetEnvInt returns the int env var named key, or fallback if unset or
// unparseable.
func GetEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

// GetEnvBool returns the bool env var named key. Accepts 1/true/yes and
// 0/false/no (case-insensitive); anything else falls back.
func GetEnvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return fallback
}

// GetEnvFloat returns the float64 env var named key, or fallback if unset
// or unparseable.
func GetEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

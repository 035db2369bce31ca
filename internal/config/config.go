package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const appName = "mapty"

type Config struct {
	Storage StorageConfig `toml:"storage"`
	Map     MapConfig     `toml:"map"`
	Geo     GeoConfig     `toml:"geolocation"`
	Log     LogConfig     `toml:"log"`
}

type StorageConfig struct {
	Backend     string `toml:"backend"`      // memory, file, sqlite, libsql, redis or disabled.
	URL         string `toml:"url"`          // DB connection string or redis address.
	Dir         string `toml:"dir"`          // Directory used by the file backend.
	Key         string `toml:"key"`          // Key the workouts are stored under.
	KeyPrefix   string `toml:"key_prefix"`   // Namespace for redis keys.
	MemoryBytes int    `toml:"memory_bytes"` // Capacity of the memory backend.
}

type MapConfig struct {
	ZoomLevel int          `toml:"zoom_level"`
	Home      *Coordinates `toml:"home"` // Used when geolocation fails.
}

type Coordinates struct {
	Lat float64 `toml:"lat"`
	Lng float64 `toml:"lng"`
}

type GeoConfig struct {
	Provider    string        `toml:"provider"` // ipinfo or static.
	IPInfoToken string        `toml:"ipinfo_token"`
	Timeout     time.Duration `toml:"timeout"`
}

type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // Rotated log file, empty logs to stderr only.
	JSON  bool   `toml:"json"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	dir, _ := ConfigDir()
	return &Config{
		Storage: StorageConfig{
			Backend:     "file",
			Dir:         dir,
			Key:         "workouts",
			KeyPrefix:   appName + ":",
			MemoryBytes: 64 * 1024 * 1024,
		},
		Map: MapConfig{
			ZoomLevel: 13,
		},
		Geo: GeoConfig{
			Provider: "ipinfo",
			Timeout:  5 * time.Second,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Returns the directory holding the config file, pending state and file storage.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Reads the configuration from the config file, then applies .env and environment overrides.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file yields the defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	// A .env file is optional.
	_ = godotenv.Load()
	applyEnv(cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Storage.Backend = getEnv("MAPTY_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.URL = getEnv("MAPTY_STORAGE_URL", cfg.Storage.URL)
	cfg.Storage.Dir = getEnv("MAPTY_STORAGE_DIR", cfg.Storage.Dir)
	cfg.Storage.MemoryBytes = getIntEnv("MAPTY_MEMORY_BYTES", cfg.Storage.MemoryBytes)
	cfg.Geo.Provider = getEnv("MAPTY_GEO_PROVIDER", cfg.Geo.Provider)
	cfg.Geo.IPInfoToken = getEnv("IPINFO_TOKEN", cfg.Geo.IPInfoToken)
	cfg.Log.Level = getEnv("MAPTY_LOG_LEVEL", cfg.Log.Level)
	cfg.Log.File = getEnv("MAPTY_LOG_FILE", cfg.Log.File)

	if url := os.Getenv("TURSO_DATABASE_URL"); url != "" && cfg.Storage.Backend == "libsql" && cfg.Storage.URL == "" {
		cfg.Storage.URL = url
	}

	// Check for a DEV_MODE environment variable.
	if os.Getenv("DEV_MODE") == "true" {
		cfg.Storage.Backend = "sqlite"
		cfg.Storage.URL = "file:./local.db?cache=shared&mode=rwc"
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/dshills/primus/internal/prime"
)

// Config represents the primus configuration.
type Config struct {
	CacheSize uint64        `json:"cacheSize"`
	Format    string        `json:"format"`
	History   HistoryConfig `json:"history"`
	Serve     ServeConfig   `json:"serve"`
}

// HistoryConfig controls the query history ledger.
type HistoryConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
}

// ServeConfig controls the HTTP API server.
type ServeConfig struct {
	Addr   string `json:"addr"`
	APIKey string `json:"apiKey,omitempty"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		CacheSize: prime.DefaultCacheSize,
		Format:    "text",
		History: HistoryConfig{
			Enabled: false,
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
	}
}

// ConfigDir returns the platform-appropriate config directory for primus.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "primus"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "primus"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "primus"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "primus"), nil
	default:
		return filepath.Join(home, ".config", "primus"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DataDir returns the platform-appropriate data directory for primus,
// used for the default history database location.
func DataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "primus"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "primus"), nil
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, "primus"), nil
		}
		return filepath.Join(home, "AppData", "Local", "primus"), nil
	default:
		return filepath.Join(home, ".local", "share", "primus"), nil
	}
}

// HistoryPath returns the effective history database path: the configured
// path when set, otherwise history.db under the data directory.
func (c Config) HistoryPath() (string, error) {
	if c.History.Path != "" {
		return c.History.Path, nil
	}
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.CacheSize > 0 {
		dst.CacheSize = src.CacheSize
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	// Bool fields from file: JSON's zero value for bool is false, so an
	// unset field cannot be told apart from an explicit false. A file can
	// only enable history, never disable it below the defaults.
	dst.History.Enabled = src.History.Enabled || dst.History.Enabled
	if src.History.Path != "" {
		dst.History.Path = src.History.Path
	}
	if src.Serve.Addr != "" {
		dst.Serve.Addr = src.Serve.Addr
	}
	if src.Serve.APIKey != "" {
		dst.Serve.APIKey = src.Serve.APIKey
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PRIMUS_CACHE_SIZE"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.CacheSize = n
		}
	}
	if v := os.Getenv("PRIMUS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PRIMUS_HISTORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.History.Enabled = b
		}
	}
	if v := os.Getenv("PRIMUS_HISTORY_PATH"); v != "" {
		cfg.History.Path = v
	}
	if v := os.Getenv("PRIMUS_ADDR"); v != "" {
		cfg.Serve.Addr = v
	}
	if v := os.Getenv("PRIMUS_API_KEY"); v != "" {
		cfg.Serve.APIKey = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for k, v := range overrides {
		if err := SetField(cfg, k, v); err != nil {
			return err
		}
	}
	return nil
}

// SetField sets a single configuration field by its JSON-style key. Used
// by flag overrides and by "primus config set".
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "cacheSize":
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid cacheSize %q: %w", value, err)
		}
		cfg.CacheSize = n
	case "format":
		if value != "text" && value != "json" {
			return fmt.Errorf("invalid format %q (want text or json)", value)
		}
		cfg.Format = value
	case "history.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid history.enabled %q: %w", value, err)
		}
		cfg.History.Enabled = b
	case "history.path":
		cfg.History.Path = value
	case "serve.addr":
		cfg.Serve.Addr = value
	case "serve.apiKey":
		cfg.Serve.APIKey = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

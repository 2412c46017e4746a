package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/storefront/internal/kv"
	"github.com/five82/storefront/internal/listing"
)

// Config captures everything the storefront reads at startup.
type Config struct {
	Catalog        string // URL, host:port or file path
	StatePath      string
	LogPath        string
	LogLevel       slog.Level
	PageSize       int
	Currency       string
	RequestTimeout time.Duration // zero means no timeout
}

const (
	defaultConfigPath = "~/.config/storefront/config.toml"
	defaultCatalog    = "http://127.0.0.1:8080"
	defaultLogPath    = "~/.local/state/storefront/storefront.log"
	defaultCurrency   = "₹"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Catalog:   defaultCatalog,
		StatePath: mustExpand(kv.DefaultPath()),
		LogPath:   mustExpand(defaultLogPath),
		LogLevel:  slog.LevelInfo,
		PageSize:  listing.DefaultPageSize,
		Currency:  defaultCurrency,
	}
}

// Load locates and parses the storefront config, falling back to defaults
// when the file is missing. Blank or non-positive values also fall back.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Catalog        string `toml:"catalog"`
		StatePath      string `toml:"state_path"`
		LogPath        string `toml:"log_path"`
		LogLevel       string `toml:"log_level"`
		PageSize       int    `toml:"page_size"`
		Currency       string `toml:"currency"`
		RequestTimeout string `toml:"request_timeout"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.Catalog); v != "" {
		cfg.Catalog = v
	}
	if v := strings.TrimSpace(raw.StatePath); v != "" {
		cfg.StatePath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogPath); v != "" {
		cfg.LogPath = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if v := strings.TrimSpace(raw.Currency); v != "" {
		cfg.Currency = v
	}
	if v := strings.TrimSpace(raw.RequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse request_timeout: %w", err)
		}
		if d > 0 {
			cfg.RequestTimeout = d
		}
	}

	return cfg, nil
}

// Override holds command-line values that take precedence over the file.
type Override struct {
	Catalog   string
	StatePath string
}

// Apply returns c with the non-blank override values applied.
func (c Config) Apply(o Override) Config {
	if v := strings.TrimSpace(o.Catalog); v != "" {
		c.Catalog = v
	}
	if v := strings.TrimSpace(o.StatePath); v != "" {
		c.StatePath = mustExpand(v)
	}
	return c
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return kv.ExpandPath(defaultConfigPath)
	}
	return kv.ExpandPath(path)
}

func mustExpand(path string) string {
	expanded, err := kv.ExpandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

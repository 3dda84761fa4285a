// Package config loads the server configuration from a JSON file and the
// environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ironsheep/bitmap-tools-mcp/internal/imaging"
	"github.com/ironsheep/bitmap-tools-mcp/internal/screen"
)

// Environment variables that override the file configuration.
const (
	EnvConfigPath = "BITMAP_MCP_CONFIG"
	EnvLogLevel   = "BITMAP_MCP_LOG_LEVEL"
	EnvDensityDPI = "BITMAP_MCP_DENSITY"
)

// Config holds the application configuration
type Config struct {
	LogLevel string        `json:"log_level"`
	Display  DisplayConfig `json:"display"`
	Decode   DecodeConfig  `json:"decode"`
}

// DisplayConfig describes the screen used for dp/px conversion
type DisplayConfig struct {
	WidthPixels  int `json:"width_pixels"`
	HeightPixels int `json:"height_pixels"`
	DensityDPI   int `json:"density_dpi"`
}

// DecodeConfig holds defaults for sampled decoding
type DecodeConfig struct {
	PixelFormat  string `json:"pixel_format"`
	Filter       string `json:"filter"`
	CacheBitmaps bool   `json:"cache_bitmaps"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Display: DisplayConfig{
			WidthPixels:  1080,
			HeightPixels: 1920,
			DensityDPI:   480,
		},
		Decode: DecodeConfig{
			PixelFormat:  string(imaging.ARGB8888),
			Filter:       "box",
			CacheBitmaps: true,
		},
	}
}

// LoadFromFile loads configuration from a JSON file. Fields missing from the
// file keep their default values.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// Load builds the effective configuration: defaults, then the file named by
// path, then environment overrides. An empty path falls back to
// BITMAP_MCP_CONFIG and then to GetConfigPath if that file exists. The
// result is validated.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		if _, err := os.Stat(GetConfigPath()); err == nil {
			path = GetConfigPath()
		}
	}

	config := Default()
	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) applyEnv() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
	if dpi := os.Getenv(EnvDensityDPI); dpi != "" {
		n, err := strconv.Atoi(dpi)
		if err != nil {
			return fmt.Errorf("%s must be an integer: %w", EnvDensityDPI, err)
		}
		c.Display.DensityDPI = n
	}
	return nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info":
	default:
		return fmt.Errorf("log_level must be debug or info, got %q", c.LogLevel)
	}

	if c.Display.DensityDPI <= 0 {
		return fmt.Errorf("display.density_dpi must be positive")
	}

	if c.Display.WidthPixels < 0 || c.Display.HeightPixels < 0 {
		return fmt.Errorf("display size cannot be negative")
	}

	if _, err := imaging.ParsePixelFormat(c.Decode.PixelFormat); err != nil {
		return fmt.Errorf("decode.pixel_format: %w", err)
	}

	known := false
	for _, name := range imaging.FilterNames() {
		if strings.EqualFold(name, c.Decode.Filter) {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("decode.filter must be one of %s", strings.Join(imaging.FilterNames(), ", "))
	}

	return nil
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool {
	return strings.EqualFold(c.LogLevel, "debug")
}

// Metrics returns the display metrics described by the configuration.
func (c *Config) Metrics() *screen.DisplayMetrics {
	m, err := screen.MetricsForDPI(c.Display.WidthPixels, c.Display.HeightPixels, c.Display.DensityDPI)
	if err != nil {
		// Validate rejects non-positive dpi; fall back to the baseline.
		m, _ = screen.MetricsForDPI(c.Display.WidthPixels, c.Display.HeightPixels, screen.BaselineDPI)
	}
	return m
}

// DecodeOptions converts the decode defaults into imaging options.
func (c *Config) DecodeOptions() []imaging.DecodeOption {
	pf, err := imaging.ParsePixelFormat(c.Decode.PixelFormat)
	if err != nil {
		pf = imaging.ARGB8888
	}
	return []imaging.DecodeOption{
		imaging.WithPixelFormat(pf),
		imaging.WithFilter(c.Decode.Filter),
	}
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "bitmap-tools-mcp", "config.json")
}

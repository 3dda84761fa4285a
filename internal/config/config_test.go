package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/bitmap-tools-mcp/internal/imaging"
)

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if c.Debug() {
		t.Error("default log level should not be debug")
	}
	if m := c.Metrics(); m.Density != 3.0 {
		t.Errorf("default density: got %v, want 3", m.Density)
	}
	if len(c.DecodeOptions()) != 2 {
		t.Error("DecodeOptions should carry pixel format and filter")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	c := Default()
	c.LogLevel = "debug"
	c.Display.DensityDPI = 320
	c.Decode.PixelFormat = string(imaging.RGB565)
	c.Decode.Filter = "lanczos"

	if err := c.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if *loaded != *c {
		t.Errorf("round trip: got %+v, want %+v", loaded, c)
	}
}

func TestLoadFromFile_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"display": {"density_dpi": 240}}`), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if c.Display.DensityDPI != 240 {
		t.Errorf("density_dpi: got %d, want 240", c.Display.DensityDPI)
	}
	if c.Decode.Filter != "box" || c.LogLevel != "info" {
		t.Errorf("missing fields should keep defaults: %+v", c)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Default().SaveToFile(path); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvDensityDPI, "160")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.Debug() {
		t.Error("BITMAP_MCP_LOG_LEVEL should enable debug")
	}
	if c.Metrics().Density != 1.0 {
		t.Errorf("density: got %v, want 1", c.Metrics().Density)
	}
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvDensityDPI, "high")
	if _, err := Load(""); err == nil {
		t.Error("expected error for non-numeric density")
	}

	t.Setenv(EnvDensityDPI, "0")
	if _, err := Load(""); err == nil {
		t.Error("expected error for zero density")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"log level", func(c *Config) { c.LogLevel = "trace" }},
		{"density", func(c *Config) { c.Display.DensityDPI = -1 }},
		{"size", func(c *Config) { c.Display.WidthPixels = -1 }},
		{"pixel format", func(c *Config) { c.Decode.PixelFormat = "RGBA_F16" }},
		{"filter", func(c *Config) { c.Decode.Filter = "bicubic" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestLoad_DefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDensityDPI, "")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load without any file failed: %v", err)
	}
	if c.Display.DensityDPI != 480 {
		t.Errorf("density_dpi: got %d, want default 480", c.Display.DensityDPI)
	}

	saved := Default()
	saved.Display.DensityDPI = 320
	if err := saved.SaveToFile(GetConfigPath()); err != nil {
		t.Fatal(err)
	}

	c, err = Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Display.DensityDPI != 320 {
		t.Errorf("density_dpi: got %d, want 320 from %s", c.Display.DensityDPI, GetConfigPath())
	}
}

func TestGetConfigPath(t *testing.T) {
	if filepath.Base(GetConfigPath()) != "config.json" {
		t.Errorf("unexpected config path %s", GetConfigPath())
	}
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/junkd0g/pokeviz/internal/diagram"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokeviz.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
[data]
path = "data/pokemon.xlsx"
sheet = "Gen1"
strict = true

[data.columns]
category = "Type"
traits = ["hp", "atk", "def", "spa", "spd", "spe"]

[radar]
ceiling = 200.0
color = "tomato"

[output]
dir = "./charts"
formats = ["svg", "PNG"]
theme = "dark"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Data.Path != "data/pokemon.xlsx" || cfg.Data.Sheet != "Gen1" || !cfg.Data.Strict {
		t.Errorf("unexpected data section: %+v", cfg.Data)
	}
	if cfg.Data.Columns.Mass != "Weight_kg" {
		t.Errorf("unset column should keep its default, got %q", cfg.Data.Columns.Mass)
	}

	opts := cfg.LoaderOptions()
	if opts.Columns.Category != "Type" || opts.Columns.Traits[5] != "spe" || !opts.Strict {
		t.Errorf("unexpected loader options: %+v", opts)
	}

	formats, err := cfg.Formats()
	if err != nil {
		t.Fatalf("Formats failed: %v", err)
	}
	if len(formats) != 2 || formats[0] != diagram.FormatSVG || formats[1] != diagram.FormatPNG {
		t.Errorf("unexpected formats: %v", formats)
	}

	layout := cfg.Layout()
	if layout.Radar.Ceiling != 200 || layout.Radar.Color != "tomato" {
		t.Errorf("radar overrides not applied: %+v", layout.Radar)
	}
	if layout.Overview.HighlightColor != "limegreen" {
		t.Errorf("expected default highlight, got %s", layout.Overview.HighlightColor)
	}
	if cfg.HTMLConfig().Theme != "dark" {
		t.Errorf("expected dark theme")
	}
}

func TestLoad_DefaultsApplied(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Output.Dir != "./out" {
		t.Errorf("expected default output dir ./out, got %s", cfg.Output.Dir)
	}
	if cfg.Radar.Ceiling != 150 || cfg.Radar.Levels != 5 {
		t.Errorf("unexpected radar defaults: %+v", cfg.Radar)
	}
	if cfg.Log.Level != "INFO" {
		t.Errorf("expected default log level INFO, got %s", cfg.Log.Level)
	}
	if cfg.Data.Strict {
		t.Error("strict should be off by default")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.Columns.Category != "Type_1" {
		t.Errorf("expected default category column, got %s", cfg.Data.Columns.Category)
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := writeConfig(t, "[output]\ndir = \"./from-env\"\n")
	t.Setenv(EnvPath, path)

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv failed: %v", err)
	}
	if cfg.Output.Dir != "./from-env" {
		t.Errorf("expected ./from-env, got %s", cfg.Output.Dir)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad format", "[output]\nformats = [\"gif\"]\n"},
		{"bad theme", "[output]\ntheme = \"sepia\"\n"},
		{"bad level", "[log]\nlevel = \"loud\"\n"},
		{"short traits", "[data.columns]\ntraits = [\"HP\"]\n"},
		{"empty category", "[data.columns]\ncategory = \"\"\n"},
		{"negative width", "[radar]\nwidth = -1.0\n"},
		{"zero ceiling", "[radar]\nceiling = 0.0\n"},
		{"opacity", "[parallel]\nopacity = 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoad_MalformedTOML(t *testing.T) {
	_, err := Load(writeConfig(t, "[data\npath ="))
	if err == nil {
		t.Fatal("expected parse error")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Error("parse errors are not validation errors")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

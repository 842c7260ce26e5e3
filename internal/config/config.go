// Package config provides configuration loading and validation for pokeviz.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/junkd0g/pokeviz/internal/diagram"
	"github.com/junkd0g/pokeviz/internal/logging"
	"github.com/junkd0g/pokeviz/internal/record"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "POKEVIZ_CONFIG"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the main configuration structure
type Config struct {
	Data     DataConfig     `toml:"data"`
	Overview OverviewConfig `toml:"overview"`
	Radar    RadarConfig    `toml:"radar"`
	Parallel ParallelConfig `toml:"parallel"`
	Output   OutputConfig   `toml:"output"`
	Log      LogConfig      `toml:"log"`
}

// DataConfig locates and parses the dataset.
type DataConfig struct {
	Path    string        `toml:"path"`
	Sheet   string        `toml:"sheet,omitempty"`
	Strict  bool          `toml:"strict"`
	Columns ColumnsConfig `toml:"columns"`
}

// ColumnsConfig maps dataset headers to record fields.
type ColumnsConfig struct {
	Name     string   `toml:"name"`
	Category string   `toml:"category"`
	Mass     string   `toml:"mass"`
	Size     string   `toml:"size"`
	Traits   []string `toml:"traits"` // HP, Attack, Defense, Sp_Atk, Sp_Def, Speed order
}

// OverviewConfig sizes the combo chart.
type OverviewConfig struct {
	Width     float64 `toml:"width"`
	Height    float64 `toml:"height"`
	Highlight string  `toml:"highlight"`
}

// RadarConfig sizes the star chart.
type RadarConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Ceiling float64 `toml:"ceiling"`
	Levels  int     `toml:"levels"`
	Color   string  `toml:"color"`
}

// ParallelConfig sizes the parallel-coordinates chart.
type ParallelConfig struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Color   string  `toml:"color"`
	Opacity float64 `toml:"opacity"`
}

// OutputConfig controls what gets written and where.
type OutputConfig struct {
	Dir     string   `toml:"dir"`
	Formats []string `toml:"formats"`
	HTML    bool     `toml:"html"`
	Theme   string   `toml:"theme"`
	Title   string   `toml:"title,omitempty"`
}

// LogConfig sets the log verbosity.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	layout := diagram.DefaultLayout()
	cols := record.DefaultColumns()

	return &Config{
		Data: DataConfig{
			Path: "pokemon_alopez247.csv",
			Columns: ColumnsConfig{
				Name:     cols.Name,
				Category: cols.Category,
				Mass:     cols.Mass,
				Size:     cols.Size,
				Traits:   cols.Traits[:],
			},
		},
		Overview: OverviewConfig{
			Width:     layout.Overview.Width,
			Height:    layout.Overview.Height,
			Highlight: layout.Overview.HighlightColor,
		},
		Radar: RadarConfig{
			Width:   layout.Radar.Width,
			Height:  layout.Radar.Height,
			Ceiling: layout.Radar.Ceiling,
			Levels:  layout.Radar.Levels,
			Color:   layout.Radar.Color,
		},
		Parallel: ParallelConfig{
			Width:   layout.Parallel.Width,
			Height:  layout.Parallel.Height,
			Color:   layout.Parallel.Color,
			Opacity: layout.Parallel.Opacity,
		},
		Output: OutputConfig{
			Dir:     "./out",
			Formats: []string{string(diagram.FormatSVG)},
			HTML:    true,
			Theme:   "light",
		},
		Log: LogConfig{Level: "INFO"},
	}
}

// Load reads and parses the TOML configuration file. Keys missing from the
// file keep their defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads the file named by POKEVIZ_CONFIG, or the defaults when
// it is unset.
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvPath))
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Columns.Category) == "" {
		return invalid("data.columns.category must not be empty")
	}
	if n := len(c.Data.Columns.Traits); n != record.NumTraits {
		return invalid("data.columns.traits needs %d names, got %d", record.NumTraits, n)
	}

	sizes := []struct {
		key  string
		w, h float64
	}{
		{"overview", c.Overview.Width, c.Overview.Height},
		{"radar", c.Radar.Width, c.Radar.Height},
		{"parallel", c.Parallel.Width, c.Parallel.Height},
	}
	for _, s := range sizes {
		if s.w <= 0 || s.h <= 0 {
			return invalid("%s width and height must be > 0", s.key)
		}
	}
	if c.Radar.Ceiling <= 0 {
		return invalid("radar.ceiling must be > 0")
	}
	if c.Radar.Levels <= 0 {
		return invalid("radar.levels must be > 0")
	}
	if c.Parallel.Opacity < 0 || c.Parallel.Opacity > 1 {
		return invalid("parallel.opacity must be within [0, 1]")
	}

	if _, err := c.Formats(); err != nil {
		return err
	}
	if c.Output.Theme != "dark" && c.Output.Theme != "light" {
		return invalid("output.theme must be dark or light, got %q", c.Output.Theme)
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return invalid("log.level must be ERROR, WARN, INFO or DEBUG, got %q", c.Log.Level)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Formats returns the image encodings to write for each view.
func (c *Config) Formats() ([]diagram.Format, error) {
	out := make([]diagram.Format, 0, len(c.Output.Formats))
	for _, f := range c.Output.Formats {
		format, err := diagram.FormatOf("view." + strings.ToLower(strings.TrimSpace(f)))
		if err != nil {
			return nil, invalid("output.formats: %q is not svg or png", f)
		}
		out = append(out, format)
	}
	return out, nil
}

// LoaderOptions returns the dataset reader settings.
func (c *Config) LoaderOptions() record.Options {
	cols := record.Columns{
		Name:     c.Data.Columns.Name,
		Category: c.Data.Columns.Category,
		Mass:     c.Data.Columns.Mass,
		Size:     c.Data.Columns.Size,
	}
	copy(cols.Traits[:], c.Data.Columns.Traits)

	return record.Options{
		Columns: cols,
		Strict:  c.Data.Strict,
		Sheet:   c.Data.Sheet,
	}
}

// Layout applies the configured sizes and colours over the default layout.
func (c *Config) Layout() diagram.Layout {
	l := diagram.DefaultLayout()

	l.Overview.Width = c.Overview.Width
	l.Overview.Height = c.Overview.Height
	l.Overview.HighlightColor = c.Overview.Highlight

	l.Radar.Width = c.Radar.Width
	l.Radar.Height = c.Radar.Height
	l.Radar.Ceiling = c.Radar.Ceiling
	l.Radar.Levels = c.Radar.Levels
	l.Radar.Color = c.Radar.Color

	l.Parallel.Width = c.Parallel.Width
	l.Parallel.Height = c.Parallel.Height
	l.Parallel.Color = c.Parallel.Color
	l.Parallel.Opacity = c.Parallel.Opacity

	return l
}

// HTMLConfig returns the dashboard page settings.
func (c *Config) HTMLConfig() diagram.HTMLConfig {
	h := diagram.DefaultConfig()
	h.Theme = c.Output.Theme
	if c.Output.Title != "" {
		h.Title = c.Output.Title
	}
	return h
}

// Package app wires configuration, logging and the dataset into a dashboard
// for the binaries.
package app

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/junkd0g/pokeviz/internal/config"
	"github.com/junkd0g/pokeviz/internal/dashboard"
	"github.com/junkd0g/pokeviz/internal/logging"
	"github.com/junkd0g/pokeviz/internal/record"
)

// App is a loaded dataset plus the settings it was loaded with.
type App struct {
	Config *config.Config
	Log    *logging.Logger
	State  dashboard.State
}

// Load reads .env (if present), then the config file at path or, when path is
// empty, the one named by POKEVIZ_CONFIG. A non-empty dataPath overrides the
// configured dataset.
func Load(path, dataPath string) (*App, error) {
	// .env is optional
	_ = godotenv.Load()

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.Load(path)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, err
	}
	if dataPath != "" {
		cfg.Data.Path = dataPath
	}

	log := logging.NewDefault(cfg.Log.Level)

	records, err := record.Load(cfg.Data.Path, cfg.LoaderOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	log.Info("loaded %d records from %s", len(records), cfg.Data.Path)

	state := dashboard.New(records, cfg.Layout())
	if cur, ok := state.Current(); ok {
		log.Debug("%d categories, initial selection %q", len(state.Summaries()), cur)
	} else {
		log.Warn("dataset %s has no records", cfg.Data.Path)
	}

	return &App{Config: cfg, Log: log, State: state}, nil
}

// Renderer writes views to the configured output directory.
func (a *App) Renderer() (dashboard.FileRenderer, error) {
	formats, err := a.Config.Formats()
	if err != nil {
		return dashboard.FileRenderer{}, err
	}
	return dashboard.FileRenderer{Dir: a.Config.Output.Dir, Formats: formats}, nil
}

// Dashboard builds a dashboard drawing through Renderer.
func (a *App) Dashboard() (*dashboard.Dashboard, error) {
	r, err := a.Renderer()
	if err != nil {
		return nil, err
	}
	return dashboard.NewDashboard(a.State, r, a.Log), nil
}

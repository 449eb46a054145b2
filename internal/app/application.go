package app

import (
	"log/slog"

	"carrierdash/internal/appconf"
	"carrierdash/internal/carriers"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware. The Manager is populated before the Application is built
// and is only read afterwards.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Manager *carriers.Manager
}

// New wires the loaded carrier data into an Application
func New(config appconf.Config, logger *slog.Logger, manager *carriers.Manager) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	return &Application{
		Config:  config,
		Logger:  logger,
		Manager: manager,
	}
}

// FindDataset returns the dataset called name, falling back to the default
// dataset when name is empty. The second result is false when nothing matches.
func (app *Application) FindDataset(name string) (*carriers.Dataset, bool) {
	if app.Manager == nil {
		return nil, false
	}
	if name == "" {
		name = app.Manager.DefaultDatasetName()
	}
	d := app.Manager.FindDataset(name)
	return d, d != nil
}

// Package app provides the application context for probectl.
// It allows dependency injection for testing.
package app

import (
	"github.com/probectl/probectl/internal/config"
	"github.com/probectl/probectl/internal/logging"
)

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Defaults holds the loaded probe defaults
	Defaults *config.Defaults
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithDefaults sets custom probe defaults
func WithDefaults(defaults *config.Defaults) Option {
	return func(a *App) {
		a.Defaults = defaults
	}
}

// New creates a new App with the given options.
// If defaults are not provided via WithDefaults, they are loaded from the
// config directory; a broken defaults file leaves the built-ins in place.
func New(opts ...Option) *App {
	app := &App{
		Paths: config.DefaultPaths(),
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.Defaults == nil {
		defaults, err := config.LoadDefaults(app.Paths.ConfigDir)
		if err != nil {
			logging.Debug("failed to load defaults", "error", err)
			defaults = &config.Defaults{}
		}
		app.Defaults = defaults
	}

	return app
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}

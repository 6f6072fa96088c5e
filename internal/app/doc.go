// Package app provides the application context for probectl.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths    // File system paths
//	    Defaults *config.Defaults // Loaded probe defaults
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	app := app.New()
//
//	// Testing with custom dependencies
//	app := app.New(
//	    app.WithPaths(testPaths),
//	    app.WithDefaults(testDefaults),
//	)
//
// # Available Options
//
//	WithPaths(paths)       // Custom path configuration
//	WithDefaults(defaults) // Custom probe defaults
package app

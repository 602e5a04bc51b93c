// Package app provides the application context and dependency management
// for the libris CLI. It centralizes configuration, logging and the
// catalog archive, and wires them into the cobra command tree.
package app

import (
	"context"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/libris/cmd/application"
	"github.com/agentstation/libris/pkg/catalog"
	"github.com/agentstation/libris/pkg/errors"
	"github.com/agentstation/libris/pkg/items"
)

var _ application.Application = (*App)(nil)

// App represents the libris application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger

	// fs backs the catalog file
	fs afero.Fs

	// stdout and stderr override the command output streams when set
	stdout io.Writer
	stderr io.Writer

	// Archive (lazy-initialized, loaded once)
	mu      sync.Mutex
	archive *catalog.Archive
}

// New creates a new App instance with the given version information.
// Unless WithConfig is given, configuration is loaded from the environment
// and config files.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		fs:      afero.NewOsFs(),
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.config == nil {
		config, err := LoadConfig()
		if err != nil {
			return nil, errors.WrapResource("load", "config", "", err)
		}
		app.config = config
	}

	if app.logger == nil {
		logger := NewLogger(app.config)
		app.logger = &logger
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Output
}

// Catalog returns the catalog archive, creating and loading it on first use.
//
// A missing catalog file is logged and the archive starts empty. A malformed
// file is logged as an error and the archive also starts empty, so the
// command still runs. Any other read failure is returned.
func (a *App) Catalog() (*catalog.Archive, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.archive != nil {
		return a.archive, nil
	}

	archive, err := catalog.New(
		catalog.WithPath(a.config.CatalogPath),
		catalog.WithFs(a.fs),
		catalog.WithLogger(a.logger),
	)
	if err != nil {
		return nil, errors.WrapResource("create", "catalog", a.config.CatalogPath, err)
	}

	result, err := archive.Load()
	switch {
	case errors.IsParse(err):
		a.logger.Error().
			Err(err).
			Str("path", result.Path).
			Msg("Catalog file is malformed, starting with an empty catalog")
	case err != nil:
		return nil, errors.WrapResource("load", "catalog", result.Path, err)
	case !result.Found:
		a.logger.Info().
			Str("path", result.Path).
			Msg("Catalog file does not exist yet, starting with an empty catalog")
	default:
		a.logger.Debug().
			Str("path", result.Path).
			Int("items", result.Items).
			Msg("Catalog ready")
	}

	a.registerHooks(archive)
	a.archive = archive
	return archive, nil
}

// registerHooks logs every catalog mutation.
func (a *App) registerHooks(archive *catalog.Archive) {
	archive.OnItemAdded(func(it items.Item) {
		a.logger.Info().
			Str("isbn", it.Info().ISBN).
			Str("kind", string(it.Kind())).
			Msg("Item added")
	})
	archive.OnItemUpdated(func(old, new items.Item) {
		a.logger.Info().
			Str("isbn", old.Info().ISBN).
			Str("old_kind", string(old.Kind())).
			Str("new_kind", string(new.Kind())).
			Msg("Item updated")
	})
	archive.OnItemRemoved(func(it items.Item) {
		a.logger.Info().
			Str("isbn", it.Info().ISBN).
			Str("kind", string(it.Kind())).
			Msg("Item removed")
	})
}

// Shutdown releases application resources. Every mutation is saved when it
// happens, so there is nothing to flush.
func (a *App) Shutdown(_ context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.archive != nil {
		a.logger.Debug().
			Str("path", a.archive.Path()).
			Int("items", a.archive.Len()).
			Msg("Shutting down")
	}
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		if config == nil {
			return errors.NewConfigError("app", "config cannot be nil", nil)
		}
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithFs sets the filesystem holding the catalog file (useful for testing).
func WithFs(fs afero.Fs) Option {
	return func(a *App) error {
		a.fs = fs
		return nil
	}
}

// WithArchive sets a ready archive, skipping the initial load.
func WithArchive(archive *catalog.Archive) Option {
	return func(a *App) error {
		a.archive = archive
		return nil
	}
}

// WithOutput redirects command output (useful for testing).
func WithOutput(stdout, stderr io.Writer) Option {
	return func(a *App) error {
		a.stdout = stdout
		a.stderr = stderr
		return nil
	}
}

// Package application provides the application interface for libris commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            archive, err := app.Catalog()
//	            if err != nil {
//	                return err
//	            }
//	            // ... use archive
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func() (*catalog.Archive, error) {
//	        return testArchive, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/libris/pkg/catalog"
)

// Application provides the application interface that commands need.
// The App struct from cmd/libris/app implements this interface.
type Application interface {
	// Catalog returns the catalog archive, loading it from its backing file
	// on first use. The same archive is returned on every call.
	Catalog() (*catalog.Archive, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}

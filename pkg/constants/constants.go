// Package constants provides shared constants used throughout the libris codebase.
// This includes file permissions, default paths and configuration names that
// should be consistent across the application.
package constants

import "time"

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Catalog file constants
const (
	// DefaultCatalogFile is the file the catalog is persisted to when no
	// other path is configured.
	DefaultCatalogFile = "catalog.json"

	// CatalogIndent is the indentation used for the pretty-printed catalog file.
	CatalogIndent = "  "

	// ResourceItem is the resource name used in catalog errors.
	ResourceItem = "item"
)

// Configuration constants
const (
	// EnvPrefix prefixes environment variables read by viper (LIBRIS_CATALOG_PATH).
	EnvPrefix = "LIBRIS"

	// ConfigFileName is the config file base name searched in $HOME and ".".
	ConfigFileName = ".libris"

	// ConfigKeyCatalogPath is the viper key overriding DefaultCatalogFile.
	ConfigKeyCatalogPath = "catalog_path"
)

// Timeout constants
const (
	// ShutdownTimeout bounds application shutdown once the command returns.
	ShutdownTimeout = 5 * time.Second
)

// Format constants
const (
	// TimeFormatLog is the format used in log files
	TimeFormatLog = "2006-01-02 15:04:05.000"
)

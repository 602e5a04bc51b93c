package app

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/libris/pkg/constants"
	"github.com/agentstation/libris/pkg/errors"
)

// Config holds the application configuration loaded from various sources
// including config files, environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file actually read, empty when none was found
	ConfigFile string

	// CatalogPath is the catalog file the archive reads and rewrites.
	CatalogPath string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (applied later by UpdateFromFlags)
// 2. Environment variables (LIBRIS_*)
// 3. .env and .env.local files
// 4. Config file (~/.libris.yaml or ./.libris.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	return LoadConfigFile("")
}

// LoadConfigFile is LoadConfig with an explicit config file. An explicit
// file must exist; the standard locations are optional.
func LoadConfigFile(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(constants.ConfigKeyCatalogPath, constants.DefaultCatalogFile)
	v.SetDefault("log_format", "auto")
	v.SetDefault("log_output", "stderr")

	// The unprefixed names are the ones pkg/logging already honours.
	_ = v.BindEnv("log_level", "LIBRIS_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log_format", "LIBRIS_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("log_output", "LIBRIS_LOG_OUTPUT", "LOG_OUTPUT")

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config", "cannot read "+configFile, err)
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(constants.ConfigFileName)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, errors.NewConfigError("config", "cannot read config file", err)
			}
		}
	}

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Output:  v.GetString("output"),

		ConfigFile: v.ConfigFileUsed(),

		CatalogPath: v.GetString(constants.ConfigKeyCatalogPath),

		LogLevel:  v.GetString("log_level"),
		LogFormat: v.GetString("log_format"),
		LogOutput: v.GetString("log_output"),
	}

	if config.CatalogPath == "" {
		return nil, errors.NewConfigError("config", constants.ConfigKeyCatalogPath+" cannot be empty", nil)
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags to ensure flag
// values take precedence over config file and env vars.
//
// An explicit logLevel replaces the configured one. Otherwise -v or -q
// clear the configured level so the shortcut applies.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, output, logLevel, catalogPath string) {
	c.Verbose = c.Verbose || verbose
	c.Quiet = c.Quiet || quiet
	c.NoColor = c.NoColor || noColor
	if output != "" {
		c.Output = output
	}
	switch {
	case logLevel != "":
		c.LogLevel = logLevel
	case verbose || quiet:
		c.LogLevel = ""
	}
	if catalogPath != "" {
		c.CatalogPath = catalogPath
	}
}

// loadEnvFiles loads environment variables from .env files.
// Variables already set in the environment are never overridden.
func loadEnvFiles() {
	for _, envFile := range []string{".env.local", ".env"} {
		_ = godotenv.Load(envFile)
	}
}

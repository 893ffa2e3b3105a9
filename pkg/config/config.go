// Package config provides configuration management for skillgap.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Store: type, data_file, sqlite_path
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Rollup: unassigned_markers, use_stored_gaps
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use SKILLGAP_ prefix with underscores for nesting:
//
//	SKILLGAP_STORE_TYPE=sqlite
//	SKILLGAP_DATABASE_HOST=localhost
//	SKILLGAP_ROLLUP_USE_STORED_GAPS=true
//	SKILLGAP_LOG_LEVEL=info
package config

import (
	"runtime"
)

// Config represents the complete skillgap configuration.
type Config struct {
	// Store selects and locates the record store the engine reads from.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Database contains PostgreSQL connection settings. Used when
	// Store.Type is "postgres".
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Rollup contains settings of the aggregation engine.
	Rollup RollupConfig `mapstructure:"rollup" yaml:"rollup"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used during populate.
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// StoreConfig describes where employee and skill records come from.
type StoreConfig struct {
	// Type is one of "memory", "sqlite", "postgres".
	Type string `mapstructure:"type" yaml:"type"`

	// DataFile is a YAML records file. It feeds the memory store and
	// is the input of the populate command.
	DataFile string `mapstructure:"data_file" yaml:"data_file"`

	// SQLitePath is the path to the SQLite database file.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of records per bulk insert during
	// populate.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// RollupConfig contains settings of the aggregation engine.
type RollupConfig struct {
	// UnassignedMarkers are hierarchy field values that mean "no parent
	// at this level". Matching is case-insensitive, surrounding spaces are
	// ignored. An empty value is always treated as unassigned.
	UnassignedMarkers []string `mapstructure:"unassigned_markers" yaml:"unassigned_markers"`

	// UseStoredGaps makes the summarizer trust gap flags saved with skill
	// records. When false (default) verdicts are recomputed from
	// proficiency values on every read.
	UseStoredGaps bool `mapstructure:"use_stored_gaps" yaml:"use_stored_gaps"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Store: StoreConfig{
			Type:       "memory",
			DataFile:   "records.yaml",
			SQLitePath: "skillgap.sqlite",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "skillgap",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Rollup: RollupConfig{
			UnassignedMarkers: []string{"N/A", "unassigned"},
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

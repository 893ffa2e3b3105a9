// Package iotesting provides shared test utilities: configurations that
// never touch production data and a small law-firm data set used across
// store, engine and CLI tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/schema"
	"gopkg.in/yaml.v3"
)

const (
	// TestDatabaseName is the database name used for all integration tests.
	// This ensures tests never accidentally run against production databases.
	TestDatabaseName = "skillgap_test"
)

// GetTestConfig returns a configuration suitable for integration tests.
// Connection settings can be changed by SKILLGAP_DATABASE_HOST,
// SKILLGAP_DATABASE_PORT, SKILLGAP_DATABASE_USER and
// SKILLGAP_DATABASE_PASSWORD. The database name is always
// TestDatabaseName.
//
// Usage in integration tests:
//
//	func TestSomething(t *testing.T) {
//	    if testing.Short() {
//	        t.Skip("Skipping integration test")
//	    }
//	    cfg := iotesting.GetTestConfig()
//	    // ... use cfg for database operations
//	}
func GetTestConfig() *config.Config {
	cfg := config.New()

	var opts []config.Option
	if v := os.Getenv("SKILLGAP_DATABASE_HOST"); v != "" {
		opts = append(opts, config.OptDatabaseHost(v))
	}
	if v := os.Getenv("SKILLGAP_DATABASE_USER"); v != "" {
		opts = append(opts, config.OptDatabaseUser(v))
	}
	if v := os.Getenv("SKILLGAP_DATABASE_PASSWORD"); v != "" {
		opts = append(opts, config.OptDatabasePassword(v))
	}
	opts = append(opts,
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptLogDestination("stderr"),
	)
	cfg.Update(opts)

	return cfg
}

// SetupTempHome creates a temporary home directory with the default
// skillgap directory layout. It is removed when the test finishes.
//
// Returns the absolute path to the temporary home directory.
func SetupTempHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	dirs := []string{
		config.ConfigDir(home),
		config.CacheDir(home),
		config.LogDir(home),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", d, err)
		}
	}
	return home
}

// WriteTempRecords writes fixture records to a YAML file in a temporary
// directory and returns its path.
func WriteTempRecords(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.yaml")
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("Failed to write temp records: %v", err)
	}
	return path
}

// RewriteRecords replaces the content of a records file.
func RewriteRecords(t *testing.T, path string, recs *schema.Records) {
	t.Helper()

	data, err := yaml.Marshal(recs)
	if err != nil {
		t.Fatalf("Failed to encode records: %v", err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write records: %v", err)
	}
}

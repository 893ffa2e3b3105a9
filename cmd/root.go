/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/skillgap/internal/iofs"
	"github.com/gnames/skillgap/internal/iologger"
	app "github.com/gnames/skillgap/pkg"
	"github.com/gnames/skillgap/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	cfg     *config.Config
	flags   globalFlags
)

// getRootCmd returns the root command with all subcommands attached.
// Every call creates an independent command tree.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "skillgap",
		Short:   "Skillgap rolls up employee skill gaps through the management hierarchy",
		Long: `Skillgap compares actual skill proficiency of employees with what
their roles expect now and in the future, and aggregates gap counts up
the management hierarchy: Employee -> Manager -> DL -> DH -> GDL.

Records come from a YAML file (memory store) or from a SQLite or
PostgreSQL database filled by 'skillgap populate'.

Configuration precedence (highest to lowest):
  1. CLI flags (--store, --data, ...)
  2. Environment variables (SKILLGAP_*)
  3. Config file (~/.config/skillgap/config.yaml)
  4. Built-in defaults

Environment variables use SKILLGAP_ prefix, nested fields are joined
by underscores, for example:
  SKILLGAP_STORE_TYPE            memory, sqlite or postgres
  SKILLGAP_STORE_DATA_FILE       YAML records file
  SKILLGAP_DATABASE_HOST         PostgreSQL host
  SKILLGAP_ROLLUP_USE_STORED_GAPS  trust stored gap flags
  SKILLGAP_LOG_LEVEL             debug, info, warn, error`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "skillgap version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for skillgap")

	addGlobalFlags(rootCmd, &flags)

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getPopulateCmd(),
		getEmployeeCmd(),
		getRollupCmd(),
		getChildrenCmd(),
		getSearchCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging with defaults until the config is read.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := flags.configPath
	if cfgPath == "" {
		cfgPath = config.ConfigFilePath(homeDir)
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(cfgViper.ToOptions())
	cfg.Update(flags.options(cmd))
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, !isWriter(cmd)); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", cfgPath,
		"store", cfg.Store.Type,
		"command", cmd.Name(),
	)
	return nil
}

// isWriter returns true for commands that change stored data. They start
// a fresh log file.
func isWriter(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "create", "migrate", "populate":
		return true
	}
	return false
}

func runRoot(cmd *cobra.Command, _ []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(cfgPath string) (*config.Config, error) {
	var err error
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

func initEnvVars(v *viper.Viper) {
	// Allowed variables are bound one by one. They match the fields of
	// config.ToOptions().
	v.SetEnvPrefix("SKILLGAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Store configuration
	v.BindEnv("store.type", "SKILLGAP_STORE_TYPE")
	v.BindEnv("store.data_file", "SKILLGAP_STORE_DATA_FILE")
	v.BindEnv("store.sqlite_path", "SKILLGAP_STORE_SQLITE_PATH")

	// Database configuration
	v.BindEnv("database.host", "SKILLGAP_DATABASE_HOST")
	v.BindEnv("database.port", "SKILLGAP_DATABASE_PORT")
	v.BindEnv("database.user", "SKILLGAP_DATABASE_USER")
	v.BindEnv("database.password", "SKILLGAP_DATABASE_PASSWORD")
	v.BindEnv("database.database", "SKILLGAP_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "SKILLGAP_DATABASE_SSL_MODE")
	v.BindEnv("database.batch_size", "SKILLGAP_DATABASE_BATCH_SIZE")

	// Rollup configuration
	v.BindEnv("rollup.unassigned_markers", "SKILLGAP_ROLLUP_UNASSIGNED_MARKERS")
	v.BindEnv("rollup.use_stored_gaps", "SKILLGAP_ROLLUP_USE_STORED_GAPS")

	// Log configuration
	v.BindEnv("log.level", "SKILLGAP_LOG_LEVEL")
	v.BindEnv("log.format", "SKILLGAP_LOG_FORMAT")
	v.BindEnv("log.destination", "SKILLGAP_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", "SKILLGAP_JOBS_NUMBER")

	v.AutomaticEnv()
}

package cmd

import (
	"fmt"
	"os"

	app "github.com/gnames/skillgap/pkg"
	"github.com/gnames/skillgap/pkg/config"
	"github.com/spf13/cobra"
)

// globalFlags keeps values of persistent flags shared by all commands.
type globalFlags struct {
	configPath string
	storeType  string
	dataFile   string
	sqlitePath string
	format     string
	storedGaps bool
	jobs       int
}

func addGlobalFlags(cmd *cobra.Command, f *globalFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "",
		"config file (default ~/.config/skillgap/config.yaml)")
	pf.StringVarP(&f.storeType, "store", "s", "",
		"record store: memory, sqlite or postgres")
	pf.StringVarP(&f.dataFile, "data", "d", "",
		"YAML records file")
	pf.StringVar(&f.sqlitePath, "sqlite", "",
		"SQLite database file")
	pf.StringVarP(&f.format, "format", "o", "text",
		"output format: text, json or yaml")
	pf.BoolVar(&f.storedGaps, "stored-gaps", false,
		"trust gap flags saved with skill records")
	pf.IntVarP(&f.jobs, "jobs", "j", 0,
		"number of concurrent workers for populate")
}

// options converts explicitly set flags to config options.
func (f *globalFlags) options(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()

	if fs.Changed("store") {
		res = append(res, config.OptStoreType(f.storeType))
	}
	if fs.Changed("data") {
		res = append(res, config.OptStoreDataFile(f.dataFile))
	}
	if fs.Changed("sqlite") {
		res = append(res, config.OptStoreSQLitePath(f.sqlitePath))
	}
	if fs.Changed("stored-gaps") {
		res = append(res, config.OptRollupUseStoredGaps(f.storedGaps))
	}
	if fs.Changed("jobs") {
		res = append(res, config.OptJobsNumber(f.jobs))
	}
	return res
}

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

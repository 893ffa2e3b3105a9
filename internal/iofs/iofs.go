package iofs

import (
	_ "embed"
	"os"

	"github.com/gnames/skillgap/pkg/config"
	"github.com/gnames/skillgap/pkg/schema"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := touchDir(v); err != nil {
			return err
		}
	}
	return nil
}

func touchDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil && info.IsDir() {
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	return nil
}

// EnsureConfigFile writes the default config.yaml unless the user already
// has one.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}

	return nil
}

// ReadRecords loads and normalizes a YAML records file.
func ReadRecords(path string) (*schema.Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ReadFileError(path, err)
	}

	var res schema.Records
	if err = yaml.Unmarshal(data, &res); err != nil {
		return nil, RecordsDecodeError(path, err)
	}

	if err = res.Normalize(); err != nil {
		return nil, err
	}
	return &res, nil
}

// WriteRecords saves records as YAML.
func WriteRecords(path string, recs *schema.Records) error {
	data, err := yaml.Marshal(recs)
	if err != nil {
		return RecordsDecodeError(path, err)
	}
	if err = os.WriteFile(path, data, 0644); err != nil {
		return CopyFileError(path, err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional override file looked up in the data directory.
const FileName = "studytrack.yaml"

type Config struct {
	DataDir     string `yaml:"-"`
	DBFile      string `yaml:"db_file"`
	JournalFile string `yaml:"journal_file"`
	LogLevel    string `yaml:"log_level"`
}

func Default(dataDir string) Config {
	if dataDir == "" {
		dataDir = "."
	}
	return Config{
		DataDir:     dataDir,
		DBFile:      "my_study_time.db",
		JournalFile: "study_journal.txt",
		LogLevel:    "warn",
	}
}

// Load returns the defaults for dataDir overlaid with studytrack.yaml when present.
func Load(dataDir string) (Config, error) {
	cfg := Default(dataDir)

	data, err := os.ReadFile(filepath.Join(cfg.DataDir, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
	}
	if cfg.DBFile == "" || cfg.JournalFile == "" {
		return Config{}, fmt.Errorf("parse %s: db_file and journal_file must not be empty", FileName)
	}
	return cfg, nil
}

func (c Config) DBPath() string {
	return c.resolve(c.DBFile)
}

func (c Config) JournalPath() string {
	return c.resolve(c.JournalFile)
}

func (c Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}

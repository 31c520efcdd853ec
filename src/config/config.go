package config

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/eriklarko/tautology-checker/src/checker"
	"gopkg.in/yaml.v3"
)

const DefaultPath = ".tautology-checker.yaml"

type Config struct {
	// count both parentheses as going deeper, see boolexpr.WithLegacyDepthTracking
	LegacyDepthTracking bool `yaml:"legacy-depth-tracking"`
	// number of goroutines used to enumerate assignments, 0 means one per CPU
	Workers int `yaml:"workers"`
	// number of verdicts kept in memory, 0 disables the cache
	CacheSize int `yaml:"cache-size"`
	// CSV file where batch verdicts are stored, empty disables it
	HistoryFile string `yaml:"history-file,omitempty"`

	// where the config was loaded from, or will be written to
	Path string `yaml:"-"`
}

func Default() *Config {
	return &Config{
		Workers:   1,
		CacheSize: 128,
		Path:      DefaultPath,
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file is reported with an error satisfying os.IsNotExist.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	config.Path = path

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache-size must not be negative, got %d", c.CacheSize)
	}
	return nil
}

// EffectiveWorkers resolves Workers == 0 to the number of CPUs.
func (c *Config) EffectiveWorkers() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}

func (c *Config) Write() error {
	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	return nil
}

// WriteVerdicts writes a map from expression to verdict to the history CSV
// file, replacing its contents.
func (c *Config) WriteVerdicts(verdicts map[string]checker.Kind) error {
	absPath, err := filepath.Abs(c.HistoryFile)
	if err != nil {
		// only used to make the error messages easier to follow. Best effort.
		absPath = c.HistoryFile
	}

	file, err := os.Create(absPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", absPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, expression := range checker.Sorted(verdicts) {
		record := []string{expression, verdicts[expression].String()}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %v: %w", record, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", absPath, err)
	}
	return nil
}

// ReadVerdicts reads the history CSV file written by WriteVerdicts.
func (c *Config) ReadVerdicts() (map[string]checker.Kind, error) {
	absPath, err := filepath.Abs(c.HistoryFile)
	if err != nil {
		absPath = c.HistoryFile
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", absPath, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read records from file %s: %w", absPath, err)
	}

	verdicts := make(map[string]checker.Kind)
	for _, record := range records {
		if len(record) != 2 {
			return nil, fmt.Errorf("invalid record %v: expected 2 fields, got %d", record, len(record))
		}

		kind, err := checker.ParseKind(record[1])
		if err != nil {
			return nil, fmt.Errorf("invalid record %v: %w", record, err)
		}
		verdicts[record[0]] = kind
	}

	return verdicts, nil
}

// MergeVerdicts adds verdicts to the history file, keeping entries for
// expressions that are not in verdicts. A missing history file is created.
func (c *Config) MergeVerdicts(verdicts map[string]checker.Kind) error {
	existing, err := c.ReadVerdicts()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if existing == nil {
		existing = make(map[string]checker.Kind)
	}

	for expression, kind := range verdicts {
		existing[expression] = kind
	}
	return c.WriteVerdicts(existing)
}

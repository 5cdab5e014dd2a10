package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brettbedarf/dirtree/internal/util"
	"gopkg.in/yaml.v3"
)

// Bytes per MB
const MB = 1024 * 1024

// CLI log verbosity values; higher is chattier
const (
	ErrorVerbose = iota + 1
	WarnVerbose
	InfoVerbose
	DebugVerbose
	TraceVerbose
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultLogLvl keeps stderr quiet unless something goes wrong
	DefaultLogLvl = util.WarnLevel

	// DefaultSentinel ends an interactive session (matched case-insensitively)
	DefaultSentinel = "EXIT"

	// DefaultPrompt is shown before each line on a terminal
	DefaultPrompt = "> "

	// DefaultHistoryFile is the interactive history file name inside os.TempDir()
	DefaultHistoryFile = "dirtree-history"

	// DefaultMaxLineSize is the longest accepted command line in bytes
	DefaultMaxLineSize = 1 * MB
)

// Config contains runtime configuration values for an explorer session.
type Config struct {
	LogLvl      util.LogLevel // Log level (Default warn)
	Sentinel    string        // Interactive end-of-session keyword (Default "EXIT")
	Prompt      string        // Interactive prompt on terminals (Default "> ")
	HistoryPath string        // Interactive history file (Default <tmp>/dirtree-history)
	MaxLineSize int           // Longest accepted input line in bytes (Default 1MB)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero values
// when loading partial configuration. See [Config] for field descriptions.
//
// NOTE: LogLvl is the CLI verbosity (1 error .. 5 trace), not a [util.LogLevel]
type ConfigOverride struct {
	LogLvl      *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
	Sentinel    *string `yaml:"sentinel,omitempty" json:"sentinel,omitempty"`
	Prompt      *string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	HistoryPath *string `yaml:"history_path,omitempty" json:"history_path,omitempty"`
	MaxLineSize *int    `yaml:"max_line_size,omitempty" json:"max_line_size,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		LogLvl:      DefaultLogLvl,
		Sentinel:    DefaultSentinel,
		Prompt:      DefaultPrompt,
		HistoryPath: filepath.Join(os.TempDir(), DefaultHistoryFile),
		MaxLineSize: DefaultMaxLineSize,
	}
}

// NewConfig creates a Config from defaults with each non-nil override merged
// on top in order, so later overrides win.
func NewConfig(overrides ...*ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	for _, o := range overrides {
		if o != nil {
			cfg.Merge(o)
		}
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config.
// This allows partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.LogLvl != nil {
		c.LogLvl = VerboseToLogLevel(*override.LogLvl)
	}
	if override.Sentinel != nil {
		c.Sentinel = *override.Sentinel
	}
	if override.Prompt != nil {
		c.Prompt = *override.Prompt
	}
	if override.HistoryPath != nil {
		c.HistoryPath = *override.HistoryPath
	}
	if override.MaxLineSize != nil {
		c.MaxLineSize = *override.MaxLineSize
	}
}

// VerboseToLogLevel maps CLI verbosity to a log level, clamping to 1..5
func VerboseToLogLevel(verbose int) util.LogLevel {
	verbose = max(ErrorVerbose, min(TraceVerbose, verbose))
	logLvls := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return logLvls[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without merging.
// Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}

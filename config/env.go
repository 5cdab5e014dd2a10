package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// envOverride mirrors [ConfigOverride] for environment variables.
// Zero values mean unset.
type envOverride struct {
	Verbose     int    `env:"DIRTREE_VERBOSE" env-description:"log verbosity 1 (error) to 5 (trace)"`
	Sentinel    string `env:"DIRTREE_SENTINEL" env-description:"keyword ending an interactive session"`
	Prompt      string `env:"DIRTREE_PROMPT" env-description:"interactive prompt"`
	HistoryPath string `env:"DIRTREE_HISTORY" env-description:"interactive history file"`
	MaxLineSize int    `env:"DIRTREE_MAX_LINE_SIZE" env-description:"longest accepted input line in bytes"`
}

// LoadEnvOverride reads DIRTREE_* environment variables into an override
func LoadEnvOverride() (*ConfigOverride, error) {
	var env envOverride
	if err := cleanenv.ReadEnv(&env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	override := &ConfigOverride{}
	if env.Verbose != 0 {
		override.LogLvl = &env.Verbose
	}
	if env.Sentinel != "" {
		override.Sentinel = &env.Sentinel
	}
	if env.Prompt != "" {
		override.Prompt = &env.Prompt
	}
	if env.HistoryPath != "" {
		override.HistoryPath = &env.HistoryPath
	}
	if env.MaxLineSize != 0 {
		override.MaxLineSize = &env.MaxLineSize
	}
	return override, nil
}

// EnvUsage describes the supported environment variables
func EnvUsage() (string, error) {
	return cleanenv.GetDescription(&envOverride{}, nil)
}

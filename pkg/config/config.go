/*
Package config manages TOML config for the boggle solver.

InitConfig handles automatic config file creation and loading with fallback to defaults.
LoadConfig and SaveConfig provide direct fs access for runtime changes.
*/
package config

import (
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/tilegraph/boggle/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Board  BoardConfig  `toml:"board"`
	CLI    CLIConfig    `toml:"cli"`
}

// SolverConfig has word-search worker related options.
type SolverConfig struct {
	Shards        int  `toml:"shards"`
	MinWordLength int  `toml:"min_word_length"`
	LogShardLoads bool `toml:"log_shard_loads"`
}

// BoardConfig holds default board options for the CLI harness.
type BoardConfig struct {
	DefaultWidth  int    `toml:"default_width"`
	DefaultHeight int    `toml:"default_height"`
	ReferenceTile string `toml:"reference_tile"`
}

// CLIConfig holds command-line interface defaults.
type CLIConfig struct {
	DefaultQueries int  `toml:"default_queries"`
	RandomSeed     uint32 `toml:"random_seed"`
	Verbose        bool `toml:"verbose"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			Shards:        26,
			MinWordLength: 3,
			LogShardLoads: false,
		},
		Board: BoardConfig{
			DefaultWidth:  4,
			DefaultHeight: 4,
			ReferenceTile: "DZXEAIQUTWKOHNRSCLMYGFBPVJ"[:16],
		},
		CLI: CLIConfig{
			DefaultQueries: 1,
			RandomSeed:     0xdeadbeef,
			Verbose:        false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return nil, err
	}
	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: ( %s )", utils.GetAbsolutePath(configPath))
		return config, nil
	}
	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config, using defaults: %v", err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		log.Errorf("Failed to decode config file: %v", err)
		return nil, err
	}
	return &config, nil
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	if err := utils.SaveTOMLFile(config, configPath); err != nil {
		log.Errorf("Failed to save config file: %v", err)
		return err
	}
	return nil
}

// Update changes solver config values and saves to file
func (c *Config) Update(configPath string, shards, minWordLength *int) error {
	if shards != nil {
		c.Solver.Shards = *shards
	}
	if minWordLength != nil {
		c.Solver.MinWordLength = *minWordLength
	}
	return SaveConfig(c, configPath)
}
